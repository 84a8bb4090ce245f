package business

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/cinebusca/internal/model"
)

// FavoritesKey is the storage key holding the serialized favorites
const FavoritesKey = "movieFavorites"

// Storage is a key-value store scoped to a browser session
type Storage interface {
	GetItem(key string) (value string, ok bool)
	SetItem(key, value string) error
}

// Favorites is the ordered set of favorite movies, mirrored to a Storage
type Favorites struct {
	Storage
	items []model.SearchResult
}

// NewFavorites loads the favorites from storage.
// A missing or malformed value gives an empty set.
func NewFavorites(s Storage) *Favorites {
	f := &Favorites{
		Storage: s,
		items:   []model.SearchResult{},
	}
	raw, ok := s.GetItem(FavoritesKey)
	if !ok || raw == "" {
		return f
	}
	var items []model.SearchResult
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Msg("Ignoring malformed stored favorites")
		return f
	}
	if items != nil {
		f.items = items
	}
	return f
}

// Toggle removes the movie from the favorites if present, adds it at the end otherwise,
// then persists the whole set. The set is left unchanged if it cannot be persisted.
func (f *Favorites) Toggle(movie model.SearchResult) error {
	var items []model.SearchResult
	if f.IsFavorite(movie.ID) {
		items = lo.Reject(f.items, func(fav model.SearchResult, _ int) bool {
			return fav.ID == movie.ID
		})
	} else {
		items = append(f.List(), movie)
	}
	if err := f.save(items); err != nil {
		return err
	}
	f.items = items
	return nil
}

func (f Favorites) IsFavorite(movieID int64) bool {
	return lo.ContainsBy(f.items, func(fav model.SearchResult) bool {
		return fav.ID == movieID
	})
}

// Get returns the favorite with the given ID
func (f Favorites) Get(movieID int64) (model.SearchResult, bool) {
	return lo.Find(f.items, func(fav model.SearchResult) bool {
		return fav.ID == movieID
	})
}

// List returns the favorites in insertion order
func (f Favorites) List() []model.SearchResult {
	return append([]model.SearchResult(nil), f.items...)
}

func (f Favorites) Len() int {
	return len(f.items)
}

func (f Favorites) save(items []model.SearchResult) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("could not serialize favorites: %w", err)
	}
	if err := f.Storage.SetItem(FavoritesKey, string(raw)); err != nil {
		return fmt.Errorf("could not save favorites: %w", err)
	}
	return nil
}
