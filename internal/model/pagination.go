package model

// MaxTotalPages is the highest page TMDB serves for a search
const MaxTotalPages = 500

// Cursor is the (current page, total pages) pair of a search
type Cursor struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Contains tells whether page can be requested with this cursor
func (c Cursor) Contains(page int) bool {
	return page >= 1 && page <= c.TotalPages
}

func (c Cursor) HasPrevious() bool {
	return c.Contains(c.Page - 1)
}

func (c Cursor) HasNext() bool {
	return c.Contains(c.Page + 1)
}

// Pagination represents a pagination display parameters
type Pagination struct {
	Number int
	Active bool
	Dots   bool
}
