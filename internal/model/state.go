package model

// View is one of the mutually exclusive screens of the application
type View string

const (
	ViewSearch    View = "search"
	ViewDetails   View = "details"
	ViewFavorites View = "favorites"
)

// SearchState is owned by the query controller
type SearchState struct {
	Query   string         `json:"query"`
	Cursor  Cursor         `json:"cursor"`
	Results []SearchResult `json:"results"`
}

// AppState is the whole client state of one browser session
type AppState struct {
	View       View         `json:"view"`
	Error      string       `json:"error,omitempty"`
	Search     SearchState  `json:"search"`
	SelectedID int64        `json:"selected_id,omitempty"`
	Detail     *MovieDetail `json:"detail,omitempty"`
}

// NewAppState returns the state of a fresh session
func NewAppState() *AppState {
	return &AppState{View: ViewSearch}
}
