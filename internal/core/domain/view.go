package domain

// ViewMode says which query result a page view is showing.
type ViewMode string

const (
	ModeAll      ViewMode = "all"
	ModeSearch   ViewMode = "search"
	ModeCategory ViewMode = "category"
)

const (
	MessageNotFound    = "Product not found."
	MessageQueryFailed = "Something went wrong while loading products. Please try again."
)

// ViewState is the per-tab UI state: selected category and active search.
type ViewState struct {
	SelectedCategory string
	SearchTerm       string
}

// Filtered reports whether a category filter is active.
func (v ViewState) Filtered() bool { return v.SelectedCategory != "" }

// PageView is what the storefront renders for a tab: a primary display
// region, an overflow region (only used for the unfiltered listing), and the
// category menu.
type PageView struct {
	Mode             ViewMode    `json:"mode"`
	Status           QueryStatus `json:"status"`
	Primary          []Product   `json:"primary"`
	Secondary        []Product   `json:"secondary"`
	Categories       []Category  `json:"categories"`
	SelectedCategory string      `json:"selected_category,omitempty"`
	SearchTerm       string      `json:"search_term,omitempty"`
	NotFound         bool        `json:"not_found"`
	Message          string      `json:"message,omitempty"`
}
