package model

// SortOrder is the direction of a sorted query
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// PageOptions are the query/pagination parameters of a filtered fetch.
// Pipelines always read them from the current store snapshot at trigger time,
// never from captured state.
type PageOptions struct {
	Page      int               `json:"page"`
	PageSize  int               `json:"pageSize"`
	SortBy    string            `json:"sortBy"`
	SortOrder SortOrder         `json:"sortOrder"`
	Search    string            `json:"search"`
	Filters   map[string]string `json:"filters,omitempty"`
}

// DefaultPageOptions returns the first page with a standard page size
func DefaultPageOptions(sortBy string, order SortOrder) PageOptions {
	return PageOptions{
		Page:      1,
		PageSize:  20,
		SortBy:    sortBy,
		SortOrder: order,
	}
}
