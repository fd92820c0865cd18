package domain

// PagedResult bundles one page of rows with the totals needed by clients.
type PagedResult[T any] struct {
	Items       []T `json:"items"`
	TotalCount  int `json:"totalCount"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// CountResult is the payload of the total* endpoints.
type CountResult struct {
	TotalCount int `json:"totalCount"`
}

