package models

// PageSize is the backend's fixed pagination size. TotalPages must agree
// with the server's value or the pagination UI drifts out of sync.
const PageSize = 6

// Page is one page of a paginated collection.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// TotalPages derives the page count as ceil(Count/PageSize).
// A zero Count yields zero pages.
func (p Page[T]) TotalPages() int {
	return (p.Count + PageSize - 1) / PageSize
}
