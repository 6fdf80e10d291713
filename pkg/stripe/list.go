package stripe

// List is one page of a collection, in the order the server returned it
// (newest first by convention).
type List[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
	URL     string `json:"url,omitempty"`
}

// Len returns the number of items on the page.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.Data)
}

// Deleted is the response of a delete operation.
type Deleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
