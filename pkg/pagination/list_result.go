package pagination

// ListResult is a single page of items without a continuation cursor.
type ListResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewListResult[T any](items []T) ListResult[T] {
	if items == nil {
		items = []T{}
	}
	return ListResult[T]{Items: items, Count: len(items)}
}
