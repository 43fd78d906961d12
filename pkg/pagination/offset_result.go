package pagination

// OffsetResult represents one page of items plus total-count metadata
type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	HasMore bool  `json:"has_more"`
}

// NewOffsetResult creates a new offset-based result
func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	offset := OffsetRequest{Page: page, Size: size}.Offset()
	hasMore := total-int64(offset) > int64(size)

	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		HasMore: hasMore,
	}
}
