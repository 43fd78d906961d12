package pagination

import "math"

// OffsetRequest represents a 1-based page request
type OffsetRequest struct {
	Page int `json:"pageNum" query:"pageNum" validate:"min=1"`
	Size int `json:"pageSize" query:"pageSize" validate:"min=1,max=100"`
}

// Validate validates and normalizes offset pagination parameters
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	return nil
}

// Offset returns the number of rows preceding the requested page.
// It saturates at math.MaxInt for pages far beyond any result set.
func (r OffsetRequest) Offset() int {
	if r.Page <= 1 || r.Size <= 0 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Size
}

// Window returns the [start, end) slice bounds of the page within total rows
func (r OffsetRequest) Window(total int) (int, int) {
	start := r.Offset()
	if start > total {
		start = total
	}
	end := start + r.Size
	if end > total {
		end = total
	}
	return start, end
}
