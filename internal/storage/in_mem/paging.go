package in_mem

import "github.com/DjordjeVuckovic/news-portal/pkg/pagination"

func pageOf[T any](all []T, page pagination.OffsetRequest) ([]T, int64) {
	start, end := page.Window(len(all))
	out := make([]T, end-start)
	copy(out, all[start:end])
	return out, int64(len(all))
}
