package service

const maxWeight = 50

// Weight scales a view count against the global maximum into 1..50.
// Unviewed targets weigh 1. A maximum below viewCount is treated as
// viewCount so the division is always defined, and a positive count never
// scales below 1.
func Weight(viewCount, maxViewCount int64) int64 {
	if viewCount <= 0 {
		return 1
	}
	if maxViewCount < viewCount {
		maxViewCount = viewCount
	}
	return max(viewCount*maxWeight/maxViewCount, 1)
}
