package domain

// Count holds the mutable popularity counters of an article or a section.
// A missing Count reads as all zero until it is materialized.
type Count struct {
	EntityID     int64 `json:"entityId"`
	ViewCount    int64 `json:"viewCount"`
	LikeCount    int64 `json:"likeCount"`
	DislikeCount int64 `json:"dislikeCount"`
	ShareCount   int64 `json:"shareCount"`
	CollectCount int64 `json:"collectCount"`
}

// CountKind selects which entity family a counter belongs to.
type CountKind string

const (
	ArticleCounts CountKind = "article"
	SectionCounts CountKind = "section"
)
