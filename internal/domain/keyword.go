package domain

// Keyword tracks how often a search term produced results.
type Keyword struct {
	Keyword string `json:"keyword"`
	Degree  int64  `json:"degree"`
}
