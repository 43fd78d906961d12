package domain

import "time"

// Article is a published news article. Articles are created by the ingestion
// pipeline and are not mutated by the portal.
type Article struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Source    string    `json:"source" yaml:"source"`
	Content   string    `json:"content" yaml:"content"`
	Keywords  string    `json:"keywords" yaml:"keywords"`
	Thumbnail string    `json:"thumbnail" yaml:"thumbnail"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}
