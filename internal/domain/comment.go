package domain

import "time"

type Comment struct {
	ID           int64     `json:"id" yaml:"id"`
	ArticleID    int64     `json:"articleId" yaml:"article_id"`
	UserID       int64     `json:"userId" yaml:"user_id"`
	Content      string    `json:"content" yaml:"content"`
	LikeCount    int64     `json:"likeCount" yaml:"like_count"`
	DislikeCount int64     `json:"dislikeCount" yaml:"dislike_count"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
}

// User is the display identity joined onto comments at read time.
type User struct {
	ID       int64  `json:"id" yaml:"id"`
	Nickname string `json:"nickname" yaml:"nickname"`
	Avatar   string `json:"avatar" yaml:"avatar"`
}
