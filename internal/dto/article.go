package dto

import "time"

// ArticleView is one row of a channel listing.
type ArticleView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Keywords  string `json:"keywords"`
	ViewCount int64  `json:"viewCount"`
	Thumbnail string `json:"thumbnail"`
}

// SearchArticleView carries a truncated content preview.
type SearchArticleView struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

type ArticleDetailView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Content   string `json:"content"`
	Keywords  string `json:"keywords"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
}

type CommentView struct {
	ID           int64     `json:"id"`
	ArticleID    int64     `json:"articleId"`
	UserID       int64     `json:"userId"`
	Content      string    `json:"content"`
	LikeCount    int64     `json:"likeCount"`
	DislikeCount int64     `json:"dislikeCount"`
	CreatedAt    time.Time `json:"createdAt"`
	Date         string    `json:"date"`
	NickName     string    `json:"nickName"`
	Avatar       string    `json:"avatar"`
}

type AddCommentRequest struct {
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}
