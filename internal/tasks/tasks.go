package tasks

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicArticleView = "article.view"
	TopicKeywordBump = "keyword.bump"
)

const outputBuffer = 1024

type ArticleViewed struct {
	ArticleID int64 `json:"articleId"`
}

type KeywordSearched struct {
	Keyword string `json:"keyword"`
}

// NewBus returns the in-process event bus shared by the dispatcher and the worker.
func NewBus(logger *slog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: outputBuffer},
		watermill.NewSlogLogger(logger),
	)
}
