package tasks

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/DjordjeVuckovic/news-portal/internal/metrics"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Dispatcher publishes fire-and-forget side effects. Failures are logged and
// counted, never returned to the request that triggered them.
type Dispatcher struct {
	publisher message.Publisher
}

func NewDispatcher(publisher message.Publisher) *Dispatcher {
	return &Dispatcher{publisher: publisher}
}

func (d *Dispatcher) ArticleViewed(ctx context.Context, articleID int64) {
	d.publish(ctx, TopicArticleView, ArticleViewed{ArticleID: articleID})
}

func (d *Dispatcher) KeywordSearched(ctx context.Context, keyword string) {
	d.publish(ctx, TopicKeywordBump, KeywordSearched{Keyword: keyword})
}

func (d *Dispatcher) publish(ctx context.Context, topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		d.fail(ctx, topic, err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := d.publisher.Publish(topic, msg); err != nil {
		d.fail(ctx, topic, err)
		return
	}
	metrics.TasksDispatched.WithLabelValues(topic, metrics.ResultOK).Inc()
}

func (d *Dispatcher) fail(ctx context.Context, topic string, err error) {
	slog.WarnContext(ctx, "Failed to dispatch background task", "topic", topic, "error", err)
	metrics.TasksDispatched.WithLabelValues(topic, metrics.ResultError).Inc()
}
