package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/metrics"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

const (
	maxRetries      = 3
	initialBackoff  = 100 * time.Millisecond
	routerCloseWait = 5 * time.Second
)

// Worker applies dispatched side effects to the stores.
type Worker struct {
	router   *message.Router
	counts   storage.CountStore
	keywords storage.KeywordStore
}

func NewWorker(sub message.Subscriber, counts storage.CountStore, keywords storage.KeywordStore, logger watermill.LoggerAdapter) (*Worker, error) {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: routerCloseWait}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task router: %w", err)
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      maxRetries,
			InitialInterval: initialBackoff,
			Logger:          logger,
		}.Middleware,
	)

	w := &Worker{router: router, counts: counts, keywords: keywords}
	router.AddNoPublisherHandler("article_view_counter", TopicArticleView, sub, observed(TopicArticleView, w.handleArticleView))
	router.AddNoPublisherHandler("keyword_degree", TopicKeywordBump, sub, observed(TopicKeywordBump, w.handleKeywordBump))

	return w, nil
}

// Start runs the router in the background and returns once its handlers are
// subscribed. Cancelling ctx does not stop it; only Close does, so views
// dispatched by requests still draining are handled.
func (w *Worker) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		err := w.router.Run(context.WithoutCancel(ctx))
		if err != nil {
			slog.Error("Task worker stopped", "error", err)
		}
		errCh <- err
	}()

	select {
	case <-w.router.Running():
		return nil
	case err := <-errCh:
		return fmt.Errorf("task worker failed to start: %w", err)
	}
}

// Close waits for in-flight handlers, up to the router close timeout.
func (w *Worker) Close() error {
	return w.router.Close()
}

func (w *Worker) handleArticleView(msg *message.Message) error {
	var ev ArticleViewed
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		// poison message, retrying cannot help
		return nil
	}
	return w.counts.IncrementView(msg.Context(), ev.ArticleID)
}

func (w *Worker) handleKeywordBump(msg *message.Message) error {
	var ev KeywordSearched
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return nil
	}
	if strings.TrimSpace(ev.Keyword) == "" {
		return nil
	}
	return w.keywords.Bump(msg.Context(), ev.Keyword)
}

func observed(topic string, h message.NoPublishHandlerFunc) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		err := h(msg)
		result := metrics.ResultOK
		if err != nil {
			result = metrics.ResultError
		}
		metrics.TasksHandled.WithLabelValues(topic, result).Inc()
		return err
	}
}
