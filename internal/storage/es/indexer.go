package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Indexer mirrors articles and sections into their search indices.
type Indexer struct {
	client       *elasticsearch.TypedClient
	config       ClientConfig
	indexBuilder *IndexBuilder
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexer := &Indexer{
		client:       client,
		config:       config,
		indexBuilder: NewIndexBuilder(),
	}

	if err := indexer.EnsureIndices(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indices exist: %w", err)
	}
	return indexer, nil
}

func (e *Indexer) EnsureIndices(ctx context.Context) error {
	if err := e.ensureIndex(ctx, e.config.ArticleIndex, e.indexBuilder.articleMapping()); err != nil {
		return err
	}
	return e.ensureIndex(ctx, e.config.SectionIndex, e.indexBuilder.sectionMapping())
}

func (e *Indexer) IndexArticles(ctx context.Context, articles []domain.Article) error {
	docs := make([]ArticleDocument, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, e.indexBuilder.articleDocument(a))
	}
	return bulkIndex(ctx, e.client, e.config.ArticleIndex, docs)
}

func (e *Indexer) IndexSections(ctx context.Context, sections []domain.Section) error {
	docs := make([]SectionDocument, 0, len(sections))
	for _, s := range sections {
		docs = append(docs, e.indexBuilder.sectionDocument(s))
	}
	return bulkIndex(ctx, e.client, e.config.SectionIndex, docs)
}

// Refresh makes freshly indexed documents visible to search.
func (e *Indexer) Refresh(ctx context.Context) error {
	_, err := e.client.Indices.Refresh().Index(e.config.ArticleIndex + "," + e.config.SectionIndex).Do(ctx)
	return err
}

func (e *Indexer) ensureIndex(ctx context.Context, index string, mappings types.TypeMapping) error {
	exists, err := e.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", index)
		return nil
	}

	settings := e.indexBuilder.buildSettings()

	createRes, err := e.client.Indices.Create(index).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", index, err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index %s creation was not acknowledged", index)
	}

	slog.Info("Index created successfully", "index", index)
	return nil
}

type document interface {
	docID() string
}

func bulkIndex[D document](ctx context.Context, client *elasticsearch.TypedClient, index string, docs []D) error {
	if len(docs) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         index,
		Client:        client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.docID())
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.docID(),
			Body:       bytes.NewReader(body),
			OnSuccess: func(context.Context, esutil.BulkIndexerItem, esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.docID())
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(docs),
		"index", index)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("failed to index %d out of %d documents", n, len(docs))
	}
	return nil
}
