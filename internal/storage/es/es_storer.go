package es

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Storer indexes press comments using the comment id as document id.
type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	storer := &Storer{
		client:    client,
		indexName: config.index(),
	}

	if err := EnsureIndex(ctx, client, storer.indexName); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Exists(ctx context.Context, articleURL string) (bool, error) {
	exists, err := e.client.Exists(e.indexName, domain.NewCommentID(articleURL)).Do(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check document existence: %w", err)
	}
	return exists, nil
}

// Save creates the document. An existing document with the same id is left untouched.
func (e *Storer) Save(ctx context.Context, comment domain.PressComment) error {
	doc := toDocument(comment, time.Now())

	res, err := e.client.Create(e.indexName, doc.ID).Document(doc).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusConflict {
			slog.Info("Document already indexed", "id", doc.ID, "index", e.indexName)
			return nil
		}
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Info("Document indexed successfully", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return nil
}
