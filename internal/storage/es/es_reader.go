package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/press-hunter/internal/domain"
	"github.com/DjordjeVuckovic/press-hunter/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}

	return &Reader{
		client:    client,
		indexName: config.index(),
	}, nil
}

func (r *Reader) ListByTeam(ctx context.Context, teamID int, limit int) ([]domain.PressComment, error) {
	return r.listByTerm(ctx, "team_id", teamID, storage.ClampLimit(limit))
}

func (r *Reader) ListByFixture(ctx context.Context, fixtureID int) ([]domain.PressComment, error) {
	return r.listByTerm(ctx, "fixture_id", fixtureID, storage.MaxListSize)
}

func (r *Reader) listByTerm(ctx context.Context, field string, value int, size int) ([]domain.PressComment, error) {
	sortOrderDesc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				field: {Value: value},
			},
		}).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"published_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
		).
		Size(size).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "field", field, "value", value)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	comments := make([]domain.PressComment, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	return comments, nil
}
