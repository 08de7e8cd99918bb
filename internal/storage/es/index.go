package es

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// EnsureIndex creates the comments index with explicit mappings when it does not exist.
func EnsureIndex(ctx context.Context, client *elasticsearch.TypedClient, name string) error {
	existsRes, err := client.Indices.Exists(name).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", name)
		return nil
	}

	analyzer := "english"
	commentText := types.NewTextProperty()
	commentText.Analyzer = &analyzer

	title := types.NewTextProperty()
	title.Analyzer = &analyzer
	title.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewKeywordProperty(),
			"fixture_id":    types.NewIntegerNumberProperty(),
			"team_id":       types.NewIntegerNumberProperty(),
			"article_url":   types.NewKeywordProperty(),
			"article_title": title,
			"published_at":  types.NewDateProperty(),
			"speaker":       types.NewKeywordProperty(),
			"comment_text":  commentText,
			"created_at":    types.NewDateProperty(),
		},
	}

	createRes, err := client.Indices.Create(name).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", name)
	return nil
}
