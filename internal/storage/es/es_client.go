package es

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

const (
	DefaultIndexName  = "press_comments"
	defaultMaxRetries = 3
	healthTimeout     = 2 * time.Second
)

// ClientConfig configures the typed client. APIKey wins over basic auth when both are set.
type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
	APIKey    string
}

func (c ClientConfig) index() string {
	if c.IndexName == "" {
		return DefaultIndexName
	}
	return c.IndexName
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if len(config.Addresses) == 0 {
		return nil, fmt.Errorf("failed to create Elasticsearch client: no addresses configured")
	}

	cfg := elasticsearch.Config{
		Addresses:           config.Addresses,
		MaxRetries:          defaultMaxRetries,
		CompressRequestBody: true,
	}
	switch {
	case config.APIKey != "":
		cfg.APIKey = config.APIKey
	case config.Username != "" && config.Password != "":
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	return client, nil
}

// HealthChecker reports whether the cluster answers a ping.
type HealthChecker struct {
	client *elasticsearch.TypedClient
}

func NewHealthChecker(config ClientConfig) (*HealthChecker, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return &HealthChecker{client: client}, nil
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	ok, err := hc.client.Ping().IsSuccess(ctx)
	if err != nil || !ok {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return true
}
