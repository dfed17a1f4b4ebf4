// internal/search/client.go
// Package search implements roll-call and member lookups against the
// voteview HTTP API.
package search

import (
	"context"
	"fmt"
	"net/url"

	"voteview-client/internal/common/cache"
	"voteview-client/internal/common/config"
	"voteview-client/internal/common/logger"
	"voteview-client/internal/common/metrics"
)

// Transport performs the outbound HTTP call and returns the raw body.
// Connection pooling, TLS and timeouts live behind this interface.
type Transport interface {
	PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error)
}

// rollCallPriority fixes the leading column order of flattened roll calls.
var rollCallPriority = []string{
	"description", "shortdescription", "date", "bill", "chamber",
	"congress", "rollnumber", "yea", "nay", "support", "id",
}

var memberPriority = []string{"id"}

// Client issues synchronous, one-call-per-operation searches. It holds no
// mutable state between calls.
type Client struct {
	transport Transport
	cfg       config.VoteviewConfig
	cache     cache.Cache // nil disables caching
	logger    logger.Logger
}

func NewClient(cfg config.VoteviewConfig, transport Transport, c cache.Cache, log logger.Logger) *Client {
	return &Client{
		transport: transport,
		cfg:       cfg,
		cache:     c,
		logger:    log.WithFields(map[string]interface{}{"component": "search"}),
	}
}

// fetch serves the request from cache when possible, otherwise posts the
// form. The second return reports a cache hit, so callers don't re-store
// what was just read.
func (c *Client) fetch(ctx context.Context, endpoint, cacheKey string, form url.Values, label string) ([]byte, bool, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			metrics.CacheHits.WithLabelValues(label).Inc()
			return body, true, nil
		}
	}

	body, err := c.transport.PostForm(ctx, endpoint, form)
	if err != nil {
		return nil, false, fmt.Errorf("voteview request: %w", err)
	}
	return body, false, nil
}
