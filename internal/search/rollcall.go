// internal/search/rollcall.go
package search

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"

	apierrors "voteview-client/internal/common/errors"
	"voteview-client/internal/common/metrics"
	"voteview-client/internal/query"
	"voteview-client/internal/table"
)

const endpointRollCalls = "rollcalls"

// SearchRollCalls builds the query string from params, posts it as the
// single form field "q", and flattens the matching roll calls. The built
// query string is attached to the result and to the returned table.
func (c *Client) SearchRollCalls(ctx context.Context, params query.Params) (*Result, error) {
	q, err := query.Build(params)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(endpointRollCalls, "invalid_params").Inc()
		return nil, err
	}

	log := c.logger.WithFields(map[string]interface{}{
		"requestId": uuid.NewString(),
		"query":     q,
	})

	start := time.Now()
	body, hit, err := c.fetch(ctx, c.cfg.SearchURL(), endpointRollCalls+":"+q, url.Values{"q": {q}}, endpointRollCalls)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(endpointRollCalls, "request_failed").Inc()
		return nil, err
	}
	metrics.SearchDuration.WithLabelValues(endpointRollCalls).Observe(time.Since(start).Seconds())

	var resp rollCallResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.SearchesTotal.WithLabelValues(endpointRollCalls, "undecodable").Inc()
		return nil, apierrors.NewTransportError(string(body), err)
	}

	if resp.RecordCount == 0 {
		metrics.SearchesTotal.WithLabelValues(endpointRollCalls, "empty").Inc()
		return nil, apierrors.NewEmptyResultError(q)
	}

	if resp.ErrorMessage != "" {
		// non-fatal: partial results may still be usable
		log.Warn("server reported a problem with the query", map[string]interface{}{
			"message": resp.ErrorMessage,
		})
	}

	tbl, err := table.Flatten(resp.RollCalls, rollCallPriority)
	if err != nil {
		return nil, err
	}
	tbl.Query = q

	if c.cache != nil && !hit {
		c.cache.Set(ctx, endpointRollCalls+":"+q, body)
	}

	log.Info("roll call search complete", map[string]interface{}{
		"recordCount": resp.RecordCount,
	})
	metrics.SearchesTotal.WithLabelValues(endpointRollCalls, "ok").Inc()

	return &Result{
		Table:   tbl,
		Query:   q,
		Count:   resp.RecordCount,
		Warning: resp.ErrorMessage,
	}, nil
}
