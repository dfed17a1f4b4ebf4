// internal/search/members.go
package search

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"

	apierrors "voteview-client/internal/common/errors"
	"voteview-client/internal/common/metrics"
	"voteview-client/internal/table"
)

const endpointMembers = "members"

// SearchMembers forwards the member query fields as-is to the members
// endpoint and flattens the results with "id" leading. There is no
// client-side validation and no zero-match detection here: the server
// combines parameters however it likes, and an empty results array only
// surfaces as the flattener's EmptyInputError. A body that does not
// decode raises a TransportError carrying the raw text.
func (c *Client) SearchMembers(ctx context.Context, mq MemberQuery) (*Result, error) {
	form := url.Values{
		"name":     {mq.Name},
		"icpsr":    {mq.ICPSR},
		"state":    {mq.State},
		"congress": {mq.Congress},
		"cqlabel":  {mq.CQLabel},
		"chamber":  {mq.Chamber},
	}

	log := c.logger.WithFields(map[string]interface{}{
		"requestId": uuid.NewString(),
	})

	start := time.Now()
	body, hit, err := c.fetch(ctx, c.cfg.MembersURL(), endpointMembers+":"+form.Encode(), form, endpointMembers)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues(endpointMembers, "request_failed").Inc()
		return nil, err
	}
	metrics.SearchDuration.WithLabelValues(endpointMembers).Observe(time.Since(start).Seconds())

	var resp memberResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.SearchesTotal.WithLabelValues(endpointMembers, "undecodable").Inc()
		return nil, apierrors.NewTransportError(string(body), err)
	}

	tbl, err := table.Flatten(resp.Results, memberPriority)
	if err != nil {
		return nil, err
	}

	if c.cache != nil && !hit {
		c.cache.Set(ctx, endpointMembers+":"+form.Encode(), body)
	}

	log.Info("member search complete", map[string]interface{}{
		"resultCount": len(resp.Results),
	})
	metrics.SearchesTotal.WithLabelValues(endpointMembers, "ok").Inc()

	return &Result{
		Table: tbl,
		Count: len(resp.Results),
	}, nil
}
