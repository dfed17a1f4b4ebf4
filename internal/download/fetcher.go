// internal/download/fetcher.go
package download

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	apierrors "voteview-client/internal/common/errors"
)

// Transport performs the outbound HTTP call and returns the raw body.
type Transport interface {
	PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error)
}

// HTTPFetcher posts comma-joined ids to the download endpoint.
type HTTPFetcher struct {
	transport Transport
	endpoint  string
}

func NewHTTPFetcher(transport Transport, endpoint string) *HTTPFetcher {
	return &HTTPFetcher{transport: transport, endpoint: endpoint}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, ids []string) (map[string]json.RawMessage, error) {
	form := url.Values{"ids": {strings.Join(ids, ",")}}
	body, err := f.transport.PostForm(ctx, f.endpoint, form)
	if err != nil {
		return nil, err
	}

	var resp struct {
		RollCalls []json.RawMessage `json:"rollcalls"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apierrors.NewTransportError(string(body), err)
	}

	out := make(map[string]json.RawMessage, len(resp.RollCalls))
	for _, raw := range resp.RollCalls {
		var rec struct {
			ID interface{} `json:"id"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil || rec.ID == nil {
			continue // records without an id cannot be keyed for resume
		}
		out[cast.ToString(rec.ID)] = raw
	}
	return out, nil
}
