// internal/download/batch.go
// Package download implements resumable bulk retrieval of full roll call
// records by id.
package download

import (
	"context"
	"encoding/json"
	"fmt"

	"voteview-client/internal/common/logger"
	"voteview-client/internal/common/metrics"
)

// State tracks a batch through its lifecycle. A failed run leaves the
// batch PartiallyFetched with the outstanding ids recorded, never back at
// Pending.
type State int

const (
	Pending State = iota
	PartiallyFetched
	Complete
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case PartiallyFetched:
		return "partially_fetched"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Fetcher retrieves full roll call records for a set of ids.
type Fetcher interface {
	Fetch(ctx context.Context, ids []string) (map[string]json.RawMessage, error)
}

// Batch tracks a bulk download across failures. Records fetched before a
// failure survive it; Resume picks up only the ids still outstanding.
// A Batch is call-local state for one bulk operation, not a persistent
// store, and is not safe for concurrent use.
type Batch struct {
	fetcher   Fetcher
	chunkSize int
	logger    logger.Logger

	state     State
	remaining []string
	fetched   map[string]json.RawMessage
}

func NewBatch(fetcher Fetcher, ids []string, chunkSize int, log logger.Logger) *Batch {
	if chunkSize <= 0 {
		chunkSize = 50
	}
	remaining := make([]string, len(ids))
	copy(remaining, ids)
	return &Batch{
		fetcher:   fetcher,
		chunkSize: chunkSize,
		logger:    log.WithFields(map[string]interface{}{"component": "download"}),
		state:     Pending,
		remaining: remaining,
		fetched:   make(map[string]json.RawMessage, len(ids)),
	}
}

func (b *Batch) State() State {
	return b.state
}

// Remaining returns a copy of the ids not yet fetched.
func (b *Batch) Remaining() []string {
	out := make([]string, len(b.remaining))
	copy(out, b.remaining)
	return out
}

// Results returns the records fetched so far, keyed by id. Ids a chunk
// request named but the server did not answer are simply absent.
func (b *Batch) Results() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(b.fetched))
	for id, rec := range b.fetched {
		out[id] = rec
	}
	return out
}

// Run fetches the outstanding ids chunk by chunk. On a chunk failure the
// batch keeps everything fetched so far, records the remaining ids, and
// returns the error; Resume continues from there.
func (b *Batch) Run(ctx context.Context) error {
	for len(b.remaining) > 0 {
		n := b.chunkSize
		if n > len(b.remaining) {
			n = len(b.remaining)
		}
		chunk := b.remaining[:n]

		recs, err := b.fetcher.Fetch(ctx, chunk)
		if err != nil {
			b.state = PartiallyFetched
			metrics.DownloadChunks.WithLabelValues("failed").Inc()
			b.logger.Warn("chunk fetch failed, batch can be resumed", map[string]interface{}{
				"chunkSize": n,
				"remaining": len(b.remaining),
				"fetched":   len(b.fetched),
				"error":     err.Error(),
			})
			return fmt.Errorf("fetch chunk of %d ids: %w", n, err)
		}

		for id, rec := range recs {
			b.fetched[id] = rec
		}
		b.remaining = b.remaining[n:]
		metrics.DownloadChunks.WithLabelValues("ok").Inc()
	}

	b.state = Complete
	b.logger.Info("batch download complete", map[string]interface{}{
		"fetched": len(b.fetched),
	})
	return nil
}

// Resume continues a partially fetched batch. Running a Complete batch is
// a no-op.
func (b *Batch) Resume(ctx context.Context) error {
	return b.Run(ctx)
}
