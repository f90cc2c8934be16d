package client

import (
	"context"
	"errors"
	"sync"

	"salesdashboard/sales"
)

// ErrSuperseded is returned when a newer query was issued while this one
// was in flight. The stale result must not be applied.
var ErrSuperseded = errors.New("query superseded by a newer one")

// Latest serializes dashboard queries so only the most recently issued one
// can deliver a result: issuing a new query cancels the in-flight one, and
// a response that loses the race returns ErrSuperseded instead of data.
type Latest struct {
	client *Client

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewLatest wraps a client with latest-query-wins semantics.
func NewLatest(c *Client) *Latest {
	return &Latest{client: c}
}

// Dashboard runs a combined records+stats query. If another Dashboard call
// starts before this one finishes, this call's context is canceled and it
// returns ErrSuperseded.
func (l *Latest) Dashboard(ctx context.Context, q sales.QueryState) (*DashboardData, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.mu.Unlock()

	data, err := l.client.Dashboard(ctx, q)

	l.mu.Lock()
	current := seq == l.seq
	if current {
		l.cancel = nil
	}
	l.mu.Unlock()

	if !current {
		return nil, ErrSuperseded
	}
	return data, err
}
