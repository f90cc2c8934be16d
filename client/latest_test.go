package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdashboard/sales"
)

// latestTestServer serves the dashboard endpoints. While blocking is set it
// holds every response open until the request is canceled, reporting each
// arrival on inFlight.
func latestTestServer(blocking *atomic.Bool, inFlight chan<- struct{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if blocking.Load() {
			select {
			case inFlight <- struct{}{}:
			default:
			}
			<-r.Context().Done()
			return
		}
		switch r.URL.Path {
		case "/api/transactions":
			json.NewEncoder(w).Encode(TransactionsPage{Pagination: Pagination{TotalCount: 7}})
		case "/api/transactions/stats":
			json.NewEncoder(w).Encode(sales.Stats{TotalUnits: 7})
		}
	}))
}

func TestLatestDashboard(t *testing.T) {
	t.Run("passes through an uncontested query", func(t *testing.T) {
		var blocking atomic.Bool
		srv := latestTestServer(&blocking, make(chan struct{}, 2))
		defer srv.Close()

		l := NewLatest(New(Config{BaseURL: srv.URL}))
		data, err := l.Dashboard(context.Background(), sales.QueryState{})
		require.NoError(t, err)
		assert.Equal(t, 7, data.Page.Pagination.TotalCount)
		assert.Equal(t, 7, data.Stats.TotalUnits)
	})

	t.Run("a newer query supersedes the in-flight one", func(t *testing.T) {
		var blocking atomic.Bool
		blocking.Store(true)
		inFlight := make(chan struct{}, 2)
		srv := latestTestServer(&blocking, inFlight)
		defer srv.Close()

		l := NewLatest(New(Config{BaseURL: srv.URL}))

		staleErr := make(chan error, 1)
		go func() {
			_, err := l.Dashboard(context.Background(), sales.QueryState{Page: 1})
			staleErr <- err
		}()

		// Wait until the first query's requests reach the server, then let
		// the superseding one through.
		<-inFlight
		blocking.Store(false)

		data, err := l.Dashboard(context.Background(), sales.QueryState{Page: 2})
		require.NoError(t, err)
		require.NotNil(t, data)

		assert.ErrorIs(t, <-staleErr, ErrSuperseded)
	})

	t.Run("sequential queries each win", func(t *testing.T) {
		var blocking atomic.Bool
		srv := latestTestServer(&blocking, make(chan struct{}, 2))
		defer srv.Close()

		l := NewLatest(New(Config{BaseURL: srv.URL}))

		for page := 1; page <= 3; page++ {
			data, err := l.Dashboard(context.Background(), sales.QueryState{Page: page})
			require.NoError(t, err)
			require.NotNil(t, data)
		}
	})
}
