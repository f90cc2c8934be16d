// Package client is the dashboard's adapter to the remote transaction and
// auth services. It encodes query state into the services' HTTP contract
// and decodes responses back into the domain types, so callers stay
// agnostic to local-versus-remote query execution.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"salesdashboard/sales"
)

// DefaultBaseURL is the local development endpoint used when no base URL is
// configured.
const DefaultBaseURL = "http://localhost:4000"

const defaultTimeout = 15 * time.Second

// maxResponseSize caps how much of an error response body is read (1MB).
const maxResponseSize = 1 << 20

// Config configures a Client.
type Config struct {
	// BaseURL is the backend root, with or without the /api suffix.
	// Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client. When nil a client
	// with a cookie jar is created so the auth service's HTTP-only session
	// cookie round-trips.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
}

// Client talks to the transaction and auth services.
type Client struct {
	baseURL string // normalized, ends with /api
	httpc   *http.Client

	mu    sync.RWMutex
	token string // bearer token from login, empty when cookie-only
}

// New creates a client for the configured backend.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}

	httpc := cfg.HTTPClient
	if httpc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		jar, _ := cookiejar.New(nil)
		httpc = &http.Client{Timeout: timeout, Jar: jar}
	}

	return &Client{baseURL: base, httpc: httpc}
}

// BaseURL returns the normalized endpoint the client is configured against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pagination is the paging envelope returned by the transactions endpoint.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// TransactionsPage is one page of records plus its pagination envelope.
type TransactionsPage struct {
	Transactions []sales.Transaction `json:"transactions"`
	Pagination   Pagination          `json:"pagination"`
}

// DashboardData is the combined result of one dashboard query: the record
// page and the aggregate stats over the same filter set.
type DashboardData struct {
	Page  *TransactionsPage
	Stats *sales.Stats
}

// Transactions fetches one page of records for the full query state.
func (c *Client) Transactions(ctx context.Context, q sales.QueryState) (*TransactionsPage, error) {
	var page TransactionsPage
	if err := c.get(ctx, "/transactions", encodeQuery(q), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Stats fetches aggregate stats for the filter set. Search, sort and
// pagination parameters are not sent.
func (c *Client) Stats(ctx context.Context, f sales.FilterState) (*sales.Stats, error) {
	values := url.Values{}
	encodeFilters(values, f)

	var stats sales.Stats
	if err := c.get(ctx, "/transactions/stats", values, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Dashboard issues the records and stats requests concurrently and returns
// both. The two calls are independent; a failure in either aborts the
// combined result.
func (c *Client) Dashboard(ctx context.Context, q sales.QueryState) (*DashboardData, error) {
	g, ctx := errgroup.WithContext(ctx)
	data := &DashboardData{}

	g.Go(func() error {
		page, err := c.Transactions(ctx, q)
		if err != nil {
			return err
		}
		data.Page = page
		return nil
	})
	g.Go(func() error {
		stats, err := c.Stats(ctx, q.Filters)
		if err != nil {
			return err
		}
		data.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// FilterOptions fetches the selectable values for every filter dimension.
func (c *Client) FilterOptions(ctx context.Context) (*sales.FilterOptions, error) {
	var opts sales.FilterOptions
	if err := c.get(ctx, "/transactions/filters", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// UploadResult reports the outcome of a CSV import.
type UploadResult struct {
	Message      string `json:"message"`
	TotalRecords int    `json:"totalRecords"`
	Imported     int    `json:"imported"`
	Errors       int    `json:"errors"`
	UploadID     string `json:"uploadId,omitempty"`
}

// Upload submits a CSV file as a multipart payload to the import endpoint.
func (c *Client) Upload(ctx context.Context, fileName string, file io.Reader) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create multipart payload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result UploadResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadEntry is one row of the CSV import history.
type UploadEntry struct {
	ID              string    `json:"id"`
	FileName        string    `json:"fileName"`
	FileSize        string    `json:"fileSize"`
	TotalRecords    int       `json:"totalRecords"`
	ImportedRecords int       `json:"importedRecords"`
	FailedRecords   int       `json:"failedRecords"`
	Status          string    `json:"status"`
	ErrorMessage    *string   `json:"errorMessage"`
	UploadedBy      *string   `json:"uploadedBy"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

// UploadHistory fetches past CSV imports, newest first.
func (c *Client) UploadHistory(ctx context.Context) ([]UploadEntry, error) {
	var resp struct {
		Uploads []UploadEntry `json:"uploads"`
	}
	if err := c.get(ctx, "/transactions/uploads", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Uploads, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes the response, mapping transport
// failures to ConnectivityError and non-2xx responses to APIError carrying
// the server's message.
func (c *Client) do(req *http.Request, out any) error {
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ConnectivityError{Endpoint: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// decodeErrorMessage extracts the structured message from an error
// response, falling back to the HTTP status text.
func decodeErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err == nil {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	}
	return fmt.Sprintf("request failed: %s", resp.Status)
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setBearerToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}
