// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sirseerhq/trello-cli/pkg/version"
)

// RESTClient implements the Trello Client interface against the REST API.
// It provides access to boards, columns, labels, cards, and comments with
// safety features like response size limits and structured request logging.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithLogger routes the client's diagnostic output through the given
// logger. The default logger is a no-op.
func WithLogger(log *zap.Logger) Option {
	return func(c *RESTClient) {
		c.log = log
	}
}

// NewRESTClient creates a new Trello REST client with the provided
// credentials and endpoint. The client is configured with:
//   - Credential injection as query parameters on every request
//   - Custom endpoint URL (e.g., for a test server or proxy)
//   - Response size limiting to prevent memory issues
//   - Accept and User-Agent headers for API compliance
//   - Connection pooling for API performance
func NewRESTClient(key, token, endpoint string, opts ...Option) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	c := &RESTClient{
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Transport: &authTransport{
				key:   key,
				token: token,
				base:  transport,
			},
		},
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListBoards retrieves all boards belonging to the authenticated member.
func (c *RESTClient) ListBoards(ctx context.Context) ([]Board, error) {
	var boards []Board
	if err := c.do(ctx, http.MethodGet, "/1/members/me/boards", nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// ListColumns retrieves the columns (lists) of the specified board.
func (c *RESTClient) ListColumns(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	path := fmt.Sprintf("/1/boards/%s/lists", url.PathEscape(boardID))
	if err := c.do(ctx, http.MethodGet, path, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// ListLabels retrieves the labels configured on the specified board.
func (c *RESTClient) ListLabels(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	path := fmt.Sprintf("/1/boards/%s/labels", url.PathEscape(boardID))
	if err := c.do(ctx, http.MethodGet, path, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// AddCard creates a card in the specified column. The label ids are
// comma-joined into the idLabels field, which is sent even when empty.
func (c *RESTClient) AddCard(ctx context.Context, listID, name, desc string, labelIDs []string) (*Card, error) {
	params := url.Values{}
	params.Set("idList", listID)
	params.Set("name", name)
	params.Set("desc", desc)
	params.Set("idLabels", strings.Join(labelIDs, ","))

	var card Card
	if err := c.do(ctx, http.MethodPost, "/1/cards", params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// AddComment posts a comment on the specified card.
func (c *RESTClient) AddComment(ctx context.Context, cardID, text string) (*Comment, error) {
	params := url.Values{}
	params.Set("id", cardID)
	params.Set("text", text)

	var comment Comment
	path := fmt.Sprintf("/1/cards/%s/actions/comments", url.PathEscape(cardID))
	if err := c.do(ctx, http.MethodPost, path, params, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// do executes a single API request and decodes the 200 response body into
// out. POST parameters travel as a form-encoded body; credentials ride on
// the query string via the transport. Any status other than 200 becomes
// an *APIError carrying the raw body.
func (c *RESTClient) do(ctx context.Context, method, path string, params url.Values, out interface{}) error {
	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	c.log.Debug("trello api request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	c.log.Debug("trello api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	// Calculate how much we can read
	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds the credential query parameters and safety limits to HTTP requests
type authTransport struct {
	key   string
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	// Trello authenticates every request via key/token query parameters
	q := req.URL.Query()
	q.Set("key", t.key)
	q.Set("token", t.token)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")

	// Add user agent for identification
	req.Header.Set("User-Agent", fmt.Sprintf("trello-cli/%s", version.Version))

	// Execute the request
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit (10MB)
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024, // 10MB
		}
	}

	return resp, nil
}
