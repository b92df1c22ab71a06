package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the remote content store: a document database exposing
// list/create operations over named collections. It is a read-mostly API;
// the single write this service issues is the consultation submission.
type Client struct {
	endpoint string
	project  string
	http     *http.Client
}

// New returns a client for the given endpoint and project id.
func New(endpoint, project string) *Client {
	return &Client{
		endpoint: endpoint,
		project:  project,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// ListOptions narrows a collection listing. Equal applies field=value
// equality filters, OrderDesc sorts by the named field descending, Limit
// caps the result count (0 means server default).
type ListOptions struct {
	Equal     map[string]string
	OrderDesc string
	Limit     int
}

// DocumentList is the envelope returned by a list call.
type DocumentList struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// ListDocuments fetches documents from a named collection.
func (c *Client) ListDocuments(ctx context.Context, collection string, opts ListOptions) (*DocumentList, error) {
	q := url.Values{}
	for field, value := range opts.Equal {
		q.Add("eq", field+":"+value)
	}
	if opts.OrderDesc != "" {
		q.Set("orderDesc", opts.OrderDesc)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	u := fmt.Sprintf("%s/collections/%s/documents", c.endpoint, url.PathEscape(collection))
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing %s: %s", collection, readError(resp))
	}

	var list DocumentList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", collection, err)
	}
	return &list, nil
}

// CreateDocument inserts one document into a named collection and returns
// the id the store assigned.
func (c *Client) CreateDocument(ctx context.Context, collection string, data interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshaling document: %w", err)
	}

	u := fmt.Sprintf("%s/collections/%s/documents", c.endpoint, url.PathEscape(collection))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("creating document in %s: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("creating document in %s: %s", collection, readError(resp))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decoding create response: %w", err)
	}
	return created.ID, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Content-Project", c.project)
	req.Header.Set("Accept", "application/json")
}

// readError extracts a short error description from a non-2xx response.
func readError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil || len(body) == 0 {
		return resp.Status
	}
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return fmt.Sprintf("%s: %s", resp.Status, e.Error)
	}
	return resp.Status
}
