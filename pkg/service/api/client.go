// Package api provides the default HTTP implementation of the API
// collaborator. The wire schema is a boundary detail: every method decodes
// an opaque JSON body into the domain models and normalizes transport
// failures with the network error tag, so pipelines never see a raw HTTP
// error.
package api

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

	"github.com/m-mizutani/goerr/v2"

	"github.com/lakecity-club/clubstate/pkg/domain/interfaces"
	"github.com/lakecity-club/clubstate/pkg/domain/model"
	"github.com/lakecity-club/clubstate/pkg/domain/types"
	"github.com/lakecity-club/clubstate/pkg/utils/safe"
)

// Client talks to the club backend over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.API = &Client{}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the backend at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("API base URL is required")
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Articles() interfaces.ArticlesAPI { return &articlesClient{c} }
func (c *Client) Images() interfaces.ImagesAPI     { return &imagesClient{c} }
func (c *Client) Auth() interfaces.AuthAPI         { return &authClient{c} }
func (c *Client) Events() interfaces.EventsAPI     { return &eventsClient{c} }
func (c *Client) Members() interfaces.MembersAPI   { return &membersClient{c} }

// do performs a request and decodes the JSON response into out (skipped when
// out is nil). Non-2xx statuses and transport errors come back tagged as
// network failures.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
		}
		reqBody = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed",
			goerr.T(types.ErrTagNetwork), goerr.V("method", method), goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New(
			fmt.Sprintf("backend returned status %d", resp.StatusCode),
			goerr.T(types.ErrTagNetwork),
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("body", string(msg)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.T(types.ErrTagNetwork), goerr.V("path", path))
	}
	return nil
}

func pageQuery(opts model.PageOptions) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("pageSize", strconv.Itoa(opts.PageSize))
	q.Set("sortBy", opts.SortBy)
	q.Set("sortOrder", string(opts.SortOrder))
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	for k, v := range opts.Filters {
		q.Set("filter."+k, v)
	}
	return q
}
