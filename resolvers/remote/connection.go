// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package remote

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/google/jsonapi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxErrorBody = 512

// ConnectionOption describes a func that can modify a Connection
type ConnectionOption func(*Connection) error

// WithHTTPClient sets the client used to send requests.
func WithHTTPClient(client *http.Client) ConnectionOption {
	return func(c *Connection) error {
		if client == nil {
			return errors.New("nil http client")
		}
		c.client = client
		return nil
	}
}

// WithTimeout bounds every request, including reading the response body.
func WithTimeout(d time.Duration) ConnectionOption {
	return func(c *Connection) error {
		if d < 0 {
			return errors.Errorf("invalid timeout %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithLogger sets the logger requests are reported to.
func WithLogger(logger *zap.Logger) ConnectionOption {
	return func(c *Connection) error {
		c.logger = logger
		return nil
	}
}

// ErrResponse is returned when the service answers with an unexpected
// status code.
type ErrResponse struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *ErrResponse) Error() string {
	return fmt.Sprintf("%s %s: unexpected response %q: %s", e.Method, e.URL, e.Status, e.Body)
}

// Connection sends authenticated JSON:API requests to the
// cluster-management service. It does not retry.
type Connection struct {
	baseURL *url.URL
	token   string
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewConnection returns a Connection to the service at baseURL,
// authenticating with the bearer token.
func NewConnection(baseURL, token string, opts ...ConnectionOption) (*Connection, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid url %q", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("invalid url %q: missing host", baseURL)
	}

	c := &Connection{
		baseURL: u,
		token:   token,
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "failed to configure connection")
		}
	}
	return c, nil
}

// URL returns the url of the escaped path on the service.
func (c *Connection) URL(path string, query url.Values) string {
	u := *c.baseURL
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		unescaped = path
	}
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + unescaped
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

// fetch GETs path and hands the body of a successful response to decode.
// A 404 response is reported as not found rather than as an error.
func (c *Connection) fetch(ctx context.Context, path string, query url.Values, decode func(io.Reader) error) (bool, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.URL(path, query)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return false, errors.Wrapf(err, "failed to build request for %s", target)
	}
	req = req.WithContext(ctx)

	requestID, err := uuid.NewV4()
	if err != nil {
		return false, errors.Wrap(err, "failed to generate request id")
	}
	req.Header.Set("Accept", jsonapi.MediaType)
	req.Header.Set("Content-Type", jsonapi.MediaType)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", requestID.String())

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("url", target),
			zap.String("request_id", requestID.String()),
			zap.Error(err))
		return false, errors.Wrapf(err, "GET %s", target)
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		resp.Body.Close()
	}()

	c.logger.Debug("request completed",
		zap.String("url", target),
		zap.String("request_id", requestID.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, &ErrResponse{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := decode(resp.Body); err != nil {
		return false, errors.Wrapf(err, "failed to decode response of GET %s", target)
	}
	return true, nil
}
