// SPDX-License-Identifier: GPL-3.0-or-later
package akismet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/CrawX/go-spamblocker/domain"
)

const (
	DefaultEndpoint = "https://%s.rest.akismet.com/1.1/"
	DefaultTimeout  = 3 * time.Second

	MethodCommentCheck = "comment-check"
	MethodVerifyKey    = "verify-key"

	maxResponseSize = 4 * 1024
)

// Response mirrors the provider's answer as a header and body pair. For comment-check the
// body is the literal "true" for spam and "false" otherwise.
type Response struct {
	Header http.Header
	Body   string
}

func (r Response) DebugHelp() string {
	return r.Header.Get("X-akismet-debug-help")
}

type Client struct {
	client   *http.Client
	endpoint string
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		endpoint: endpoint,
	}
}

func (c *Client) url(key, method string) string {
	base := c.endpoint
	if strings.Contains(base, "%s") {
		base = fmt.Sprintf(base, key)
	}

	return strings.TrimRight(base, "/") + "/" + method
}

// Post sends form to the given API method. The key is passed both in the host name and as
// api_key so endpoints without the per-key subdomain work as well.
func (c *Client) Post(ctx context.Context, key, method string, form url.Values) (Response, error) {
	body := url.Values{}
	for k, v := range form {
		body[k] = v
	}
	body.Set("api_key", key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(key, method), strings.NewReader(body.Encode()))
	if err != nil {
		return Response{}, fmt.Errorf("could not create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("User-Agent", domain.UserAgent)

	start := time.Now()
	defer func() {
		apiDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}()

	resp, err := c.client.Do(req)
	if err != nil {
		apiCount.WithLabelValues(method, "error").Inc()
		return Response{}, fmt.Errorf("could not perform %s request: %v: %w", method, err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	apiCount.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("unexpected status %d from akismet, expected 200: %w", resp.StatusCode, domain.ErrTransport)
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Response{}, fmt.Errorf("could not read akismet response: %v: %w", err, domain.ErrTransport)
	}

	return Response{
		Header: resp.Header,
		Body:   strings.TrimSpace(string(respBody)),
	}, nil
}

// VerifyKey reports whether key is accepted for blog.
func (c *Client) VerifyKey(ctx context.Context, key, blog string) (bool, error) {
	resp, err := c.Post(ctx, key, MethodVerifyKey, url.Values{
		"key":  {key},
		"blog": {blog},
	})
	if err != nil {
		return false, fmt.Errorf("could not verify key: %w", err)
	}

	switch resp.Body {
	case "valid":
		return true, nil
	case "invalid":
		return false, nil
	}

	return false, fmt.Errorf("unexpected verify-key answer %q: %w", resp.Body, domain.ErrMalformedResponse)
}
