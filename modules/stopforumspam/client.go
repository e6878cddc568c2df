// SPDX-License-Identifier: GPL-3.0-or-later
package stopforumspam

import (
	"context"
	"encoding/xml"
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
	DefaultEndpoint = "https://api.stopforumspam.org/api"
	DefaultTimeout  = 3 * time.Second

	// responses larger than this are not a lookup result
	maxResponseSize = 64 * 1024
)

type Query struct {
	Username string
	Email    string
	IP       string
}

func (q Query) empty() bool {
	return q.Username == "" && q.Email == "" && q.IP == ""
}

func (q Query) form() url.Values {
	form := url.Values{}
	if q.Username != "" {
		form.Add("username[]", q.Username)
	}
	if q.Email != "" {
		form.Set("email", q.Email)
	}
	if q.IP != "" {
		form.Set("ip", q.IP)
	}
	// treat tor exit nodes as regular ips instead of always reporting them
	form.Set("badtorexit", "")

	return form
}

// Response is the XML document returned by the lookup API. Entries are listed per queried
// field, each one with its own appears node.
type Response struct {
	XMLName xml.Name `xml:"response"`
	Success string   `xml:"success,attr"`
	Types   []string `xml:"type"`
	Appears []string `xml:"appears"`
	Error   string   `xml:"error"`
}

// Listed reports whether any queried field appears in the database.
func (r *Response) Listed() bool {
	for _, appears := range r.Appears {
		if strings.EqualFold(strings.TrimSpace(appears), "yes") {
			return true
		}
	}

	return false
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

func (c *Client) Lookup(ctx context.Context, query Query) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query.form().Encode()))
	if err != nil {
		return nil, fmt.Errorf("could not create lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", domain.UserAgent)

	start := time.Now()
	defer func() {
		apiDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := c.client.Do(req)
	if err != nil {
		apiCount.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("could not perform lookup request: %v: %w", err, domain.ErrTransport)
	}
	defer resp.Body.Close()

	apiCount.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from stopforumspam, expected 200: %w", resp.StatusCode, domain.ErrTransport)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("could not read stopforumspam response: %v: %w", err, domain.ErrTransport)
	}

	response := &Response{}
	err = xml.Unmarshal(body, response)
	if err != nil {
		return nil, fmt.Errorf("could not deserialize stopforumspam response: %v: %w", err, domain.ErrMalformedResponse)
	}

	if response.Success != "true" && response.Success != "1" {
		return nil, fmt.Errorf("stopforumspam reported failure %q: %w", strings.TrimSpace(response.Error), domain.ErrMalformedResponse)
	}

	return response, nil
}
