// SPDX-License-Identifier: GPL-3.0-or-later
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"
	"github.com/CrawX/go-spamblocker/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDecider struct {
	calls         int
	securityCheck bool
	submission    domain.Submission
	decision      *pipeline.Decision
}

func (rd *recordingDecider) Decide(_ context.Context, securityCheck bool, submission domain.Submission) *pipeline.Decision {
	rd.calls++
	rd.securityCheck = securityCheck
	rd.submission = submission
	return rd.decision
}

type staticSite domain.SiteMetadata

func (ss staticSite) Site() domain.SiteMetadata {
	return domain.SiteMetadata(ss)
}

func testServer(decider Decider) *Server {
	s := NewServer(decider, staticSite{Home: "https://example.org", Locale: "en_US", Charset: "UTF-8"})
	s.l = log.NullLogger()
	return s
}

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Check(t *testing.T) {
	decider := &recordingDecider{decision: &pipeline.Decision{ID: "abc", Allow: false, BlockedBy: "stopforumspam"}}
	s := testServer(decider)

	rec := post(t, s, `{
		"values": {"first_name": "Jane", "last_name": "Doe", "email": "jane@example.com"},
		"request": {
			"remote_ip": "1.2.3.4",
			"user_agent": "Mozilla/5.0",
			"referrer": "https://example.org/donate",
			"headers": {"Accept-Language": "en-US", "Cookie": "wordpress_logged_in=1"}
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	response := CheckResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, CheckResponse{ID: "abc", Allow: false, BlockedBy: "stopforumspam"}, response)

	assert.Equal(t, 1, decider.calls)
	assert.True(t, decider.securityCheck, "a missing security_check counts as passed")
	assert.Equal(t, "Jane Doe", decider.submission.DisplayName)
	assert.Equal(t, "jane@example.com", decider.submission.Email)
	assert.Equal(t, "1.2.3.4", decider.submission.RemoteIP)
	assert.Equal(t, "Mozilla/5.0", decider.submission.UserAgent)
	assert.Equal(t, "https://example.org/donate", decider.submission.Referrer)
	assert.Equal(t, "https://example.org", decider.submission.Site.Home)
	assert.Equal(t, map[string]string{"HTTP_ACCEPT_LANGUAGE": "en-US"}, decider.submission.Headers())
}

func TestServer_CheckFailedSecurityCheck(t *testing.T) {
	decider := &recordingDecider{decision: &pipeline.Decision{ID: "abc"}}
	s := testServer(decider)

	rec := post(t, s, `{"security_check": false, "values": {"email": "jane@example.com"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decider.securityCheck)
	assert.JSONEq(t, `{"id": "abc", "allow": false}`, rec.Body.String())
}

func TestServer_CheckBadRequest(t *testing.T) {
	decider := &recordingDecider{}
	s := testServer(decider)

	rec := post(t, s, `{"values": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, decider.calls)
}

func TestServer_Ping(t *testing.T) {
	s := testServer(&recordingDecider{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	s := testServer(&recordingDecider{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
