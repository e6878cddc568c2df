// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"net/http"
	"testing"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/domain/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSubmissionSource(ctrl)
	src.EXPECT().SubmittedValues().Return(map[string]string{
		"first_name": " Jane",
		"last_name":  "Doe ",
		"email":      "jane@example.com ",
		"amount":     "10",
	})
	src.EXPECT().RemoteIP().Return("1.2.3.4")
	src.EXPECT().UserAgent().Return("Mozilla/5.0")
	src.EXPECT().Referrer().Return("https://example.org/donate")
	src.EXPECT().Headers().Return(http.Header{
		"Accept-Language": {"en-US", "de"},
		"Cookie":          {"wordpress_logged_in=1"},
		"Authorization":   {"Basic Zm9vOmJhcg=="},
		"X-Empty":         {},
	})

	site := domain.SiteMetadata{Home: "https://example.org", Locale: "en_US", Charset: "UTF-8"}
	s := New(src, site)

	assert.Equal(t, "Jane Doe", s.DisplayName)
	assert.Equal(t, "jane@example.com", s.Email)
	assert.Equal(t, "1.2.3.4", s.RemoteIP)
	assert.Equal(t, "Mozilla/5.0", s.UserAgent)
	assert.Equal(t, "https://example.org/donate", s.Referrer)
	assert.Equal(t, site, s.Site)
	assert.Equal(t, map[string]string{"HTTP_ACCEPT_LANGUAGE": "en-US, de"}, s.Headers())
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, expected string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{"", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplayName(tc.first, tc.last))
		})
	}
}

func TestHeaderKey(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"User-Agent", "HTTP_USER_AGENT"},
		{"cookie", "HTTP_COOKIE"},
		{"Cookie2", "HTTP_COOKIE2"},
		{"HTTP_ACCEPT", "HTTP_ACCEPT"},
		{"http_accept", "HTTP_ACCEPT"},
		{"php_auth_pw", "PHP_AUTH_PW"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, HeaderKey(tc.input))
		})
	}
}
