// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "strings"

// SensitiveHeaders never leave the process, whatever module consumes a submission.
var SensitiveHeaders = []string{
	"HTTP_COOKIE",
	"HTTP_COOKIE2",
	"PHP_AUTH_PW",
	"HTTP_AUTHORIZATION",
	"HTTP_PROXY_AUTHORIZATION",
}

type SiteMetadata struct {
	Home      string
	Locale    string
	Charset   string
	Permalink string
}

// Submission is the normalized donation form submission. It is passed by value, the header
// map is private and only ever handed out as a copy.
type Submission struct {
	DisplayName string
	Email       string
	RemoteIP    string
	UserAgent   string
	Referrer    string
	Site        SiteMetadata

	headers map[string]string
}

// WithHeaders returns a copy of s carrying headers, minus SensitiveHeaders. Keys are
// expected in CGI form, e.g. HTTP_ACCEPT_LANGUAGE.
func (s Submission) WithHeaders(headers map[string]string) Submission {
	s.headers = make(map[string]string, len(headers))
	for k, v := range headers {
		if IsSensitiveHeader(k) {
			continue
		}
		s.headers[k] = v
	}

	return s
}

func (s Submission) Headers() map[string]string {
	headers := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		headers[k] = v
	}

	return headers
}

func IsSensitiveHeader(key string) bool {
	for _, sensitive := range SensitiveHeaders {
		if strings.EqualFold(key, sensitive) {
			return true
		}
	}

	return false
}
