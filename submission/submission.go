// SPDX-License-Identifier: GPL-3.0-or-later
package submission

import (
	"strings"

	"github.com/CrawX/go-spamblocker/domain"
)

const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)

// New builds the normalized submission from what the form validation hook hands over.
func New(src domain.SubmissionSource, site domain.SiteMetadata) domain.Submission {
	values := src.SubmittedValues()

	headers := map[string]string{}
	for name, v := range src.Headers() {
		if len(v) == 0 {
			continue
		}
		headers[HeaderKey(name)] = strings.Join(v, ", ")
	}

	return domain.Submission{
		DisplayName: DisplayName(values[FieldFirstName], values[FieldLastName]),
		Email:       strings.TrimSpace(values[FieldEmail]),
		RemoteIP:    strings.TrimSpace(src.RemoteIP()),
		UserAgent:   src.UserAgent(),
		Referrer:    src.Referrer(),
		Site:        site,
	}.WithHeaders(headers)
}

func DisplayName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

// HeaderKey converts an HTTP header name into its CGI form, User-Agent becomes
// HTTP_USER_AGENT. Names that already are in CGI form are only upper-cased.
func HeaderKey(name string) string {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	if strings.HasPrefix(key, "HTTP_") || key == "PHP_AUTH_PW" {
		return key
	}

	return "HTTP_" + key
}
