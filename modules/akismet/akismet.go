// SPDX-License-Identifier: GPL-3.0-or-later
package akismet

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"

	"github.com/sirupsen/logrus"
)

const (
	Name        = "akismet"
	CommentType = "donation-form"
)

// ignoredKeys are never forwarded to Akismet, independent of what the submission carries.
var ignoredKeys = map[string]bool{
	"HTTP_COOKIE":              true,
	"HTTP_COOKIE2":             true,
	"PHP_AUTH_PW":              true,
	"HTTP_AUTHORIZATION":       true,
	"HTTP_PROXY_AUTHORIZATION": true,
}

type poster interface {
	Post(ctx context.Context, key, method string, form url.Values) (Response, error)
}

// Akismet classifies submissions with the Akismet comment-check API. It is only active
// while an API key is configured.
type Akismet struct {
	client poster
	config domain.ModuleConfig
	l      *logrus.Logger
}

func NewAkismet(client *Client, config domain.ModuleConfig) *Akismet {
	return &Akismet{
		client: client,
		config: config,
		l:      log.Logger(log.LOG_AKISMET),
	}
}

func (a *Akismet) Name() string {
	return Name
}

func (a *Akismet) IsActive() bool {
	return a.key() != ""
}

func (a *Akismet) key() string {
	if a.config == nil {
		return ""
	}
	return strings.TrimSpace(a.config.APIKey(Name))
}

func (a *Akismet) Check(ctx context.Context, submission domain.Submission) *domain.CheckResult {
	key := a.key()
	if key == "" {
		return domain.Undecided(fmt.Errorf("no akismet api key: %w", domain.ErrConfigurationMissing))
	}

	resp, err := a.client.Post(ctx, key, MethodCommentCheck, Payload(submission))
	if err != nil {
		return domain.Undecided(fmt.Errorf("could not classify submission: %w", err))
	}

	switch resp.Body {
	case "true":
		a.l.WithField("protip", resp.Header.Get("X-akismet-pro-tip")).Info("Submission classified as spam")
		return domain.Blocked()
	case "false":
		return domain.Allowed()
	case "invalid":
		a.l.WithField("help", resp.DebugHelp()).Warn("Akismet rejected the request, check the api key")
		return domain.Undecided(fmt.Errorf("akismet rejected the api key: %w", domain.ErrConfigurationMissing))
	}

	a.l.WithFields(logrus.Fields{"body": resp.Body, "help": resp.DebugHelp()}).Warn("Unexpected comment-check answer")
	return domain.Undecided(fmt.Errorf("unexpected comment-check answer %q: %w", resp.Body, domain.ErrMalformedResponse))
}

// Payload flattens a submission into the comment-check form.
func Payload(submission domain.Submission) url.Values {
	form := url.Values{}
	if submission.DisplayName != "" {
		form.Set("comment_author", submission.DisplayName)
	}
	if submission.Email != "" {
		form.Set("comment_author_email", submission.Email)
	}

	form.Set("blog", submission.Site.Home)
	form.Set("blog_lang", submission.Site.Locale)
	form.Set("blog_charset", submission.Site.Charset)
	form.Set("user_ip", submission.RemoteIP)
	form.Set("user_agent", submission.UserAgent)
	form.Set("referrer", submission.Referrer)
	form.Set("comment_type", CommentType)
	if submission.Site.Permalink != "" {
		form.Set("permalink", submission.Site.Permalink)
	}

	for k, v := range submission.Headers() {
		if ignoredKeys[strings.ToUpper(k)] {
			continue
		}
		if _, ok := form[k]; ok {
			continue
		}
		form.Set(k, v)
	}

	return form
}
