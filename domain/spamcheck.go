// SPDX-License-Identifier: GPL-3.0-or-later

//go:generate mockgen -destination=mocks/spamcheck.go -package=mocks . SpamCheckModule,ModuleConfig,SubmissionSource
package domain

import (
	"context"
	"errors"
	"net/http"
)

type Verdict int

const (
	Indeterminate = Verdict(0)
	Allow         = Verdict(1)
	Block         = Verdict(2)
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Block:
		return "block"
	}

	return "indeterminate"
}

var (
	ErrTransport            = errors.New("transport error")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrConfigurationMissing = errors.New("configuration missing")
)

// CheckResult carries the verdict of a single module. Error is only set together with
// Indeterminate.
type CheckResult struct {
	Verdict Verdict
	Error   error
}

func Allowed() *CheckResult {
	return &CheckResult{Verdict: Allow}
}

func Blocked() *CheckResult {
	return &CheckResult{Verdict: Block}
}

func Undecided(err error) *CheckResult {
	return &CheckResult{Verdict: Indeterminate, Error: err}
}

type SpamCheckModule interface {
	Name() string
	// IsActive must not have side effects, it is called before every check.
	IsActive() bool
	// Check never returns nil. Provider and network failures end up as Indeterminate.
	Check(ctx context.Context, submission Submission) *CheckResult
}

type ModuleConfig interface {
	APIKey(module string) string
}

// SubmissionSource is what the donation form validation hook hands over: the submitted
// form values plus the context of the request that carried them.
type SubmissionSource interface {
	SubmittedValues() map[string]string
	RemoteIP() string
	UserAgent() string
	Referrer() string
	Headers() http.Header
}

// UserAgent is sent to every third-party service.
const UserAgent = "go-spamblocker/1.0"
