// SPDX-License-Identifier: GPL-3.0-or-later
package stopforumspam

import (
	"context"
	"fmt"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"

	"github.com/sirupsen/logrus"
)

const Name = "stopforumspam"

type lookuper interface {
	Lookup(ctx context.Context, query Query) (*Response, error)
}

// StopForumSpam checks the submitter's name, email and IP against the StopForumSpam
// reputation database. It needs no API key and is always active.
type StopForumSpam struct {
	client lookuper
	l      *logrus.Logger
}

func NewStopForumSpam(client *Client) *StopForumSpam {
	return &StopForumSpam{
		client: client,
		l:      log.Logger(log.LOG_STOPFORUMSPAM),
	}
}

func (sfs *StopForumSpam) Name() string {
	return Name
}

func (sfs *StopForumSpam) IsActive() bool {
	return true
}

func (sfs *StopForumSpam) Check(ctx context.Context, submission domain.Submission) *domain.CheckResult {
	query := Query{
		Username: submission.DisplayName,
		Email:    submission.Email,
		IP:       submission.RemoteIP,
	}
	if query.empty() {
		sfs.l.Debug("Nothing to look up, skipping")
		return domain.Allowed()
	}

	resp, err := sfs.client.Lookup(ctx, query)
	if err != nil {
		return domain.Undecided(fmt.Errorf("could not look up submission: %w", err))
	}

	if resp.Listed() {
		sfs.l.WithFields(logrus.Fields{"types": resp.Types, "appears": resp.Appears}).Info("Submission is listed")
		return domain.Blocked()
	}

	return domain.Allowed()
}
