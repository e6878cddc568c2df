// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"fmt"

	"github.com/CrawX/go-spamblocker/domain"
)

// FilterFunc may replace the verdict of an active module after its check ran. With Concurrent
// a filter is called from several goroutines at once and must be safe for concurrent use.
type FilterFunc func(module string, submission domain.Submission, verdict domain.Verdict) domain.Verdict

type ConfigFunc func(c *configuration) error

func Concurrent(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < 1 {
			return fmt.Errorf("concurrency limit must be at least 1")
		}

		c.Concurrent = true
		c.ConcurrencyLimit = limit
		return nil
	}
}

// FailClosed makes an Indeterminate verdict of an active module block the submission.
func FailClosed() ConfigFunc {
	return func(c *configuration) error {
		c.FailClosed = true
		return nil
	}
}

func VerdictFilter(filter FilterFunc) ConfigFunc {
	return func(c *configuration) error {
		if filter == nil {
			return fmt.Errorf("verdict filter cannot be nil")
		}

		c.Filters = append(c.Filters, filter)
		return nil
	}
}

type configuration struct {
	Concurrent       bool
	ConcurrencyLimit int

	FailClosed bool

	Filters []FilterFunc
}
