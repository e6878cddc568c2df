// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"context"
	"errors"

	"github.com/CrawX/go-spamblocker/domain"

	"golang.org/x/sync/errgroup"
)

var errBlocked = errors.New("submission blocked")

// checkConcurrently runs all modules with at most ConcurrencyLimit checks in flight. The
// first blocking outcome cancels the checks still pending or running, every outcome is
// collected before returning.
func (p *Pipeline) checkConcurrently(ctx context.Context, submission domain.Submission) ([]Outcome, bool) {
	outcomes := make([]Outcome, len(p.registry.modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.configuration.ConcurrencyLimit)
	for i, m := range p.registry.modules {
		index, module := i, m
		g.Go(func() error {
			// only our own cancellation skips a module, a caller deadline is left to the check
			cutShort := func() bool { return gctx.Err() != nil && ctx.Err() == nil }

			if cutShort() {
				outcomes[index] = Outcome{Module: module.Name(), Error: context.Canceled, cancelled: true}
				return nil
			}

			outcome := p.check(gctx, module, submission)
			if outcome.Verdict == domain.Indeterminate && cutShort() {
				outcome.cancelled = true
			}
			outcomes[index] = outcome

			if p.blocks(outcome) {
				return errBlocked
			}
			return nil
		})
	}

	err := g.Wait()
	if !errors.Is(err, errBlocked) {
		return outcomes, false
	}

	for _, o := range outcomes {
		if o.cancelled {
			return outcomes, true
		}
	}
	return outcomes, false
}
