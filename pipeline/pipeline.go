// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Outcome is what a single module contributed to a decision. Inactive modules are
// recorded with Active unset and never ran.
type Outcome struct {
	Module   string
	Active   bool
	Verdict  domain.Verdict
	Error    error
	Duration time.Duration

	// set for concurrent checks that were cut short by another module's block
	cancelled bool
}

type Decision struct {
	ID    string
	Allow bool
	// BlockedBy names the first module, in registration order, that rejected the submission.
	BlockedBy string
	// ShortCircuited is set if modules were left out because the outcome was already fixed.
	ShortCircuited bool
	Outcomes       []Outcome
}

type Pipeline struct {
	registry      *Registry
	configuration *configuration

	l *logrus.Logger
}

func NewPipeline(registry *Registry, configFunc ...ConfigFunc) (*Pipeline, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}

	config := &configuration{}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Pipeline{
		registry:      registry,
		configuration: config,
		l:             log.Logger(log.LOG_PIPELINE),
	}, nil
}

// Evaluate reports whether the submission may proceed. securityCheck is the result of the
// validation that ran before, a false value is passed through without running any module.
func (p *Pipeline) Evaluate(ctx context.Context, securityCheck bool, submission domain.Submission) bool {
	return p.Decide(ctx, securityCheck, submission).Allow
}

func (p *Pipeline) Decide(ctx context.Context, securityCheck bool, submission domain.Submission) *Decision {
	decision := &Decision{ID: uuid.NewString()}

	if !securityCheck {
		decision.ShortCircuited = true
		evaluationCount.WithLabelValues("invalid").Inc()
		p.l.WithField("id", decision.ID).Debug("Submission already failed validation, not checking for spam")
		return decision
	}

	start := time.Now()
	if p.configuration.Concurrent {
		decision.Outcomes, decision.ShortCircuited = p.checkConcurrently(ctx, submission)
	} else {
		decision.Outcomes, decision.ShortCircuited = p.checkSequentially(ctx, submission)
	}

	decision.Allow = true
	for _, o := range decision.Outcomes {
		if p.blocks(o) {
			decision.Allow = false
			decision.BlockedBy = o.Module
			break
		}
	}

	duration := time.Since(start)
	evaluationDuration.Observe(duration.Seconds())
	if decision.Allow {
		evaluationCount.WithLabelValues("allow").Inc()
	} else {
		evaluationCount.WithLabelValues("block").Inc()
	}

	for _, o := range decision.Outcomes {
		fields := logrus.Fields{"id": decision.ID, "module": o.Module, "active": o.Active, "verdict": o.Verdict, "duration": o.Duration}
		if o.Error != nil && !o.cancelled {
			p.l.WithFields(fields).WithField("error", o.Error).Warn("Module could not decide")
		} else {
			p.l.WithFields(fields).Debug("Module checked")
		}
	}
	p.l.WithFields(logrus.Fields{"id": decision.ID, "allow": decision.Allow, "blockedby": decision.BlockedBy, "duration": duration}).Info("Evaluated submission")

	return decision
}

func (p *Pipeline) checkSequentially(ctx context.Context, submission domain.Submission) ([]Outcome, bool) {
	outcomes := make([]Outcome, 0, len(p.registry.modules))
	for i, m := range p.registry.modules {
		outcome := p.check(ctx, m, submission)
		outcomes = append(outcomes, outcome)

		if p.blocks(outcome) {
			return outcomes, i < len(p.registry.modules)-1
		}
	}

	return outcomes, false
}

// check runs a single module if it is active. It never panics and never returns an outcome
// without a verdict. A module that panics while reporting its activation counts as active
// and Indeterminate.
func (p *Pipeline) check(ctx context.Context, m domain.SpamCheckModule, submission domain.Submission) (outcome Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			outcome.Active = true
			outcome.Verdict = domain.Indeterminate
			outcome.Error = fmt.Errorf("module %s panicked: %v", outcome.Module, r)
		}
		if !outcome.Active {
			moduleSkipCount.WithLabelValues(outcome.Module).Inc()
			return
		}
		outcome.Duration = time.Since(start)

		moduleCheckDuration.WithLabelValues(outcome.Module).Observe(outcome.Duration.Seconds())
		moduleCheckCount.WithLabelValues(outcome.Module, outcome.Verdict.String()).Inc()
	}()

	outcome.Module = m.Name()
	if !m.IsActive() {
		return outcome
	}
	outcome.Active = true

	result := m.Check(ctx, submission)
	if result == nil {
		result = domain.Undecided(fmt.Errorf("module %s returned no result", outcome.Module))
	}

	verdict := result.Verdict
	for _, filter := range p.configuration.Filters {
		verdict = filter(outcome.Module, submission, verdict)
	}

	outcome.Verdict = verdict
	outcome.Error = result.Error

	return outcome
}

func (p *Pipeline) blocks(o Outcome) bool {
	if !o.Active || o.cancelled {
		return false
	}

	switch o.Verdict {
	case domain.Block:
		return true
	case domain.Indeterminate:
		return p.configuration.FailClosed
	}

	return false
}
