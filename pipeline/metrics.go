// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var evaluationCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spamblocker_evaluations",
	Help: "Number of evaluated submissions, by outcome",
}, []string{"outcome"})

var evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "spamblocker_evaluation_duration_sec",
	Help: "Total duration of submission evaluation",
})

var moduleCheckCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spamblocker_module_checks",
	Help: "Number of module checks, by module and verdict",
}, []string{"module", "verdict"})

var moduleCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "spamblocker_module_check_duration_sec",
	Help: "Duration of module checks, by module",
}, []string{"module"})

var moduleSkipCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spamblocker_module_skipped",
	Help: "Number of times a module was skipped because it was inactive",
}, []string{"module"})
