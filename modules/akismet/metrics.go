// SPDX-License-Identifier: GPL-3.0-or-later
package akismet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "spamblocker_akismet_api_duration_sec",
	Help: "Duration of Akismet API calls, by method",
}, []string{"method"})

var apiCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spamblocker_akismet_api_count",
	Help: "Number of Akismet API calls, by method and HTTP status code",
}, []string{"method", "status"})
