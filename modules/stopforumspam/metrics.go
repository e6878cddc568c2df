// SPDX-License-Identifier: GPL-3.0-or-later
package stopforumspam

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "spamblocker_stopforumspam_api_duration_sec",
	Help: "Duration of StopForumSpam lookup API calls",
})

var apiCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "spamblocker_stopforumspam_api_count",
	Help: "Number of StopForumSpam lookup API calls, by HTTP status code",
}, []string{"status"})
