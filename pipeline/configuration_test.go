// SPDX-License-Identifier: GPL-3.0-or-later
package pipeline

import (
	"fmt"
	"testing"

	"github.com/CrawX/go-spamblocker/domain"

	"github.com/stretchr/testify/assert"
)

func TestFailClosed(t *testing.T) {
	cfg := &configuration{}
	err := FailClosed()(cfg)

	assert.Equal(t, cfg, &configuration{FailClosed: true})
	assert.Nil(t, err)
}

func TestConcurrent(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		cfg           *configuration
		expected      *configuration
		expectedError error
	}{
		{"ok", 4, &configuration{}, &configuration{Concurrent: true, ConcurrencyLimit: 4}, nil},
		{"limitvalidation", 0, &configuration{}, nil, fmt.Errorf("concurrency limit must be at least 1")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Concurrent(tc.input)(tc.cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, tc.cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestVerdictFilter(t *testing.T) {
	cfg := &configuration{}

	err := VerdictFilter(func(_ string, _ domain.Submission, v domain.Verdict) domain.Verdict { return v })(cfg)
	assert.Nil(t, err)
	assert.Len(t, cfg.Filters, 1)

	err = VerdictFilter(nil)(cfg)
	assert.Equal(t, fmt.Errorf("verdict filter cannot be nil"), err)
	assert.Len(t, cfg.Filters, 1)
}
