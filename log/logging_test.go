// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, getLevel(tc.input))
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	InitLogging("info")

	SetLogLevel("debug")
	for _, component := range components {
		assert.Equal(t, logrus.DebugLevel, Logger(component).Level, component)
	}

	assert.Panics(t, func() { Logger("XX") })
}

func TestSetLogFormat(t *testing.T) {
	InitLogging("info")
	defer InitLogging("info")

	assert.EqualError(t, SetLogFormat("xml"), `unknown log format "xml"`)

	require.NoError(t, SetLogFormat("JSON"))
	for _, component := range components {
		formatter, ok := Logger(component).Formatter.(*ComponentFormatter)
		require.True(t, ok, component)
		assert.True(t, formatter.json, component)
	}
}

func TestComponentFormatter_Text(t *testing.T) {
	formatter := NewComponentFormatter(LOG_PIPELINE, FORMAT_TEXT)

	text, err := formatter.Format(&logrus.Entry{Logger: logrus.New(), Message: "hello"})
	assert.NoError(t, err)
	assert.Contains(t, string(text), "PL:\t")
	assert.Contains(t, string(text), "hello")
}

func TestComponentFormatter_JSON(t *testing.T) {
	formatter := NewComponentFormatter(LOG_AKISMET, FORMAT_JSON)

	text, err := formatter.Format(&logrus.Entry{Logger: logrus.New(), Message: "hello", Data: logrus.Fields{"module": "akismet"}})
	require.NoError(t, err)

	fields := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(text, &fields))
	assert.Equal(t, "AK", fields["component"])
	assert.Equal(t, "akismet", fields["module"])
	assert.Equal(t, "hello", fields["msg"])
}
