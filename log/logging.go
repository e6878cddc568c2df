// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
)

var (
	loggersMu sync.RWMutex
	loggers   map[string]*logrus.Logger
)

// ComponentFormatter tags every entry with the component that logged it. Text output is
// prefixed with the component, JSON output carries it in the component field.
type ComponentFormatter struct {
	component string
	json      bool
	text      *logrus.TextFormatter
	structure *logrus.JSONFormatter
}

func NewComponentFormatter(component, format string) *ComponentFormatter {
	return &ComponentFormatter{
		component: component,
		json:      strings.EqualFold(format, FORMAT_JSON),
		text: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   runtime.GOOS == "windows",
		},
		structure: &logrus.JSONFormatter{},
	}
}

func (f *ComponentFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if f.json {
		data := make(logrus.Fields, len(entry.Data)+1)
		for k, v := range entry.Data {
			data[k] = v
		}
		data["component"] = f.component

		tagged := *entry
		tagged.Data = data
		return f.structure.Format(&tagged)
	}

	text, err := f.text.Format(entry)
	if err != nil {
		return nil, err
	}
	return append([]byte(f.component+":\t"), text...), nil
}

const (
	LOG_MAIN          = "MA"
	LOG_CONFIG        = "CF"
	LOG_PIPELINE      = "PL"
	LOG_STOPFORUMSPAM = "SF"
	LOG_AKISMET       = "AK"
	LOG_SERVER        = "SV"
)

var components = []string{
	LOG_MAIN,
	LOG_CONFIG,
	LOG_PIPELINE,
	LOG_STOPFORUMSPAM,
	LOG_AKISMET,
	LOG_SERVER,
}

// getLevel falls back to info for anything logrus does not know.
func getLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(loglevel))
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// ValidFormat reports whether format can be passed to SetLogFormat.
func ValidFormat(format string) bool {
	return strings.EqualFold(format, FORMAT_TEXT) || strings.EqualFold(format, FORMAT_JSON)
}

func InitLogging(loglevel string) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	loggers = make(map[string]*logrus.Logger, len(components))
	for _, component := range components {
		l := logrus.New()
		l.SetLevel(getLevel(loglevel))
		l.SetFormatter(NewComponentFormatter(component, FORMAT_TEXT))
		loggers[component] = l
	}
}

func SetLogLevel(loglevel string) {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	for _, v := range loggers {
		v.SetLevel(getLevel(loglevel))
	}
}

func SetLogFormat(format string) error {
	if !ValidFormat(format) {
		return fmt.Errorf("unknown log format %q", format)
	}

	loggersMu.RLock()
	defer loggersMu.RUnlock()

	for component, v := range loggers {
		v.SetFormatter(NewComponentFormatter(component, format))
	}

	return nil
}

// Logger returns the logger for a component. Before InitLogging was called a discarding
// logger is returned so packages stay usable in tests.
func Logger(component string) *logrus.Logger {
	loggersMu.RLock()
	defer loggersMu.RUnlock()

	if loggers == nil {
		return NullLogger()
	}

	l, ok := loggers[component]
	if !ok {
		panic("Logger " + component + " unknown")
	}

	return l
}

func NullLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}
