// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/CrawX/go-spamblocker/domain"
	"github.com/CrawX/go-spamblocker/log"

	"github.com/sirupsen/logrus"
)

// Settings is the live configuration consulted by modules on every evaluation. It can be
// swapped at runtime, e.g. when an API key is configured after startup.
type Settings struct {
	mu     sync.RWMutex
	config *Config
	l      *logrus.Logger
}

func NewSettings(config *Config) *Settings {
	return &Settings{
		config: config,
		l:      log.Logger(log.LOG_CONFIG),
	}
}

func (s *Settings) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config
}

func (s *Settings) Update(config *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = config
}

// Reload reads filename and swaps the configuration. On error the previous configuration
// stays in place.
func (s *Settings) Reload(filename string) error {
	config, err := ReadConfig(filename)
	if err != nil {
		return fmt.Errorf("could not reload config: %w", err)
	}

	if changed := RestartRequired(s.Config(), config); len(changed) > 0 {
		s.l.WithField("fields", changed).Warn("Config changed in fields that are only read at startup, a restart is required to apply them")
	}

	s.Update(config)
	s.l.WithField("file", filename).Info("Reloaded config")

	return nil
}

// RestartRequired lists the fields that differ between old and updated but are only read when
// the modules, the pipeline and the server are built. API keys, site metadata and logging
// apply on reload.
func RestartRequired(old, updated *Config) []string {
	changed := []string{}
	check := func(field string, differs bool) {
		if differs {
			changed = append(changed, field)
		}
	}

	check("Listen", old.Listen != updated.Listen)
	check("Modules", strings.Join(old.Modules, ",") != strings.Join(updated.Modules, ","))
	check("Timeout", old.Timeout != updated.Timeout)
	check("FailMode", old.FailMode != updated.FailMode)
	check("Concurrent", old.Concurrent != updated.Concurrent)
	check("ConcurrencyLimit", old.Concurrent && updated.Concurrent && old.ConcurrencyLimit != updated.ConcurrencyLimit)
	check("StopForumSpam.Endpoint", old.StopForumSpam.Endpoint != updated.StopForumSpam.Endpoint)
	check("Akismet.Endpoint", old.Akismet.Endpoint != updated.Akismet.Endpoint)

	return changed
}

func (s *Settings) APIKey(module string) string {
	c := s.Config()
	switch module {
	case "akismet":
		return strings.TrimSpace(c.Akismet.APIKey)
	}

	return ""
}

func (s *Settings) Site() domain.SiteMetadata {
	c := s.Config()
	return domain.SiteMetadata{
		Home:      c.Site.Home,
		Locale:    c.Site.Locale,
		Charset:   c.Site.Charset,
		Permalink: c.Site.Permalink,
	}
}
