// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CrawX/go-spamblocker/log"

	"github.com/BurntSushi/toml"
)

const (
	FailOpen   = "open"
	FailClosed = "closed"
)

type Site struct {
	Home      string
	Locale    string
	Charset   string
	Permalink string
}

type StopForumSpam struct {
	Endpoint string
}

type Akismet struct {
	APIKey string
	// Endpoint is a template, %s is replaced with the API key.
	Endpoint string
}

type Config struct {
	Listen string

	Modules []string

	Timeout          time.Duration
	FailMode         string
	Concurrent       bool
	ConcurrencyLimit int

	Site          Site
	StopForumSpam StopForumSpam
	Akismet       Akismet

	Loglevel  *string
	Logformat string
}

func defaultConfig() *Config {
	return &Config{
		Listen:           ":8080",
		Modules:          []string{"stopforumspam", "akismet"},
		Timeout:          3 * time.Second,
		FailMode:         FailOpen,
		ConcurrencyLimit: 4,
		Site: Site{
			Charset: "UTF-8",
		},
		StopForumSpam: StopForumSpam{
			Endpoint: "https://api.stopforumspam.org/api",
		},
		Akismet: Akismet{
			Endpoint: "https://%s.rest.akismet.com/1.1/",
		},
		Logformat: log.FORMAT_TEXT,
	}
}

func ReadConfig(filename string) (*Config, error) {
	config := defaultConfig()

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Listen, "Listen must not be empty, set to host:port the hook server listens on"); err != nil {
		return err
	}

	if len(c.Modules) == 0 {
		return errors.New("Modules must not be empty, list the spam check modules to run")
	}

	if c.Timeout <= 0 {
		return errors.New("Timeout must be positive, e.g. \"3s\"")
	}

	if c.FailMode != FailOpen && c.FailMode != FailClosed {
		return fmt.Errorf("FailMode must be %q or %q, got %q", FailOpen, FailClosed, c.FailMode)
	}

	if c.Concurrent && c.ConcurrencyLimit < 1 {
		return errors.New("ConcurrencyLimit must be at least 1 if Concurrent is set")
	}

	if !log.ValidFormat(c.Logformat) {
		return fmt.Errorf("Logformat must be %q or %q, got %q", log.FORMAT_TEXT, log.FORMAT_JSON, c.Logformat)
	}

	for _, m := range c.Modules {
		switch m {
		case "stopforumspam":
			if err := validateNonEmptyStringField(c.StopForumSpam.Endpoint, "StopForumSpam.Endpoint must not be empty if the stopforumspam module is enabled"); err != nil {
				return err
			}
		case "akismet":
			if err := validateNonEmptyStringField(c.Akismet.Endpoint, "Akismet.Endpoint must not be empty if the akismet module is enabled"); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
