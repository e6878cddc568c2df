// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CrawX/go-spamblocker/config"
	"github.com/CrawX/go-spamblocker/log"
	"github.com/CrawX/go-spamblocker/modules"
	"github.com/CrawX/go-spamblocker/modules/akismet"
	"github.com/CrawX/go-spamblocker/pipeline"
	"github.com/CrawX/go-spamblocker/server"

	"github.com/sirupsen/logrus"
)

const configFile = "config.toml"

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	applyLogging(logger, conf)

	settings := config.NewSettings(conf)

	mods, err := modules.Build(conf.Modules, modules.Deps{
		Config:                settings,
		Timeout:               conf.Timeout,
		StopForumSpamEndpoint: conf.StopForumSpam.Endpoint,
		AkismetEndpoint:       conf.Akismet.Endpoint,
	})
	if err != nil {
		logger.WithField("error", err).Fatal("Could not set up spam check modules")
	}

	registry, err := pipeline.NewRegistry(mods...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not register spam check modules")
	}

	configs := []pipeline.ConfigFunc{}
	if conf.Concurrent {
		configs = append(configs, pipeline.Concurrent(conf.ConcurrencyLimit))
	}
	if conf.FailMode == config.FailClosed {
		configs = append(configs, pipeline.FailClosed())
	}

	p, err := pipeline.NewPipeline(registry, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start pipeline")
	}

	logger.WithFields(logrus.Fields{"modules": registry.Names(), "failmode": conf.FailMode, "concurrent": conf.Concurrent, "timeout": conf.Timeout}).Info("Spam check pipeline ready")
	verifyAkismetKey(logger, settings)

	srv := server.NewServer(p, settings)
	go func() {
		err := srv.Start(conf.Listen)
		if err != nil {
			logger.WithField("error", err).Fatal("Server failed")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for sig := range signals {
		if sig == syscall.SIGHUP {
			err := settings.Reload(configFile)
			if err != nil {
				logger.WithField("error", err).Error("Keeping previous config")
				continue
			}
			applyLogging(logger, settings.Config())
			verifyAkismetKey(logger, settings)
			continue
		}

		logger.WithField("signal", sig).Info("Shutting down")
		break
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	if err != nil {
		logger.WithField("error", err).Error("Could not shut down cleanly")
	}
}

func applyLogging(logger *logrus.Logger, conf *config.Config) {
	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	err := log.SetLogFormat(conf.Logformat)
	if err != nil {
		logger.WithField("error", err).Error("Could not apply log format")
	}
}

// verifyAkismetKey only warns, activation of the module follows the presence of the key.
func verifyAkismetKey(logger *logrus.Logger, settings *config.Settings) {
	conf := settings.Config()
	key := settings.APIKey(akismet.Name)
	if key == "" {
		logger.Info("No Akismet API key configured, akismet module stays inactive")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.Timeout)
	defer cancel()

	valid, err := akismet.NewClient(conf.Akismet.Endpoint, conf.Timeout).VerifyKey(ctx, key, conf.Site.Home)
	if err != nil {
		logger.WithField("error", err).Warn("Could not verify Akismet API key")
		return
	}
	if !valid {
		logger.Warn("Akismet rejected the configured API key")
	}
}
