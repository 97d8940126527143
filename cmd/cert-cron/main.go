package main

import (
	"os"
	"os/signal"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/robfig/cron"

	"github.com/18F/cert-registry/config"
	"github.com/18F/cert-registry/models"
)

func main() {
	logger := lager.NewLogger("cert-cron")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))

	settings, err := config.NewSettings()
	if err != nil {
		logger.Fatal("new-settings", err)
	}

	db, err := config.Connect(settings)
	if err != nil {
		logger.Fatal("connect", err)
	}

	manager := models.NewManager(logger, models.CertificateStore{Database: db}, nil)

	c := cron.New()

	err = c.AddFunc(settings.Schedule, func() {
		logger.Info("running-expiry-report")
		manager.ReportExpired(time.Now())
	})
	if err != nil {
		logger.Fatal("add-func", err, lager.Data{"schedule": settings.Schedule})
	}

	logger.Info("starting-cron")
	c.Start()

	waitForExit()
}

func waitForExit() os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, os.Kill)
	return <-c
}
