package main

import (
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"

	"github.com/18F/cert-registry/api"
	"github.com/18F/cert-registry/auth"
	"github.com/18F/cert-registry/bot"
	"github.com/18F/cert-registry/config"
	"github.com/18F/cert-registry/healthchecks"
	"github.com/18F/cert-registry/models"
	"github.com/18F/cert-registry/telegram"
)

func main() {
	logger := lager.NewLogger("cert-registry")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))

	settings, err := config.NewSettings()
	if err != nil {
		logger.Fatal("new-settings", err)
	}
	if err := settings.CheckAdmin(); err != nil {
		logger.Fatal("new-settings", err)
	}

	db, err := config.Connect(settings)
	if err != nil {
		logger.Fatal("connect", err)
	}

	if err := models.Migrate(db); err != nil {
		logger.Fatal("migrate", err)
	}

	var gateway telegram.GatewayIface = telegram.Disabled{}
	if settings.TelegramBotToken != "" {
		gateway, err = telegram.NewClient(settings.TelegramBotToken, logger.Session("telegram"))
		if err != nil {
			logger.Fatal("telegram-client", err)
		}
	} else {
		logger.Info("telegram-disabled")
	}

	manager := models.NewManager(logger, models.CertificateStore{Database: db}, nil)
	guard := auth.NewGuard(settings.AdminToken, settings.AdminUsername)

	certificateAPI := api.New(&manager, guard, logger)
	webhook := bot.NewWebhook(bot.NewHandler(&manager, guard, gateway, logger), logger)

	checks := map[string]healthchecks.Checker{
		"postgresql": healthchecks.CreatePostgresqlChecker(db),
		"telegram":   healthchecks.CreateTelegramChecker(gateway),
	}

	logger.Info("listening", lager.Data{"port": settings.Port})
	err = http.ListenAndServe(fmt.Sprintf(":%s", settings.Port), bindHTTPHandlers(certificateAPI, webhook, checks))
	if err != nil {
		logger.Fatal("listen-and-serve", err)
	}
}

func bindHTTPHandlers(certificateAPI http.Handler, webhook http.Handler, checks map[string]healthchecks.Checker) http.Handler {
	router := mux.NewRouter()
	router.Handle("/certificates", certificateAPI)
	router.Handle("/webhook", webhook)
	healthchecks.Bind(router, checks)
	return router
}
