package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/spf13/cobra"

	"github.com/18F/cert-registry/config"
	"github.com/18F/cert-registry/telegram"
)

func main() {
	logger := lager.NewLogger("cert-webhook")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger lager.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "cert-webhook",
		Short:         "Register or inspect the Telegram webhook of the certificate bot",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSetCmd(logger), newInfoCmd(logger))
	return root
}

func newSetCmd(logger lager.Logger) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Point the bot's webhook at the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, settings, err := connect(logger)
			if err != nil {
				return err
			}
			if url == "" {
				url = settings.WebhookUrl
			}
			if url == "" {
				return fmt.Errorf("no webhook url: pass --url or set CERT_WEBHOOK_URL")
			}

			lsession := logger.Session("set-webhook", lager.Data{"url": url})
			if err := client.SetWebhook(url); err != nil {
				lsession.Error("telegram-set-webhook", err)
				return err
			}
			lsession.Info("webhook-set")
			fmt.Fprintf(cmd.OutOrStdout(), "webhook set to %s\n", url)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "public url of the /webhook endpoint (defaults to CERT_WEBHOOK_URL)")
	return cmd
}

func newInfoCmd(logger lager.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the webhook currently registered for the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := connect(logger)
			if err != nil {
				return err
			}
			info, err := client.WebhookInfo()
			if err != nil {
				logger.Error("telegram-webhook-info", err)
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "url: %s\n", info.URL)
			fmt.Fprintf(out, "pending updates: %d\n", info.PendingUpdateCount)
			if info.LastErrorMessage != "" {
				fmt.Fprintf(out, "last error: %s\n", info.LastErrorMessage)
			}
			return nil
		},
	}
}

func connect(logger lager.Logger) (*telegram.Client, config.Settings, error) {
	settings, err := config.NewSettings()
	if err != nil {
		return nil, config.Settings{}, err
	}
	if settings.TelegramBotToken == "" {
		return nil, settings, telegram.ErrDisabled
	}
	client, err := telegram.NewClient(settings.TelegramBotToken, logger.Session("telegram"))
	if err != nil {
		return nil, settings, err
	}
	return client, settings, nil
}
