package telegram

import (
	"errors"
	"net/http"

	"code.cloudfoundry.org/lager"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/18F/cert-registry/bot"
)

var ErrDisabled = errors.New("telegram disabled: no bot token configured")

// GatewayIface is the bot gateway plus the operations used by health checks
// and webhook registration.
type GatewayIface interface {
	bot.Gateway
	Ping() error
	SetWebhook(url string) error
	WebhookInfo() (tgbotapi.WebhookInfo, error)
}

type Client struct {
	api    *tgbotapi.BotAPI
	logger lager.Logger
}

func NewClient(token string, logger lager.Logger) (*Client, error) {
	return NewClientWithEndpoint(token, tgbotapi.APIEndpoint, http.DefaultClient, logger)
}

// NewClientWithEndpoint talks to endpoint, a format string taking the token
// and the method name, instead of the public Bot API.
func NewClientWithEndpoint(token, endpoint string, httpClient *http.Client, logger lager.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, err
	}
	logger.Info("telegram-authorized", lager.Data{"bot-username": api.Self.UserName})
	return &Client{api: api, logger: logger}, nil
}

func (c *Client) SendMessage(chatID int64, text string, keyboard bot.Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		msg.ReplyMarkup = markup(keyboard)
	}
	_, err := c.api.Request(msg)
	return err
}

func (c *Client) EditMessageText(chatID int64, messageID int, text string, keyboard bot.Keyboard) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		m := markup(keyboard)
		edit.ReplyMarkup = &m
	}
	_, err := c.api.Request(edit)
	return err
}

func (c *Client) AnswerCallbackQuery(callbackID string, text string) error {
	_, err := c.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

func (c *Client) Ping() error {
	_, err := c.api.GetMe()
	return err
}

func (c *Client) SetWebhook(url string) error {
	webhook, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	_, err = c.api.Request(webhook)
	return err
}

func (c *Client) WebhookInfo() (tgbotapi.WebhookInfo, error) {
	return c.api.GetWebhookInfo()
}

func markup(keyboard bot.Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, buttons := range keyboard {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(buttons))
		for _, button := range buttons {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Action.Data()))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// Disabled stands in for the client when no token is configured. Every call
// fails with ErrDisabled, which callers log and drop.
type Disabled struct{}

func (Disabled) SendMessage(int64, string, bot.Keyboard) error          { return ErrDisabled }
func (Disabled) EditMessageText(int64, int, string, bot.Keyboard) error { return ErrDisabled }
func (Disabled) AnswerCallbackQuery(string, string) error               { return ErrDisabled }
func (Disabled) Ping() error                                            { return ErrDisabled }
func (Disabled) SetWebhook(string) error                                { return ErrDisabled }
func (Disabled) WebhookInfo() (tgbotapi.WebhookInfo, error) {
	return tgbotapi.WebhookInfo{}, ErrDisabled
}
