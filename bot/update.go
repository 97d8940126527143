package bot

import (
	"encoding/json"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Incoming is either a TextMessage or a Callback.
type Incoming interface {
	incoming()
}

type TextMessage struct {
	ChatID   int64
	Text     string
	Username string
}

type Callback struct {
	ID        string
	ChatID    int64
	MessageID int
	Data      string
	Username  string
}

func (TextMessage) incoming() {}
func (Callback) incoming()    {}

// ParseUpdate decodes a webhook payload. Updates that carry nothing to act on
// (no chat to answer in) yield a nil Incoming and no error.
func ParseUpdate(body []byte) (Incoming, error) {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return nil, err
	}

	if cq := update.CallbackQuery; cq != nil {
		if cq.Message == nil || cq.Message.Chat == nil || cq.Message.Chat.ID == 0 {
			return nil, nil
		}
		return Callback{
			ID:        cq.ID,
			ChatID:    cq.Message.Chat.ID,
			MessageID: cq.Message.MessageID,
			Data:      cq.Data,
			Username:  username(cq.From),
		}, nil
	}

	if msg := update.Message; msg != nil {
		if msg.Chat == nil || msg.Chat.ID == 0 {
			return nil, nil
		}
		return TextMessage{
			ChatID:   msg.Chat.ID,
			Text:     strings.TrimSpace(msg.Text),
			Username: username(msg.From),
		}, nil
	}

	return nil, nil
}

func username(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	return u.UserName
}
