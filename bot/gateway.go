package bot

// Button is an inline keyboard button that sends Action back when pressed.
type Button struct {
	Text   string
	Action Action
}

// Keyboard is a list of button rows.
type Keyboard [][]Button

// Gateway is the outbound side of the chat platform.
type Gateway interface {
	SendMessage(chatID int64, text string, keyboard Keyboard) error
	EditMessageText(chatID int64, messageID int, text string, keyboard Keyboard) error
	AnswerCallbackQuery(callbackID string, text string) error
}

func row(buttons ...Button) []Button {
	return buttons
}
