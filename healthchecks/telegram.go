package healthchecks

type pinger interface {
	Ping() error
}

// CreateTelegramChecker reports whether the Bot API accepts the configured
// token.
func CreateTelegramChecker(client pinger) Checker {
	return func() error {
		return client.Ping()
	}
}
