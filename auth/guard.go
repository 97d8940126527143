package auth

import (
	"crypto/subtle"
	"strings"
)

// Guard checks callers against the single configured administrator. The HTTP
// API presents a shared token, the bot presents the sender's username.
type Guard struct {
	adminToken    string
	adminUsername string
}

func NewGuard(adminToken, adminUsername string) Guard {
	return Guard{
		adminToken:    adminToken,
		adminUsername: strings.TrimPrefix(adminUsername, "@"),
	}
}

func (g Guard) AllowToken(token string) bool {
	return equal(g.adminToken, token)
}

func (g Guard) AllowUsername(username string) bool {
	return equal(g.adminUsername, username)
}

func equal(configured, presented string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(presented)) == 1
}
