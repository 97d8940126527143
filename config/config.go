package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	_ "github.com/lib/pq"
)

type Settings struct {
	Port             string `envconfig:"port" default:"3000"`
	DatabaseUrl      string `envconfig:"database_url" required:"true"`
	DatabaseDialect  string `envconfig:"database_dialect" default:"postgres"`
	TelegramBotToken string `envconfig:"telegram_bot_token"`
	AdminToken       string `envconfig:"admin_token"`
	AdminUsername    string `envconfig:"admin_username"`
	WebhookUrl       string `envconfig:"webhook_url"`
	Schedule         string `envconfig:"schedule" default:"0 0 * * * *"`
}

func NewSettings() (Settings, error) {
	var settings Settings
	err := envconfig.Process("cert", &settings)
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

var ErrMissingAdmin = errors.New("CERT_ADMIN_TOKEN and CERT_ADMIN_USERNAME must be set")

// CheckAdmin is for binaries that serve admin operations. The others run
// without admin credentials.
func (s Settings) CheckAdmin() error {
	if s.AdminToken == "" || s.AdminUsername == "" {
		return ErrMissingAdmin
	}
	return nil
}

func Connect(settings Settings) (*gorm.DB, error) {
	db, err := gorm.Open(settings.DatabaseDialect, settings.DatabaseUrl)
	if err != nil {
		return nil, err
	}
	if settings.DatabaseDialect == "sqlite3" {
		// every sqlite connection to ":memory:" is its own database
		db.DB().SetMaxOpenConns(1)
	}
	return db, nil
}
