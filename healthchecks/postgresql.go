package healthchecks

import (
	"github.com/jinzhu/gorm"
)

func CreatePostgresqlChecker(db *gorm.DB) Checker {
	return func() error {
		return db.DB().Ping()
	}
}
