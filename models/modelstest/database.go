// Package modelstest provides an in-memory certificate database for tests.
package modelstest

import (
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/18F/cert-registry/models"
)

// NewDatabase opens a fresh migrated sqlite database held in memory.
func NewDatabase() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.DB().SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Clock returns successive instants one second apart starting at start, so
// that insertion order is visible in created_at. It is safe to call from
// several goroutines.
func Clock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}
