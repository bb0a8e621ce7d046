// Package ledger implements the consistency rules of the Halal Flow budget.
//
// All mutations are serialised by the Engine and run inside a single database
// transaction, so the balance, the linked entity statuses and the ledger
// entries are always consistent with each other.
package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/halalflow/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Engine is the ledger consistency engine.
type Engine struct {
	db  *gorm.DB
	now func() time.Time
	mu  sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for transaction dates and settlement checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an Engine operating on db.
func New(db *gorm.DB, opts ...Option) *Engine {
	e := &Engine{
		db:  db,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DB returns the database handle of the engine.
func (e *Engine) DB() *gorm.DB {
	return e.db
}

// Now returns the current time of the engine clock in UTC.
func (e *Engine) Now() time.Time {
	return e.now().In(time.UTC)
}

// write runs fn inside a database transaction while holding the write lock.
func (e *Engine) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return classify(e.db.WithContext(ctx).Transaction(fn))
}

// read returns a database handle for read-only queries.
func (e *Engine) read(ctx context.Context) *gorm.DB {
	return e.db.WithContext(ctx)
}

// classify maps errors that are not part of the error taxonomy to ErrGeneral.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, models.ErrGeneral) {
		return err
	}

	log.Error().Err(err).Msg("ledger persistence error")
	return models.ErrGeneral
}

// loadSettings reads the settings row. When it does not exist yet,
// the default settings are returned.
func loadSettings(db *gorm.DB) (models.Settings, error) {
	var settings []models.Settings
	err := db.Limit(1).Find(&settings, models.SettingsID).Error
	if err != nil {
		return models.Settings{}, err
	}

	if len(settings) == 0 {
		return models.Settings{ID: models.SettingsID, Name: models.DefaultUserName}, nil
	}

	return settings[0], nil
}

// Settings returns the current settings.
func (e *Engine) Settings(ctx context.Context) (models.Settings, error) {
	s, err := loadSettings(e.read(ctx))
	return s, classify(err)
}
