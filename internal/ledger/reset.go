package ledger

import (
	"context"

	"github.com/halalflow/backend/internal/models"
	"gorm.io/gorm"
)

// Reset deletes all transactions, goals, assets and future operations and
// restores the default settings.
func (e *Engine) Reset(ctx context.Context) error {
	return e.write(ctx, reset)
}

func reset(tx *gorm.DB) error {
	resources := []any{
		&models.Transaction{},
		&models.Goal{},
		&models.Asset{},
		&models.FutureOperation{},
	}

	for _, model := range resources {
		err := tx.Where("true").Delete(model).Error
		if err != nil {
			return err
		}
	}

	settings, err := loadSettings(tx)
	if err != nil {
		return err
	}

	return tx.Save(&models.Settings{
		ID:         models.SettingsID,
		Name:       models.DefaultUserName,
		Timestamps: settings.Timestamps,
	}).Error
}
