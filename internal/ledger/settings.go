package ledger

import (
	"context"
	"time"

	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettingsUpdate is a partial update of the settings. Only non-nil fields are changed.
type SettingsUpdate struct {
	Name            *string
	Balance         *decimal.Decimal
	MonthlyIncome   *decimal.Decimal
	MonthlyExpenses *decimal.Decimal
	LastBudgetCheck *time.Time
}

// UpdateSettings applies a partial update to the settings.
func (e *Engine) UpdateSettings(ctx context.Context, update SettingsUpdate) (models.Settings, error) {
	var settings models.Settings
	err := e.write(ctx, func(tx *gorm.DB) (err error) {
		settings, err = loadSettings(tx)
		if err != nil {
			return err
		}

		if update.Name != nil {
			settings.Name = *update.Name
		}

		if update.Balance != nil {
			settings.Balance = *update.Balance
		}

		if update.MonthlyIncome != nil {
			settings.MonthlyIncome = *update.MonthlyIncome
		}

		if update.MonthlyExpenses != nil {
			settings.MonthlyExpenses = *update.MonthlyExpenses
		}

		if update.LastBudgetCheck != nil {
			check := update.LastBudgetCheck.In(time.UTC)
			settings.LastBudgetCheck = &check
		}

		return tx.Save(&settings).Error
	})
	if err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

// Onboarding is the data entered when the user sets up the application.
type Onboarding struct {
	Name            string
	Balance         decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
}

// The goal created for new users.
var defaultGoal = GoalInput{
	Name:         "Épargne de Sécurité",
	TargetAmount: decimal.NewFromInt(3000),
	Color:        "bg-emerald-500",
	IconKey:      "Wallet",
}

// Onboard sets up the settings for a new user, marks the budget as checked now
// and creates the emergency savings goal when there are no goals yet.
func (e *Engine) Onboard(ctx context.Context, onboarding Onboarding) (models.Settings, error) {
	var settings models.Settings
	err := e.write(ctx, func(tx *gorm.DB) (err error) {
		settings, err = loadSettings(tx)
		if err != nil {
			return err
		}

		now := e.Now()
		settings.Name = onboarding.Name
		settings.Balance = onboarding.Balance
		settings.MonthlyIncome = onboarding.MonthlyIncome
		settings.MonthlyExpenses = onboarding.MonthlyExpenses
		settings.LastBudgetCheck = &now

		err = tx.Save(&settings).Error
		if err != nil {
			return err
		}

		var goals int64
		err = tx.Model(&models.Goal{}).Count(&goals).Error
		if err != nil {
			return err
		}

		if goals == 0 {
			_, err = upsertGoal(tx, nil, defaultGoal)
		}

		return err
	})
	if err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}
