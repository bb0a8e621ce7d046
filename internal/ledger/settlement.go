package ledger

import (
	"context"
	"time"

	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdjustmentLabel is the label of transactions created by a monthly settlement.
const AdjustmentLabel = "Ajustement Solde Mensuel"

// settlementTolerance is the largest difference that is not adjusted.
var settlementTolerance = decimal.New(1, -2)

// SettlementResult is returned by ConfirmSettlement.
type SettlementResult struct {
	Adjusted    bool
	Difference  decimal.Decimal
	Settings    models.Settings
	Transaction *models.Transaction
}

// IsSettlementDue reports whether the monthly balance check is due at now.
// It is never due before the first check.
func IsSettlementDue(settings models.Settings, now time.Time) bool {
	if settings.LastBudgetCheck == nil {
		return false
	}

	last := settings.LastBudgetCheck.In(time.UTC)
	now = now.In(time.UTC)
	return last.Year() != now.Year() || last.Month() != now.Month()
}

// SettlementDue reports whether the monthly balance check is due.
func (e *Engine) SettlementDue(ctx context.Context) (bool, error) {
	settings, err := e.Settings(ctx)
	if err != nil {
		return false, err
	}

	return IsSettlementDue(settings, e.Now()), nil
}

// ConfirmSettlement reconciles the balance with the balance the user reports.
//
// A difference of more than one cent is booked as an adjustment transaction.
// In both cases, the time of the last check is set to now.
func (e *Engine) ConfirmSettlement(ctx context.Context, reported decimal.Decimal) (SettlementResult, error) {
	var result SettlementResult
	err := e.write(ctx, func(tx *gorm.DB) error {
		settings, err := loadSettings(tx)
		if err != nil {
			return err
		}

		diff := reported.Sub(settings.Balance)
		result.Difference = diff

		if diff.Abs().GreaterThan(settlementTolerance) {
			kind := models.TransactionTypeOut
			if diff.IsPositive() {
				kind = models.TransactionTypeIn
			}

			recorded, err := e.recordTransaction(tx, TransactionInput{
				Type:   kind,
				Amount: diff.Abs(),
				Label:  AdjustmentLabel,
			})
			if err != nil {
				return err
			}

			settings = recorded.Settings
			result.Adjusted = true
			result.Transaction = &recorded.Transaction
		}

		now := e.Now()
		settings.LastBudgetCheck = &now
		err = tx.Save(&settings).Error
		if err != nil {
			return err
		}

		result.Settings = settings
		return nil
	})
	if err != nil {
		return SettlementResult{}, err
	}

	return result, nil
}
