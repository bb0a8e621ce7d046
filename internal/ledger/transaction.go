package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionInput is the data needed to record a transaction.
type TransactionInput struct {
	Type           models.TransactionType
	Amount         decimal.Decimal
	Label          string
	Date           time.Time // Defaults to the engine clock
	RelatedGoalID  *uuid.UUID
	RelatedAssetID *uuid.UUID
	RelatedOpID    *uuid.UUID
}

// Result is returned by operations that record a transaction.
type Result struct {
	Settings    models.Settings
	Transaction models.Transaction
}

// Reverted names the entity whose status was restored when a transaction was deleted.
type Reverted string

const (
	RevertedNone            Reverted = ""
	RevertedGoal            Reverted = "goal"
	RevertedAsset           Reverted = "asset"
	RevertedFutureOperation Reverted = "futureOperation"
)

// DeleteResult is returned by DeleteTransaction.
type DeleteResult struct {
	Settings models.Settings
	Reverted Reverted
}

// RecordTransaction appends a transaction to the ledger, applies it to the
// balance and completes every linked entity.
func (e *Engine) RecordTransaction(ctx context.Context, input TransactionInput) (Result, error) {
	var result Result
	err := e.write(ctx, func(tx *gorm.DB) (err error) {
		result, err = e.recordTransaction(tx, input)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

func (e *Engine) recordTransaction(tx *gorm.DB, input TransactionInput) (Result, error) {
	transaction := models.Transaction{
		Type:           input.Type,
		Amount:         input.Amount,
		Label:          input.Label,
		Date:           input.Date,
		RelatedGoalID:  nilIfEmpty(input.RelatedGoalID),
		RelatedAssetID: nilIfEmpty(input.RelatedAssetID),
		RelatedOpID:    nilIfEmpty(input.RelatedOpID),
	}

	if transaction.Date.IsZero() {
		transaction.Date = e.Now()
	}

	err := transaction.Validate()
	if err != nil {
		return Result{}, err
	}

	// All links must exist before anything is written
	var goal models.Goal
	if transaction.RelatedGoalID != nil {
		if err := tx.First(&goal, *transaction.RelatedGoalID).Error; err != nil {
			return Result{}, err
		}
	}

	var asset models.Asset
	if transaction.RelatedAssetID != nil {
		if err := tx.First(&asset, *transaction.RelatedAssetID).Error; err != nil {
			return Result{}, err
		}
	}

	var operation models.FutureOperation
	if transaction.RelatedOpID != nil {
		if err := tx.First(&operation, *transaction.RelatedOpID).Error; err != nil {
			return Result{}, err
		}
	}

	settings, err := loadSettings(tx)
	if err != nil {
		return Result{}, err
	}

	err = tx.Create(&transaction).Error
	if err != nil {
		return Result{}, err
	}

	settings.Balance = settings.Balance.Add(transaction.SignedAmount())
	err = tx.Save(&settings).Error
	if err != nil {
		return Result{}, err
	}

	if transaction.RelatedGoalID != nil {
		goal.Status = models.GoalStatusCompleted
		if err := tx.Save(&goal).Error; err != nil {
			return Result{}, err
		}
	}

	if transaction.RelatedAssetID != nil {
		asset.Status = models.AssetStatusSold
		if err := tx.Save(&asset).Error; err != nil {
			return Result{}, err
		}
	}

	if transaction.RelatedOpID != nil {
		operation.Received = true
		if err := tx.Save(&operation).Error; err != nil {
			return Result{}, err
		}
	}

	return Result{Settings: settings, Transaction: transaction}, nil
}

// DeleteTransaction removes a transaction and reverses its effects.
//
// The balance effect is always reversed. Of the linked entities, only the first
// one in the order goal, asset, future operation is restored. A link to an
// entity that does not exist anymore is ignored.
func (e *Engine) DeleteTransaction(ctx context.Context, id uuid.UUID) (DeleteResult, error) {
	var result DeleteResult
	err := e.write(ctx, func(tx *gorm.DB) error {
		var transaction models.Transaction
		err := tx.First(&transaction, id).Error
		if err != nil {
			return err
		}

		settings, err := loadSettings(tx)
		if err != nil {
			return err
		}

		settings.Balance = settings.Balance.Sub(transaction.SignedAmount())
		err = tx.Save(&settings).Error
		if err != nil {
			return err
		}

		reverted, err := revert(tx, transaction)
		if err != nil {
			return err
		}

		err = tx.Delete(&transaction).Error
		if err != nil {
			return err
		}

		result = DeleteResult{Settings: settings, Reverted: reverted}
		return nil
	})
	if err != nil {
		return DeleteResult{}, err
	}

	return result, nil
}

// revert restores the status of the entity the transaction completed.
func revert(tx *gorm.DB, transaction models.Transaction) (Reverted, error) {
	switch {
	case transaction.RelatedGoalID != nil:
		var goals []models.Goal
		if err := tx.Limit(1).Find(&goals, *transaction.RelatedGoalID).Error; err != nil || len(goals) == 0 {
			return RevertedNone, err
		}

		goals[0].Status = models.GoalStatusActive
		return RevertedGoal, tx.Save(&goals[0]).Error

	case transaction.RelatedAssetID != nil:
		var assets []models.Asset
		if err := tx.Limit(1).Find(&assets, *transaction.RelatedAssetID).Error; err != nil || len(assets) == 0 {
			return RevertedNone, err
		}

		assets[0].Status = models.AssetStatusActive
		return RevertedAsset, tx.Save(&assets[0]).Error

	case transaction.RelatedOpID != nil:
		var operations []models.FutureOperation
		if err := tx.Limit(1).Find(&operations, *transaction.RelatedOpID).Error; err != nil || len(operations) == 0 {
			return RevertedNone, err
		}

		operations[0].Received = false
		return RevertedFutureOperation, tx.Save(&operations[0]).Error
	}

	return RevertedNone, nil
}

// Transaction returns a single transaction.
func (e *Engine) Transaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := e.read(ctx).First(&transaction, id).Error
	return transaction, classify(err)
}

// TransactionFilter restricts the transactions returned by Transactions.
// Zero values do not filter.
type TransactionFilter struct {
	Type      models.TransactionType
	Label     string // Glob pattern, "*" matches any sequence of characters
	GoalID    *uuid.UUID
	AssetID   *uuid.UUID
	OpID      *uuid.UUID
	FromDate  time.Time // From this date, time is ignored
	UntilDate time.Time // Until this date, time is ignored
	Offset    int
	Limit     int // Negative values return all transactions
}

// TransactionPage is a page of transactions together with the number of all
// transactions matching the filter.
type TransactionPage struct {
	Transactions []models.Transaction
	Total        int
}

// Transactions lists transactions, newest first.
func (e *Engine) Transactions(ctx context.Context, filter TransactionFilter) (TransactionPage, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return TransactionPage{}, models.ErrTransactionTypeInvalid
	}

	q := e.read(ctx).Order("date DESC, created_at DESC")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.GoalID != nil {
		q = q.Where("related_goal_id = ?", *filter.GoalID)
	}

	if filter.AssetID != nil {
		q = q.Where("related_asset_id = ?", *filter.AssetID)
	}

	if filter.OpID != nil {
		q = q.Where("related_op_id = ?", *filter.OpID)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", startOfDay(filter.FromDate))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date < ?", startOfDay(filter.UntilDate).AddDate(0, 0, 1))
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return TransactionPage{}, classify(err)
	}

	if filter.Label != "" {
		transactions = slices.DeleteFunc(transactions, func(t models.Transaction) bool {
			return !glob.Glob(filter.Label, t.Label)
		})
	}

	return TransactionPage{
		Transactions: paginate(transactions, filter.Offset, filter.Limit),
		Total:        len(transactions),
	}, nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}

	if offset > 0 {
		items = items[offset:]
	}

	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nilIfEmpty(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}
