package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FutureOperationInput contains the mutable fields of a future operation.
type FutureOperationInput struct {
	Label  string
	Amount decimal.Decimal
	Type   models.TransactionType
	Date   time.Time
}

// FutureOperationFilter restricts the operations returned by FutureOperations.
type FutureOperationFilter struct {
	Received *bool
}

// UpsertFutureOperation creates a future operation or updates the mutable fields
// of an existing one. The received flag is never changed.
func (e *Engine) UpsertFutureOperation(ctx context.Context, id *uuid.UUID, input FutureOperationInput) (models.FutureOperation, error) {
	var operation models.FutureOperation
	err := e.write(ctx, func(tx *gorm.DB) error {
		var err error
		operation, err = upsertFutureOperation(tx, id, input)
		return err
	})
	if err != nil {
		return models.FutureOperation{}, err
	}

	return operation, nil
}

func upsertFutureOperation(tx *gorm.DB, id *uuid.UUID, input FutureOperationInput) (models.FutureOperation, error) {
	var operation models.FutureOperation

	exists, err := lookup(tx, &operation, id)
	if err != nil {
		return models.FutureOperation{}, err
	}

	operation.Label = input.Label
	operation.Amount = input.Amount
	operation.Type = input.Type
	operation.Date = input.Date

	if exists {
		return operation, tx.Save(&operation).Error
	}

	operation.Received = false
	return operation, tx.Create(&operation).Error
}

// FutureOperation returns a single future operation.
func (e *Engine) FutureOperation(ctx context.Context, id uuid.UUID) (models.FutureOperation, error) {
	var operation models.FutureOperation
	err := e.read(ctx).First(&operation, id).Error
	return operation, classify(err)
}

// FutureOperations lists future operations ordered by date.
func (e *Engine) FutureOperations(ctx context.Context, filter FutureOperationFilter) ([]models.FutureOperation, error) {
	q := e.read(ctx).Order("date ASC")
	if filter.Received != nil {
		q = q.Where("received = ?", *filter.Received)
	}

	var operations []models.FutureOperation
	err := q.Find(&operations).Error
	return operations, classify(err)
}

// DeleteFutureOperation removes a future operation. Transactions linked to it are kept.
func (e *Engine) DeleteFutureOperation(ctx context.Context, id uuid.UUID) error {
	return e.write(ctx, func(tx *gorm.DB) error {
		var operation models.FutureOperation
		err := tx.First(&operation, id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&operation).Error
	})
}
