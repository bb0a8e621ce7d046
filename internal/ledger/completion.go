package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TargetKind is the kind of entity a completing transaction is linked to.
type TargetKind string

const (
	TargetGoal            TargetKind = "goal"
	TargetAsset           TargetKind = "asset"
	TargetFutureOperation TargetKind = "futureOperation"
)

var ErrTargetKindInvalid = fmt.Errorf("%w: the target must be a goal, an asset or a future operation", models.ErrValidation)

// Target identifies the entity a completing transaction is recorded for.
type Target struct {
	Kind TargetKind
	ID   uuid.UUID
}

// PendingConfirmation is the proposal for the transaction that completes a target.
// The caller confirms it with the amount that was actually paid or received.
type PendingConfirmation struct {
	Target          Target
	SuggestedAmount decimal.Decimal
	Type            models.TransactionType
	Label           string
}

// RequestFinalAmount returns the transaction proposal for completing target.
//
// Goals are completed by a purchase, assets by a sale and future operations
// by a transaction in their own direction.
func (e *Engine) RequestFinalAmount(ctx context.Context, target Target) (PendingConfirmation, error) {
	p, err := pending(e.read(ctx), target)
	return p, classify(err)
}

// ConfirmFinalAmount records the transaction completing target with the realised amount.
// The planned amount of the target is not changed.
func (e *Engine) ConfirmFinalAmount(ctx context.Context, target Target, amount decimal.Decimal) (Result, error) {
	var result Result
	err := e.write(ctx, func(tx *gorm.DB) error {
		p, err := pending(tx, target)
		if err != nil {
			return err
		}

		input := TransactionInput{
			Type:   p.Type,
			Amount: amount,
			Label:  p.Label,
		}

		id := target.ID
		switch target.Kind {
		case TargetGoal:
			input.RelatedGoalID = &id
		case TargetAsset:
			input.RelatedAssetID = &id
		case TargetFutureOperation:
			input.RelatedOpID = &id
		}

		result, err = e.recordTransaction(tx, input)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

func pending(db *gorm.DB, target Target) (PendingConfirmation, error) {
	switch target.Kind {
	case TargetGoal:
		var goal models.Goal
		if err := db.First(&goal, target.ID).Error; err != nil {
			return PendingConfirmation{}, err
		}

		return PendingConfirmation{
			Target:          target,
			SuggestedAmount: goal.TargetAmount,
			Type:            models.TransactionTypeOut,
			Label:           fmt.Sprintf("Achat : %s", goal.Name),
		}, nil

	case TargetAsset:
		var asset models.Asset
		if err := db.First(&asset, target.ID).Error; err != nil {
			return PendingConfirmation{}, err
		}

		return PendingConfirmation{
			Target:          target,
			SuggestedAmount: asset.Value,
			Type:            models.TransactionTypeIn,
			Label:           fmt.Sprintf("Vente : %s", asset.Name),
		}, nil

	case TargetFutureOperation:
		var operation models.FutureOperation
		if err := db.First(&operation, target.ID).Error; err != nil {
			return PendingConfirmation{}, err
		}

		prefix := "Revenu"
		if operation.Type == models.TransactionTypeOut {
			prefix = "Dépense"
		}

		return PendingConfirmation{
			Target:          target,
			SuggestedAmount: operation.Amount,
			Type:            operation.Type,
			Label:           fmt.Sprintf("%s : %s", prefix, operation.Label),
		}, nil
	}

	return PendingConfirmation{}, ErrTargetKindInvalid
}
