package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetInput contains the mutable fields of an asset.
type AssetInput struct {
	Name     string
	Value    decimal.Decimal
	Category string
}

// AssetFilter restricts the assets returned by Assets.
type AssetFilter struct {
	Status models.AssetStatus
}

// UpsertAsset creates an asset or updates the mutable fields of an existing one.
// The status is never changed.
func (e *Engine) UpsertAsset(ctx context.Context, id *uuid.UUID, input AssetInput) (models.Asset, error) {
	var asset models.Asset
	err := e.write(ctx, func(tx *gorm.DB) error {
		var err error
		asset, err = upsertAsset(tx, id, input)
		return err
	})
	if err != nil {
		return models.Asset{}, err
	}

	return asset, nil
}

func upsertAsset(tx *gorm.DB, id *uuid.UUID, input AssetInput) (models.Asset, error) {
	var asset models.Asset

	exists, err := lookup(tx, &asset, id)
	if err != nil {
		return models.Asset{}, err
	}

	asset.Name = input.Name
	asset.Value = input.Value
	asset.Category = input.Category

	if exists {
		return asset, tx.Save(&asset).Error
	}

	asset.Status = models.AssetStatusActive
	return asset, tx.Create(&asset).Error
}

// Asset returns a single asset.
func (e *Engine) Asset(ctx context.Context, id uuid.UUID) (models.Asset, error) {
	var asset models.Asset
	err := e.read(ctx).First(&asset, id).Error
	return asset, classify(err)
}

// Assets lists assets ordered by name.
func (e *Engine) Assets(ctx context.Context, filter AssetFilter) ([]models.Asset, error) {
	q := e.read(ctx).Order("name ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var assets []models.Asset
	err := q.Find(&assets).Error
	return assets, classify(err)
}

// DeleteAsset removes an asset. Transactions linked to it are kept.
func (e *Engine) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return e.write(ctx, func(tx *gorm.DB) error {
		var asset models.Asset
		err := tx.First(&asset, id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&asset).Error
	})
}
