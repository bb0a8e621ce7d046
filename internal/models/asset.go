package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetStatusActive AssetStatus = "active"
	AssetStatusSold   AssetStatus = "sold"
)

const DefaultAssetCategory = "Autre"

// Asset is something the user owns and may sell.
type Asset struct {
	DefaultModel
	Name     string          `json:"name"`
	Value    decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"value"`
	Category string          `json:"category"`
	Status   AssetStatus     `gorm:"index" json:"status"`
}

func (a *Asset) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Category = strings.TrimSpace(a.Category)

	if a.Category == "" {
		a.Category = DefaultAssetCategory
	}

	if a.Status == "" {
		a.Status = AssetStatusActive
	}

	if a.Name == "" {
		return ErrNameEmpty
	}

	if a.Value.IsNegative() {
		return ErrValueNegative
	}

	return nil
}

// Export returns all assets for export.
func (Asset) Export(db *gorm.DB) (json.RawMessage, error) {
	var assets []Asset
	err := db.Order("name ASC").Find(&assets).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&assets)
}
