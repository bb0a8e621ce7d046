package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FutureOperation is a planned income or expense on a specific date.
type FutureOperation struct {
	DefaultModel
	Label    string          `json:"label"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"amount"`
	Type     TransactionType `json:"type"`
	Date     time.Time       `gorm:"index" json:"date"`
	Received bool            `json:"received"`
}

func (f *FutureOperation) AfterFind(tx *gorm.DB) (err error) {
	err = f.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	f.Date = f.Date.In(time.UTC)
	return
}

func (f *FutureOperation) BeforeSave(_ *gorm.DB) error {
	f.Label = strings.TrimSpace(f.Label)
	f.Date = f.Date.In(time.UTC)

	if f.Label == "" {
		return ErrLabelEmpty
	}

	if !f.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !f.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if f.Date.IsZero() {
		return ErrDateMissing
	}

	return nil
}

// SignedAmount is the effect of the operation on the balance.
func (f FutureOperation) SignedAmount() decimal.Decimal {
	return f.Type.Sign(f.Amount)
}

// Export returns all future operations for export.
func (FutureOperation) Export(db *gorm.DB) (json.RawMessage, error) {
	var operations []FutureOperation
	err := db.Order("date ASC").Find(&operations).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&operations)
}
