package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of money flow.
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "in"
	TransactionTypeOut TransactionType = "out"
)

// Valid reports if the type is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIn || t == TransactionTypeOut
}

// Sign returns the amount signed by the direction of the type.
func (t TransactionType) Sign(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeOut {
		return amount.Neg()
	}
	return amount
}

// Transaction is a single ledger entry. Transactions are never updated.
type Transaction struct {
	DefaultModel
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"amount"`
	Label          string          `json:"label"`
	Date           time.Time       `gorm:"index" json:"date"`
	RelatedGoalID  *uuid.UUID      `gorm:"index" json:"relatedGoalId"`
	RelatedAssetID *uuid.UUID      `gorm:"index" json:"relatedAssetId"`
	RelatedOpID    *uuid.UUID      `gorm:"index" json:"relatedOpId"`
}

// SignedAmount is the effect of the transaction on the balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Type.Sign(t.Amount)
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - trims whitespace from the label
//   - sets the timezone for the Date to UTC
//   - replaces pointers to nil UUIDs with nil
//   - validates type, amount and label
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Label = strings.TrimSpace(t.Label)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	for _, link := range []**uuid.UUID{&t.RelatedGoalID, &t.RelatedAssetID, &t.RelatedOpID} {
		if *link != nil && **link == uuid.Nil {
			*link = nil
		}
	}

	return t.Validate()
}

// Validate checks the fields that are required for every transaction.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if strings.TrimSpace(t.Label) == "" {
		return ErrLabelEmpty
	}

	return nil
}

// Export returns all transactions for export.
func (Transaction) Export(db *gorm.DB) (json.RawMessage, error) {
	var transactions []Transaction
	err := db.Order("date DESC, created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&transactions)
}
