package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SettingsID is the primary key of the only Settings row.
const SettingsID = 1

// DefaultUserName is used when no name has been configured.
const DefaultUserName = "Utilisateur"

// Settings holds the user's profile and the running balance.
type Settings struct {
	ID              uint            `gorm:"primaryKey" json:"-"`
	Name            string          `json:"name"`
	Balance         decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"balance"`
	MonthlyIncome   decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"monthlyExpenses"`
	LastBudgetCheck *time.Time      `json:"lastBudgetCheck"`
	Timestamps
}

// MonthlySavings is the difference between monthly income and expenses.
func (s Settings) MonthlySavings() decimal.Decimal {
	return s.MonthlyIncome.Sub(s.MonthlyExpenses)
}

func (s *Settings) AfterFind(_ *gorm.DB) error {
	s.CreatedAt = s.CreatedAt.In(time.UTC)
	s.UpdatedAt = s.UpdatedAt.In(time.UTC)

	if s.LastBudgetCheck != nil {
		t := s.LastBudgetCheck.In(time.UTC)
		s.LastBudgetCheck = &t
	}
	return nil
}

// BeforeSave
//   - pins the ID to the singleton
//   - trims the name and falls back to the default name
//   - validates the monthly figures
func (s *Settings) BeforeSave(_ *gorm.DB) error {
	s.ID = SettingsID

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = DefaultUserName
	}

	if s.MonthlyIncome.IsNegative() || s.MonthlyExpenses.IsNegative() {
		return ErrMonthlyAmountNegative
	}

	if s.LastBudgetCheck != nil {
		t := s.LastBudgetCheck.In(time.UTC)
		s.LastBudgetCheck = &t
	}

	return nil
}

// Export returns the settings for export.
func (Settings) Export(db *gorm.DB) (json.RawMessage, error) {
	var settings []Settings
	err := db.Find(&settings).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&settings)
}
