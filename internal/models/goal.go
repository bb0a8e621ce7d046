package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

const (
	DefaultGoalColor   = "bg-slate-900"
	DefaultGoalIconKey = "Target"
)

// Goal is a savings target, completed by a purchase transaction.
type Goal struct {
	DefaultModel
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)" json:"targetAmount"`
	Color        string          `json:"color"`
	IconKey      string          `json:"iconKey"`
	Status       GoalStatus      `gorm:"index" json:"status"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Color = strings.TrimSpace(g.Color)
	g.IconKey = strings.TrimSpace(g.IconKey)

	if g.Color == "" {
		g.Color = DefaultGoalColor
	}

	if g.IconKey == "" {
		g.IconKey = DefaultGoalIconKey
	}

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	if g.Name == "" {
		return ErrNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// Export returns all goals for export.
func (Goal) Export(db *gorm.DB) (json.RawMessage, error) {
	var goals []Goal
	err := db.Order("name ASC").Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&goals)
}
