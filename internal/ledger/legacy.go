package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrLegacyData = fmt.Errorf("%w: the legacy data could not be parsed", models.ErrValidation)

// legacyID is an identifier of the browser storage format. These were
// millisecond timestamps, but may also be strings.
type legacyID string

func (l *legacyID) UnmarshalJSON(data []byte) error {
	*l = legacyID(strings.Trim(string(data), `"`))
	if *l == "null" {
		*l = ""
	}
	return nil
}

// legacyAmount is a number that may be encoded as string. Empty values are zero.
type legacyAmount struct {
	decimal.Decimal
}

func (l *legacyAmount) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		l.Decimal = decimal.Zero
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}

	l.Decimal = d
	return nil
}

// legacyDate is a date in RFC 3339 format or a full date as entered in date inputs.
type legacyDate struct {
	time.Time
}

func (l *legacyDate) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		t, err := time.Parse(layout, value)
		if err == nil {
			l.Time = t.In(time.UTC)
			return nil
		}
	}

	return fmt.Errorf("invalid date %q", value)
}

type legacyOperation struct {
	ID       legacyID     `json:"id"`
	Label    string       `json:"label"`
	Amount   legacyAmount `json:"amount"`
	Type     string       `json:"type"`
	Date     legacyDate   `json:"date"`
	Received bool         `json:"received"`
}

// LegacyData is the data the browser only version stored locally.
type LegacyData struct {
	User struct {
		Name string `json:"name"`
	} `json:"user"`
	Finance struct {
		Balance         legacyAmount `json:"balance"`
		Income          legacyAmount `json:"income"`
		Expenses        legacyAmount `json:"expenses"`
		LastBudgetCheck *legacyDate  `json:"lastBudgetCheck"`
	} `json:"finance"`
	Transactions []struct {
		ID             legacyID     `json:"id"`
		Date           legacyDate   `json:"date"`
		Type           string       `json:"type"`
		Amount         legacyAmount `json:"amount"`
		Label          string       `json:"label"`
		RelatedGoalID  legacyID     `json:"relatedGoalId"`
		RelatedAssetID legacyID     `json:"relatedAssetId"`
		RelatedOpID    legacyID     `json:"relatedOpId"`
	} `json:"transactions"`
	Goals []struct {
		ID           legacyID     `json:"id"`
		Name         string       `json:"name"`
		Target       legacyAmount `json:"target"`
		TargetAmount legacyAmount `json:"targetAmount"`
		Color        string       `json:"color"`
		IconKey      string       `json:"iconKey"`
		Status       string       `json:"status"`
	} `json:"goals"`
	Assets []struct {
		ID       legacyID     `json:"id"`
		Name     string       `json:"name"`
		Value    legacyAmount `json:"value"`
		Category string       `json:"category"`
		Status   string       `json:"status"`
	} `json:"assets"`
	FutureOperations []legacyOperation `json:"futureOperations"`

	// Versions before future expenses were supported only stored incomes
	FutureIncomes []legacyOperation `json:"futureIncomes"`
}

// ParseLegacyData decodes the browser storage format.
func ParseLegacyData(r io.Reader) (LegacyData, error) {
	var data LegacyData
	err := json.NewDecoder(r).Decode(&data)
	if err != nil {
		return LegacyData{}, fmt.Errorf("%w: %s", ErrLegacyData, err)
	}

	return data, nil
}

// LegacyImport reports the number of imported resources.
type LegacyImport struct {
	Transactions     int
	Goals            int
	Assets           int
	FutureOperations int
}

// idMap assigns UUIDs to legacy ids. Legacy ids that already are UUIDs are kept.
type idMap map[legacyID]uuid.UUID

func (m idMap) assign(id legacyID) uuid.UUID {
	if parsed, err := uuid.Parse(string(id)); err == nil {
		m[id] = parsed
		return parsed
	}

	n := uuid.New()
	if id != "" {
		m[id] = n
	}
	return n
}

// link resolves a legacy reference. References to resources that are not
// part of the data resolve to nil.
func (m idMap) link(id legacyID) *uuid.UUID {
	if id == "" {
		return nil
	}

	n, ok := m[id]
	if !ok {
		return nil
	}
	return &n
}

// ImportLegacy replaces all data with the data in the browser storage format.
//
// The balance is taken from the data as is since it already contains the
// effect of all transactions.
func (e *Engine) ImportLegacy(ctx context.Context, data LegacyData) (LegacyImport, error) {
	var result LegacyImport
	err := e.write(ctx, func(tx *gorm.DB) error {
		err := reset(tx)
		if err != nil {
			return err
		}

		goals, assets, operations := idMap{}, idMap{}, idMap{}

		for _, g := range data.Goals {
			status := models.GoalStatus(g.Status)
			if status != models.GoalStatusCompleted {
				status = models.GoalStatusActive
			}

			target := g.Target.Decimal
			if target.IsZero() {
				target = g.TargetAmount.Decimal
			}

			goal := models.Goal{
				DefaultModel: models.DefaultModel{ID: goals.assign(g.ID)},
				Name:         g.Name,
				TargetAmount: target,
				Color:        g.Color,
				IconKey:      g.IconKey,
				Status:       status,
			}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
			result.Goals++
		}

		for _, a := range data.Assets {
			status := models.AssetStatus(a.Status)
			if status != models.AssetStatusSold {
				status = models.AssetStatusActive
			}

			asset := models.Asset{
				DefaultModel: models.DefaultModel{ID: assets.assign(a.ID)},
				Name:         a.Name,
				Value:        a.Value.Decimal,
				Category:     a.Category,
				Status:       status,
			}
			if err := tx.Create(&asset).Error; err != nil {
				return err
			}
			result.Assets++
		}

		legacyOperations := data.FutureOperations
		if legacyOperations == nil {
			legacyOperations = make([]legacyOperation, 0, len(data.FutureIncomes))
			for _, income := range data.FutureIncomes {
				income.Type = string(models.TransactionTypeIn)
				legacyOperations = append(legacyOperations, income)
			}
		}

		for _, o := range legacyOperations {
			kind := models.TransactionType(o.Type)
			if kind == "" {
				kind = models.TransactionTypeIn
			}

			operation := models.FutureOperation{
				DefaultModel: models.DefaultModel{ID: operations.assign(o.ID)},
				Label:        o.Label,
				Amount:       o.Amount.Decimal,
				Type:         kind,
				Date:         o.Date.Time,
				Received:     o.Received,
			}
			if err := tx.Create(&operation).Error; err != nil {
				return err
			}
			result.FutureOperations++
		}

		for _, t := range data.Transactions {
			date := t.Date.Time
			if date.IsZero() {
				date = e.Now()
			}

			transaction := models.Transaction{
				Type:           models.TransactionType(t.Type),
				Amount:         t.Amount.Decimal,
				Label:          t.Label,
				Date:           date,
				RelatedGoalID:  goals.link(t.RelatedGoalID),
				RelatedAssetID: assets.link(t.RelatedAssetID),
				RelatedOpID:    operations.link(t.RelatedOpID),
			}
			if err := tx.Create(&transaction).Error; err != nil {
				return err
			}
			result.Transactions++
		}

		settings, err := loadSettings(tx)
		if err != nil {
			return err
		}

		settings.Name = data.User.Name
		settings.Balance = data.Finance.Balance.Decimal
		settings.MonthlyIncome = data.Finance.Income.Decimal
		settings.MonthlyExpenses = data.Finance.Expenses.Decimal
		settings.LastBudgetCheck = nil
		if data.Finance.LastBudgetCheck != nil && !data.Finance.LastBudgetCheck.IsZero() {
			check := data.Finance.LastBudgetCheck.Time
			settings.LastBudgetCheck = &check
		}

		return tx.Save(&settings).Error
	})
	if err != nil {
		return LegacyImport{}, err
	}

	return result, nil
}
