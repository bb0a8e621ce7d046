package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type SettingsEditable struct {
	Name            string          `json:"name" example:"Amina" default:"Utilisateur"`     // Name of the user
	Balance         decimal.Decimal `json:"balance" example:"2345.67"`                      // The current balance
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"2800" minimum:"0"`       // The regular monthly income
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" example:"1900" minimum:"0"`     // The regular monthly expenses
	LastBudgetCheck *time.Time      `json:"lastBudgetCheck" example:"2024-06-01T09:00:00Z"` // Time of the last monthly settlement
}

// update returns the ledger update for the fields that are set
func (editable SettingsEditable) update(fields []string) ledger.SettingsUpdate {
	var update ledger.SettingsUpdate

	if slices.Contains(fields, "Name") {
		update.Name = &editable.Name
	}

	if slices.Contains(fields, "Balance") {
		update.Balance = &editable.Balance
	}

	if slices.Contains(fields, "MonthlyIncome") {
		update.MonthlyIncome = &editable.MonthlyIncome
	}

	if slices.Contains(fields, "MonthlyExpenses") {
		update.MonthlyExpenses = &editable.MonthlyExpenses
	}

	if slices.Contains(fields, "LastBudgetCheck") && editable.LastBudgetCheck != nil {
		update.LastBudgetCheck = editable.LastBudgetCheck
	}

	return update
}

type SettingsLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/settings"`                  // The settings
	Onboarding string `json:"onboarding" example:"https://example.com/api/v1/settings/onboarding"` // Endpoint for the initial setup
	Settlement string `json:"settlement" example:"https://example.com/api/v1/settlement"`          // Endpoint for the monthly settlement
}

type Settings struct {
	SettingsEditable
	MonthlySavings decimal.Decimal `json:"monthlySavings" example:"900"` // Monthly income minus monthly expenses
	models.Timestamps
	Links SettingsLinks `json:"links"`
}

// newSettings returns the API v1 representation of the resource
func newSettings(c *gin.Context, model models.Settings) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		SettingsEditable: SettingsEditable{
			Name:            model.Name,
			Balance:         model.Balance,
			MonthlyIncome:   model.MonthlyIncome,
			MonthlyExpenses: model.MonthlyExpenses,
			LastBudgetCheck: model.LastBudgetCheck,
		},
		MonthlySavings: model.MonthlySavings(),
		Timestamps:     model.Timestamps,
		Links: SettingsLinks{
			Self:       url + "/v1/settings",
			Onboarding: url + "/v1/settings/onboarding",
			Settlement: url + "/v1/settlement",
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"monthly income and expenses must not be negative"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                             // The settings
}

type OnboardingEditable struct {
	Name            string          `json:"name" example:"Amina"`           // Name of the user
	Balance         decimal.Decimal `json:"balance" example:"1000"`         // The starting balance
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" example:"2000"`   // The regular monthly income
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses" example:"1500"` // The regular monthly expenses
}

func (editable OnboardingEditable) onboarding() ledger.Onboarding {
	return ledger.Onboarding{
		Name:            editable.Name,
		Balance:         editable.Balance,
		MonthlyIncome:   editable.MonthlyIncome,
		MonthlyExpenses: editable.MonthlyExpenses,
	}
}
