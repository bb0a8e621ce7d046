package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/internal/types"
	"github.com/shopspring/decimal"
)

type GoalProgress struct {
	GoalID   uuid.UUID `json:"goalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                                // ID of the goal
	Name     string    `json:"name" example:"Épargne de Sécurité"`                                                   // Name of the goal
	Progress int64     `json:"progress" example:"42" minimum:"0" maximum:"100"`                                      // Share of the target covered by the balance, in percent
	Goal     string    `json:"goal" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal
}

type Summary struct {
	Balance        decimal.Decimal `json:"balance" example:"2345.67"`     // The current balance
	TotalAssets    decimal.Decimal `json:"totalAssets" example:"180000"`  // Sum of the values of all active assets
	NetWorth       decimal.Decimal `json:"netWorth" example:"182345.67"`  // Balance plus total assets
	MonthlySavings decimal.Decimal `json:"monthlySavings" example:"900"`  // Monthly income minus monthly expenses
	SettlementDue  bool            `json:"settlementDue" example:"false"` // If the monthly settlement is due
	Goals          []GoalProgress  `json:"goals"`                         // Progress of all active goals
}

func newSummary(c *gin.Context, summary ledger.Summary) Summary {
	url := c.GetString(string(models.DBContextURL))

	goals := make([]GoalProgress, 0, len(summary.Goals))
	for _, g := range summary.Goals {
		goals = append(goals, GoalProgress{
			GoalID:   g.GoalID,
			Name:     g.Name,
			Progress: g.Progress,
			Goal:     fmt.Sprintf("%s/v1/goals/%s", url, g.GoalID),
		})
	}

	return Summary{
		Balance:        summary.Balance,
		TotalAssets:    summary.TotalAssets,
		NetWorth:       summary.NetWorth,
		MonthlySavings: summary.MonthlySavings,
		SettlementDue:  summary.SettlementDue,
		Goals:          goals,
	}
}

type SummaryResponse struct {
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Summary `json:"data"`                                                                // The dashboard figures
}

type ProjectionEntry struct {
	Month            types.Month     `json:"month" example:"2024-07"`              // The month
	Name             string          `json:"name" example:"Juil"`                  // Short French name of the month
	RealBalance      decimal.Decimal `json:"realBalance" example:"3245.67"`        // Projected balance from the monthly savings only
	PotentialBalance decimal.Decimal `json:"potentialBalance" example:"184745.67"` // Projected balance including active assets and planned operations
}

type ProjectionResponse struct {
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []ProjectionEntry `json:"data"`                                                                // The projected balance at the end of each of the next twelve months
}

type HistoryPoint struct {
	Date    time.Time       `json:"date" example:"2024-06-15T10:30:00Z"` // Time of the point
	Label   string          `json:"label" example:"2024-06-15"`          // Date of the point, 'now' for the current balance
	Balance decimal.Decimal `json:"balance" example:"2345.67"`           // The balance at that time
}

type HistoryResponse struct {
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []HistoryPoint `json:"data"`                                                                // The balance before every transaction, oldest first, and the current balance
}

type Snapshot struct {
	Settings         Settings          `json:"settings"`         // The settings
	Transactions     []Transaction     `json:"transactions"`     // All transactions, newest first
	Goals            []Goal            `json:"goals"`            // All goals
	Assets           []Asset           `json:"assets"`           // All assets
	FutureOperations []FutureOperation `json:"futureOperations"` // All future operations
}

func newSnapshot(c *gin.Context, snapshot ledger.Snapshot) Snapshot {
	s := Snapshot{
		Settings:         newSettings(c, snapshot.Settings),
		Transactions:     make([]Transaction, 0, len(snapshot.Transactions)),
		Goals:            make([]Goal, 0, len(snapshot.Goals)),
		Assets:           make([]Asset, 0, len(snapshot.Assets)),
		FutureOperations: make([]FutureOperation, 0, len(snapshot.FutureOperations)),
	}

	for _, t := range snapshot.Transactions {
		s.Transactions = append(s.Transactions, newTransaction(c, t))
	}

	for _, g := range snapshot.Goals {
		s.Goals = append(s.Goals, newGoal(c, g))
	}

	for _, a := range snapshot.Assets {
		s.Assets = append(s.Assets, newAsset(c, a))
	}

	for _, o := range snapshot.FutureOperations {
		s.FutureOperations = append(s.FutureOperations, newFutureOperation(c, o))
	}

	return s
}

type SnapshotResponse struct {
	Error *string   `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *Snapshot `json:"data"`                                                                // The complete state
}
