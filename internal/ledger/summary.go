package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// GoalProgress is the share of the goal target covered by the balance, in percent.
type GoalProgress struct {
	GoalID   uuid.UUID
	Name     string
	Progress int64
}

// Summary contains the figures shown on the dashboard.
type Summary struct {
	Balance        decimal.Decimal
	TotalAssets    decimal.Decimal // Sum of active asset values
	NetWorth       decimal.Decimal // Balance plus total assets
	MonthlySavings decimal.Decimal
	SettlementDue  bool
	Goals          []GoalProgress // Active goals only
}

var hundred = decimal.NewFromInt(100)

// Progress returns the goal progress for a balance, between 0 and 100.
func Progress(balance, target decimal.Decimal) int64 {
	if !target.IsPositive() {
		return 0
	}

	p := balance.Div(target).Mul(hundred).Round(0).IntPart()
	if p > 100 {
		return 100
	}

	if p < 0 {
		return 0
	}

	return p
}

// Summary computes the dashboard figures.
func (e *Engine) Summary(ctx context.Context) (Summary, error) {
	snapshot, err := e.Snapshot(ctx)
	if err != nil {
		return Summary{}, err
	}

	total := decimal.Zero
	for _, asset := range snapshot.Assets {
		if asset.Status == models.AssetStatusActive {
			total = total.Add(asset.Value)
		}
	}

	goals := make([]GoalProgress, 0)
	for _, goal := range snapshot.Goals {
		if goal.Status != models.GoalStatusActive {
			continue
		}

		goals = append(goals, GoalProgress{
			GoalID:   goal.ID,
			Name:     goal.Name,
			Progress: Progress(snapshot.Settings.Balance, goal.TargetAmount),
		})
	}

	return Summary{
		Balance:        snapshot.Settings.Balance,
		TotalAssets:    total,
		NetWorth:       snapshot.Settings.Balance.Add(total),
		MonthlySavings: snapshot.Settings.MonthlySavings(),
		SettlementDue:  IsSettlementDue(snapshot.Settings, e.Now()),
		Goals:          goals,
	}, nil
}

// HistoryNowLabel is the label of the last history point.
const HistoryNowLabel = "now"

// HistoryPoint is the balance at a point in time.
type HistoryPoint struct {
	Date    time.Time
	Label   string
	Balance decimal.Decimal
}

// History reconstructs the balance before every transaction, oldest first.
// The last point is the current balance.
func History(balance decimal.Decimal, transactions []models.Transaction, now time.Time) []HistoryPoint {
	points := make([]HistoryPoint, len(transactions)+1)
	points[len(transactions)] = HistoryPoint{Date: now.In(time.UTC), Label: HistoryNowLabel, Balance: balance}

	// transactions are sorted newest first, each one is un-applied in turn
	for i, t := range transactions {
		balance = balance.Sub(t.SignedAmount())
		points[len(transactions)-1-i] = HistoryPoint{
			Date:    t.Date,
			Label:   t.Date.Format(time.DateOnly),
			Balance: balance,
		}
	}

	return points
}

// BalanceHistory reconstructs the balance history from the ledger.
func (e *Engine) BalanceHistory(ctx context.Context) ([]HistoryPoint, error) {
	settings, err := e.Settings(ctx)
	if err != nil {
		return nil, err
	}

	page, err := e.Transactions(ctx, TransactionFilter{Limit: -1})
	if err != nil {
		return nil, err
	}

	return History(settings.Balance, page.Transactions, e.Now()), nil
}
