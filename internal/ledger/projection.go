package ledger

import (
	"context"
	"time"

	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ProjectionMonths is the number of months covered by a projection.
const ProjectionMonths = 12

// ProjectionEntry is the projected balance at the end of a month.
type ProjectionEntry struct {
	Month            types.Month
	Name             string
	RealBalance      decimal.Decimal // Balance from monthly savings only
	PotentialBalance decimal.Decimal // Including active assets and planned operations
}

// Project computes the balance projection for the months following now.
//
// The real balance grows by the monthly savings. The potential balance
// additionally starts with the value of all active assets and includes every
// future operation that has not been received yet in the month it is planned for.
func Project(settings models.Settings, assets []models.Asset, operations []models.FutureOperation, now time.Time) []ProjectionEntry {
	savings := settings.MonthlySavings()

	cash := settings.Balance
	potential := settings.Balance
	for _, asset := range assets {
		if asset.Status == models.AssetStatusActive {
			potential = potential.Add(asset.Value)
		}
	}

	start := types.MonthOf(now)
	entries := make([]ProjectionEntry, 0, ProjectionMonths)
	for i := 1; i <= ProjectionMonths; i++ {
		month := start.AddDate(0, i)

		cash = cash.Add(savings)
		potential = potential.Add(savings)

		for _, operation := range operations {
			if operation.Received || !month.Contains(operation.Date) {
				continue
			}
			potential = potential.Add(operation.SignedAmount())
		}

		entries = append(entries, ProjectionEntry{
			Month:            month,
			Name:             month.ShortName(),
			RealBalance:      cash,
			PotentialBalance: potential,
		})
	}

	return entries
}

// Projection computes the balance projection from the current state.
func (e *Engine) Projection(ctx context.Context) ([]ProjectionEntry, error) {
	var (
		settings   models.Settings
		assets     []models.Asset
		operations []models.FutureOperation
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		settings, err = e.Settings(ctx)
		return
	})
	g.Go(func() (err error) {
		assets, err = e.Assets(ctx, AssetFilter{Status: models.AssetStatusActive})
		return
	})
	g.Go(func() (err error) {
		received := false
		operations, err = e.FutureOperations(ctx, FutureOperationFilter{Received: &received})
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Project(settings, assets, operations, e.Now()), nil
}
