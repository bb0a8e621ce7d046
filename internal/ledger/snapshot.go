package ledger

import (
	"context"

	"github.com/halalflow/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the complete state of the ledger.
type Snapshot struct {
	Settings         models.Settings
	Transactions     []models.Transaction
	Goals            []models.Goal
	Assets           []models.Asset
	FutureOperations []models.FutureOperation
}

// Snapshot reads the complete state. The reads are issued concurrently.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Settings, err = e.Settings(ctx)
		return
	})
	g.Go(func() error {
		page, err := e.Transactions(ctx, TransactionFilter{Limit: -1})
		s.Transactions = page.Transactions
		return err
	})
	g.Go(func() (err error) {
		s.Goals, err = e.Goals(ctx, GoalFilter{})
		return
	})
	g.Go(func() (err error) {
		s.Assets, err = e.Assets(ctx, AssetFilter{})
		return
	})
	g.Go(func() (err error) {
		s.FutureOperations, err = e.FutureOperations(ctx, FutureOperationFilter{})
		return
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
