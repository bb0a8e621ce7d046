package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalInput contains the mutable fields of a goal.
type GoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Color        string
	IconKey      string
}

// GoalFilter restricts the goals returned by Goals.
type GoalFilter struct {
	Status models.GoalStatus
}

// UpsertGoal creates a goal or updates the mutable fields of an existing one.
//
// A goal is created when id is nil or no goal with the id exists. In the
// latter case, the given id is used. The status is never changed.
func (e *Engine) UpsertGoal(ctx context.Context, id *uuid.UUID, input GoalInput) (models.Goal, error) {
	var goal models.Goal
	err := e.write(ctx, func(tx *gorm.DB) error {
		var err error
		goal, err = upsertGoal(tx, id, input)
		return err
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

func upsertGoal(tx *gorm.DB, id *uuid.UUID, input GoalInput) (models.Goal, error) {
	var goal models.Goal

	exists, err := lookup(tx, &goal, id)
	if err != nil {
		return models.Goal{}, err
	}

	goal.Name = input.Name
	goal.TargetAmount = input.TargetAmount
	goal.Color = input.Color
	goal.IconKey = input.IconKey

	if exists {
		return goal, tx.Save(&goal).Error
	}

	goal.Status = models.GoalStatusActive
	return goal, tx.Create(&goal).Error
}

// Goal returns a single goal.
func (e *Engine) Goal(ctx context.Context, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := e.read(ctx).First(&goal, id).Error
	return goal, classify(err)
}

// Goals lists goals ordered by name.
func (e *Engine) Goals(ctx context.Context, filter GoalFilter) ([]models.Goal, error) {
	q := e.read(ctx).Order("name ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var goals []models.Goal
	err := q.Find(&goals).Error
	return goals, classify(err)
}

// DeleteGoal removes a goal. Transactions linked to it are kept.
func (e *Engine) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return e.write(ctx, func(tx *gorm.DB) error {
		var goal models.Goal
		err := tx.First(&goal, id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&goal).Error
	})
}

// lookup loads the resource with the given id into dest and reports if it exists.
// When it does not exist, the id is set on dest so that it is kept on create.
func lookup[T interface{ *models.Goal | *models.Asset | *models.FutureOperation }](tx *gorm.DB, dest T, id *uuid.UUID) (bool, error) {
	if id == nil || *id == uuid.Nil {
		return false, nil
	}

	err := tx.First(dest, *id).Error
	if err == nil {
		return true, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return false, err
	}

	switch d := any(dest).(type) {
	case *models.Goal:
		d.ID = *id
	case *models.Asset:
		d.ID = *id
	case *models.FutureOperation:
		d.ID = *id
	}

	return false, nil
}
