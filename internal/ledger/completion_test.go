package ledger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRequestFinalAmount() {
	goal := suite.createGoal("Vélo", 400)
	asset := suite.createAsset("Console", 250)
	income := suite.createFutureOperation("Prime", 1000, models.TransactionTypeIn, now.AddDate(0, 1, 0))
	expense := suite.createFutureOperation("Assurance", 300, models.TransactionTypeOut, now.AddDate(0, 2, 0))

	tests := []struct {
		name   string
		target ledger.Target
		amount float64
		kind   models.TransactionType
		label  string
	}{
		{"Goal", ledger.Target{Kind: ledger.TargetGoal, ID: goal.ID}, 400, models.TransactionTypeOut, "Achat : Vélo"},
		{"Asset", ledger.Target{Kind: ledger.TargetAsset, ID: asset.ID}, 250, models.TransactionTypeIn, "Vente : Console"},
		{"Income", ledger.Target{Kind: ledger.TargetFutureOperation, ID: income.ID}, 1000, models.TransactionTypeIn, "Revenu : Prime"},
		{"Expense", ledger.Target{Kind: ledger.TargetFutureOperation, ID: expense.ID}, 300, models.TransactionTypeOut, "Dépense : Assurance"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p, err := suite.engine.RequestFinalAmount(suite.ctx, tt.target)
			assert.Nil(t, err)
			assert.Equal(t, tt.target, p.Target)
			assert.True(t, d(tt.amount).Equal(p.SuggestedAmount))
			assert.Equal(t, tt.kind, p.Type)
			assert.Equal(t, tt.label, p.Label)
		})
	}

	_, err := suite.engine.RequestFinalAmount(suite.ctx, ledger.Target{Kind: ledger.TargetGoal, ID: uuid.New()})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = suite.engine.RequestFinalAmount(suite.ctx, ledger.Target{Kind: "budget", ID: goal.ID})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestConfirmFinalAmount() {
	suite.setBalance(1000)
	asset := suite.createAsset("Console", 250)

	result, err := suite.engine.ConfirmFinalAmount(suite.ctx, ledger.Target{Kind: ledger.TargetAsset, ID: asset.ID}, d(210))
	suite.Require().Nil(err)
	suite.assertDecimal(d(1210), result.Settings.Balance)
	assert.Equal(suite.T(), "Vente : Console", result.Transaction.Label)
	assert.Equal(suite.T(), models.TransactionTypeIn, result.Transaction.Type)
	if assert.NotNil(suite.T(), result.Transaction.RelatedAssetID) {
		assert.Equal(suite.T(), asset.ID, *result.Transaction.RelatedAssetID)
	}

	// The planned value stays unchanged
	asset, err = suite.engine.Asset(suite.ctx, asset.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.AssetStatusSold, asset.Status)
	suite.assertDecimal(d(250), asset.Value)
}

func (suite *TestSuiteStandard) TestConfirmFinalAmountValidation() {
	suite.setBalance(1000)
	goal := suite.createGoal("Vélo", 400)

	_, err := suite.engine.ConfirmFinalAmount(suite.ctx, ledger.Target{Kind: ledger.TargetGoal, ID: goal.ID}, d(0))
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	goal, err = suite.engine.Goal(suite.ctx, goal.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.GoalStatusActive, goal.Status)
	suite.assertDecimal(d(1000), suite.balance())
}
