package ledger_test

import (
	"strings"
	"time"

	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

const legacyV3 = `{
	"user": { "name": "Khadija" },
	"finance": { "balance": 1234.5, "income": "2100", "expenses": 1600, "lastBudgetCheck": "2024-05-02T08:00:00.000Z" },
	"transactions": [
		{ "id": 1717000000003, "date": "2024-05-30T10:00:00.000Z", "type": "out", "amount": 620, "label": "Achat : Téléphone", "relatedGoalId": 1717000000001, "relatedAssetId": null, "relatedOpId": null },
		{ "id": 1717000000004, "date": "2024-05-20T10:00:00.000Z", "type": "in", "amount": 150, "label": "Revenu : Remboursement", "relatedOpId": 1717000000002 },
		{ "id": 1717000000005, "date": "2024-05-10T10:00:00.000Z", "type": "in", "amount": 80, "label": "Vente : Ancien", "relatedAssetId": 424242 }
	],
	"goals": [
		{ "id": 1, "name": "Épargne de Sécurité", "target": 3000, "color": "bg-emerald-500", "iconKey": "Wallet" },
		{ "id": 1717000000001, "name": "Téléphone", "target": "600", "color": "bg-slate-900", "iconKey": "Smartphone", "status": "completed" }
	],
	"assets": [
		{ "id": 1717000000010, "name": "Voiture", "value": 5000, "category": "Véhicule" }
	],
	"futureIncomes": [
		{ "id": 1717000000002, "label": "Remboursement", "amount": 150, "date": "2024-05-20", "received": true },
		{ "id": 1717000000006, "label": "Prime", "amount": 400, "date": "2024-09-01" }
	]
}`

func (suite *TestSuiteStandard) TestImportLegacy() {
	// Existing data is replaced
	suite.createGoal("Ancien objectif", 10)

	data, err := ledger.ParseLegacyData(strings.NewReader(legacyV3))
	suite.Require().Nil(err)

	result, err := suite.engine.ImportLegacy(suite.ctx, data)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), ledger.LegacyImport{Transactions: 3, Goals: 2, Assets: 1, FutureOperations: 2}, result)

	snapshot, err := suite.engine.Snapshot(suite.ctx)
	suite.Require().Nil(err)

	assert.Equal(suite.T(), "Khadija", snapshot.Settings.Name)
	suite.assertDecimal(d(1234.5), snapshot.Settings.Balance)
	suite.assertDecimal(d(2100), snapshot.Settings.MonthlyIncome)
	if assert.NotNil(suite.T(), snapshot.Settings.LastBudgetCheck) {
		assert.Equal(suite.T(), time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC), *snapshot.Settings.LastBudgetCheck)
	}

	// Missing status defaults to active
	suite.Require().Len(snapshot.Goals, 2)
	goals := map[string]models.Goal{}
	for _, g := range snapshot.Goals {
		goals[g.Name] = g
	}
	safety, phone := goals["Épargne de Sécurité"], goals["Téléphone"]
	assert.Equal(suite.T(), "Épargne de Sécurité", safety.Name)
	assert.Equal(suite.T(), models.GoalStatusActive, safety.Status)
	assert.Equal(suite.T(), models.GoalStatusCompleted, phone.Status)
	suite.assertDecimal(d(600), phone.TargetAmount)

	suite.Require().Len(snapshot.Assets, 1)
	assert.Equal(suite.T(), models.AssetStatusActive, snapshot.Assets[0].Status)

	// futureIncomes are migrated to incoming future operations
	suite.Require().Len(snapshot.FutureOperations, 2)
	refund := snapshot.FutureOperations[0]
	assert.Equal(suite.T(), "Remboursement", refund.Label)
	assert.Equal(suite.T(), models.TransactionTypeIn, refund.Type)
	assert.True(suite.T(), refund.Received)
	assert.Equal(suite.T(), time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), refund.Date)
	assert.False(suite.T(), snapshot.FutureOperations[1].Received)

	// Links are remapped to the new IDs, unknown references are dropped
	suite.Require().Len(snapshot.Transactions, 3)
	purchase, income, sale := snapshot.Transactions[0], snapshot.Transactions[1], snapshot.Transactions[2]
	if assert.NotNil(suite.T(), purchase.RelatedGoalID) {
		assert.Equal(suite.T(), phone.ID, *purchase.RelatedGoalID)
	}
	if assert.NotNil(suite.T(), income.RelatedOpID) {
		assert.Equal(suite.T(), refund.ID, *income.RelatedOpID)
	}
	assert.Nil(suite.T(), sale.RelatedAssetID)

	// The balance is taken over as is, the history leads up to it
	points, err := suite.engine.BalanceHistory(suite.ctx)
	suite.Require().Nil(err)
	suite.assertDecimal(d(1234.5-80-150+620), points[0].Balance)
}

func (suite *TestSuiteStandard) TestImportLegacyFutureOperations() {
	data, err := ledger.ParseLegacyData(strings.NewReader(`{
		"futureOperations": [{ "id": 1, "label": "Impôts", "amount": 900, "type": "out", "date": "2024-09-15" }],
		"futureIncomes": [{ "id": 2, "label": "Ignoré", "amount": 100, "date": "2024-09-15" }]
	}`))
	suite.Require().Nil(err)

	_, err = suite.engine.ImportLegacy(suite.ctx, data)
	suite.Require().Nil(err)

	operations, err := suite.engine.FutureOperations(suite.ctx, ledger.FutureOperationFilter{})
	suite.Require().Nil(err)
	suite.Require().Len(operations, 1)
	assert.Equal(suite.T(), models.TransactionTypeOut, operations[0].Type)

	settings, err := suite.engine.Settings(suite.ctx)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.DefaultUserName, settings.Name)
}

func (suite *TestSuiteStandard) TestImportLegacyInvalid() {
	_, err := ledger.ParseLegacyData(strings.NewReader(`{ "goals": "none" }`))
	assert.ErrorIs(suite.T(), err, models.ErrValidation)

	goal := suite.createGoal("À garder", 10)

	data, err := ledger.ParseLegacyData(strings.NewReader(`{ "transactions": [{ "id": 1, "type": "out", "amount": 0, "label": "Zéro" }] }`))
	suite.Require().Nil(err)

	_, err = suite.engine.ImportLegacy(suite.ctx, data)
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	// The import is rolled back completely
	_, err = suite.engine.Goal(suite.ctx, goal.ID)
	assert.Nil(suite.T(), err)
}
