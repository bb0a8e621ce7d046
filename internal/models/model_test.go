package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Paris")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
		},
	}

	err := model.AfterFind(suite.db)
	if err != nil {
		assert.Fail(suite.T(), "model.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsGivenID() {
	id := uuid.New()
	asset := models.Asset{DefaultModel: models.DefaultModel{ID: id}, Name: "Montre"}
	suite.Require().Nil(suite.db.Create(&asset).Error)
	assert.Equal(suite.T(), id, asset.ID)

	other := models.Asset{Name: "Vélo"}
	suite.Require().Nil(suite.db.Create(&other).Error)
	assert.NotEqual(suite.T(), uuid.Nil, other.ID)
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Valid", models.Transaction{Type: models.TransactionTypeIn, Amount: decimal.NewFromFloat(10), Label: "Salaire"}, nil},
		{"Invalid type", models.Transaction{Type: "sideways", Amount: decimal.NewFromFloat(10), Label: "Salaire"}, models.ErrTransactionTypeInvalid},
		{"Zero amount", models.Transaction{Type: models.TransactionTypeOut, Amount: decimal.Zero, Label: "Courses"}, models.ErrAmountNotPositive},
		{"Negative amount", models.Transaction{Type: models.TransactionTypeOut, Amount: decimal.NewFromFloat(-3), Label: "Courses"}, models.ErrAmountNotPositive},
		{"Blank label", models.Transaction{Type: models.TransactionTypeOut, Amount: decimal.NewFromFloat(3), Label: "   "}, models.ErrLabelEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.db.Create(&tt.transaction).Error
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	nilID := uuid.Nil
	tz, _ := time.LoadLocation("Asia/Tokyo")
	transaction := models.Transaction{
		Type:          models.TransactionTypeIn,
		Amount:        decimal.NewFromFloat(42),
		Label:         "  Cadeau \t",
		Date:          time.Date(2024, 3, 1, 8, 0, 0, 0, tz),
		RelatedGoalID: &nilID,
	}
	suite.Require().Nil(suite.db.Create(&transaction).Error)

	assert.Equal(suite.T(), "Cadeau", transaction.Label)
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
	assert.Nil(suite.T(), transaction.RelatedGoalID)
	assert.True(suite.T(), decimal.NewFromFloat(-42).Equal(models.Transaction{Type: models.TransactionTypeOut, Amount: decimal.NewFromFloat(42)}.SignedAmount()))
}

func (suite *TestSuiteStandard) TestGoalDefaults() {
	goal := models.Goal{Name: "  Voyage ", TargetAmount: decimal.NewFromFloat(1200)}
	suite.Require().Nil(suite.db.Create(&goal).Error)

	assert.Equal(suite.T(), strings.TrimSpace(" Voyage "), goal.Name)
	assert.Equal(suite.T(), models.DefaultGoalColor, goal.Color)
	assert.Equal(suite.T(), models.DefaultGoalIconKey, goal.IconKey)
	assert.Equal(suite.T(), models.GoalStatusActive, goal.Status)

	err := suite.db.Create(&models.Goal{Name: "Rien", TargetAmount: decimal.Zero}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	err = suite.db.Create(&models.Goal{TargetAmount: decimal.NewFromFloat(5)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrNameEmpty)
}

func (suite *TestSuiteStandard) TestAssetDefaults() {
	asset := models.Asset{Name: "Or", Value: decimal.Zero}
	suite.Require().Nil(suite.db.Create(&asset).Error)

	assert.Equal(suite.T(), models.DefaultAssetCategory, asset.Category)
	assert.Equal(suite.T(), models.AssetStatusActive, asset.Status)

	err := suite.db.Create(&models.Asset{Name: "Dette", Value: decimal.NewFromFloat(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrValueNegative)
}

func (suite *TestSuiteStandard) TestFutureOperationValidation() {
	err := suite.db.Create(&models.FutureOperation{Label: "Prime", Amount: decimal.NewFromFloat(500), Type: models.TransactionTypeIn}).Error
	assert.ErrorIs(suite.T(), err, models.ErrDateMissing)

	err = suite.db.Create(&models.FutureOperation{Label: "Prime", Amount: decimal.NewFromFloat(500), Type: "", Date: time.Now()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)

	op := models.FutureOperation{Label: " Prime ", Amount: decimal.NewFromFloat(500), Type: models.TransactionTypeIn, Date: time.Now()}
	suite.Require().Nil(suite.db.Create(&op).Error)
	assert.Equal(suite.T(), "Prime", op.Label)
	assert.False(suite.T(), op.Received)
}

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	settings := models.Settings{MonthlyIncome: decimal.NewFromFloat(2000), MonthlyExpenses: decimal.NewFromFloat(1500)}
	suite.Require().Nil(suite.db.Save(&settings).Error)

	assert.Equal(suite.T(), uint(models.SettingsID), settings.ID)
	assert.Equal(suite.T(), models.DefaultUserName, settings.Name)
	assert.True(suite.T(), decimal.NewFromFloat(500).Equal(settings.MonthlySavings()))

	settings.MonthlyExpenses = decimal.NewFromFloat(-1)
	err := suite.db.Save(&settings).Error
	assert.ErrorIs(suite.T(), err, models.ErrMonthlyAmountNegative)
}

func (suite *TestSuiteStandard) TestRegistryExport() {
	suite.Require().Nil(suite.db.Create(&models.Goal{Name: "Voyage", TargetAmount: decimal.NewFromFloat(1200)}).Error)

	for _, model := range models.Registry {
		b, err := model.Export(suite.db)
		suite.Require().Nil(err)
		assert.True(suite.T(), strings.HasPrefix(string(b), "["))
	}
}

func (suite *TestSuiteStandard) TestRegistryExportClosedDB() {
	suite.CloseDB()

	for _, model := range models.Registry {
		_, err := model.Export(suite.db)
		assert.ErrorIs(suite.T(), err, models.ErrGeneral)
	}
}
