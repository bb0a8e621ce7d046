package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) settlementDue() bool {
	r := suite.request(http.MethodGet, "http://example.com/v1/settlement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettlementStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	return response.Data.Due
}

func (suite *TestSuiteStandard) TestSettlementDue() {
	// Never due before the first check
	assert.False(suite.T(), suite.settlementDue())

	tests := []struct {
		name  string
		check time.Time
		due   bool
	}{
		{"Same month", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"Previous month", time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), true},
		{"Same month last year", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{"lastBudgetCheck": tt.check})
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			assert.Equal(suite.T(), tt.due, suite.settlementDue())
		})
	}
}

func (suite *TestSuiteStandard) TestSettlementConfirm() {
	suite.setBalance(1000)

	r := suite.request(http.MethodPatch, "http://example.com/v1/settings", map[string]any{"lastBudgetCheck": time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Require().True(suite.settlementDue())

	r = suite.request(http.MethodPost, "http://example.com/v1/settlement", map[string]any{"reportedBalance": 1050})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettlementResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	assert.True(suite.T(), response.Data.Adjusted)
	suite.assertDecimal(d(50), response.Data.Difference)
	suite.assertDecimal(d(1050), response.Data.Balance)
	suite.Require().NotNil(response.Data.Transaction)
	assert.Equal(suite.T(), ledger.AdjustmentLabel, response.Data.Transaction.Label)
	assert.Equal(suite.T(), models.TransactionTypeIn, response.Data.Transaction.Type)
	suite.assertDecimal(d(50), response.Data.Transaction.Amount)

	assert.False(suite.T(), suite.settlementDue())
}

func (suite *TestSuiteStandard) TestSettlementWithinTolerance() {
	suite.setBalance(1000)

	r := suite.request(http.MethodPost, "http://example.com/v1/settlement", map[string]any{"reportedBalance": 999.995})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettlementResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	assert.False(suite.T(), response.Data.Adjusted)
	assert.Nil(suite.T(), response.Data.Transaction)
	suite.assertDecimal(d(1000), response.Data.Balance)

	l := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &l, &list)
	assert.Empty(suite.T(), list.Data)
}

func (suite *TestSuiteStandard) TestSettlementConfirmFails() {
	suite.setBalance(1000)

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Missing balance", map[string]any{}},
		{"Broken body", `{ "reportedBalance": "lots" }`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/settlement", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
			suite.assertDecimal(d(1000), suite.balance())
		})
	}
}
