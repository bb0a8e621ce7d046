package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCompletionProposals() {
	goal := suite.createTestGoal(v1.GoalEditable{Name: "Voiture", TargetAmount: d(15000)})
	asset := suite.createTestAsset(v1.AssetEditable{Name: "Appartement", Value: d(180000)})
	income := suite.createTestFutureOperation(v1.FutureOperationEditable{Label: "Prime", Amount: d(400), Type: models.TransactionTypeIn, Date: now.AddDate(0, 2, 0)})
	expense := suite.createTestFutureOperation(v1.FutureOperationEditable{Label: "Assurance", Amount: d(650), Type: models.TransactionTypeOut, Date: now.AddDate(0, 1, 0)})

	tests := []struct {
		url      string
		expected v1.Completion
	}{
		{goal.Data.Links.Completion, v1.Completion{Kind: ledger.TargetGoal, ID: goal.Data.ID.String(), SuggestedAmount: d(15000), Type: models.TransactionTypeOut, Label: "Achat : Voiture"}},
		{asset.Data.Links.Sale, v1.Completion{Kind: ledger.TargetAsset, ID: asset.Data.ID.String(), SuggestedAmount: d(180000), Type: models.TransactionTypeIn, Label: "Vente : Appartement"}},
		{income.Data.Links.Validation, v1.Completion{Kind: ledger.TargetFutureOperation, ID: income.Data.ID.String(), SuggestedAmount: d(400), Type: models.TransactionTypeIn, Label: "Revenu : Prime"}},
		{expense.Data.Links.Validation, v1.Completion{Kind: ledger.TargetFutureOperation, ID: expense.Data.ID.String(), SuggestedAmount: d(650), Type: models.TransactionTypeOut, Label: "Dépense : Assurance"}},
	}

	for _, tt := range tests {
		suite.Run(tt.url, func() {
			r := suite.request(http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.CompletionResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Data)

			assert.Equal(suite.T(), tt.expected.Kind, response.Data.Kind)
			assert.Equal(suite.T(), tt.expected.ID, response.Data.ID)
			assert.Equal(suite.T(), tt.expected.Type, response.Data.Type)
			assert.Equal(suite.T(), tt.expected.Label, response.Data.Label)
			suite.assertDecimal(tt.expected.SuggestedAmount, response.Data.SuggestedAmount)
		})
	}
}

func (suite *TestSuiteStandard) TestCompletionConfirm() {
	suite.setBalance(20000)
	goal := suite.createTestGoal(v1.GoalEditable{Name: "Voiture", TargetAmount: d(15000)})

	// Requesting the proposal does not change anything
	r := suite.request(http.MethodGet, goal.Data.Links.Completion, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.assertDecimal(d(20000), suite.balance())

	r = suite.request(http.MethodPost, goal.Data.Links.Completion, v1.CompletionConfirmation{Amount: d(14250)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CompletionConfirmationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.assertDecimal(d(5750), response.Data.Balance)
	assert.Equal(suite.T(), "Achat : Voiture", response.Data.Transaction.Label)
	assert.Equal(suite.T(), models.TransactionTypeOut, response.Data.Transaction.Type)
	assert.Equal(suite.T(), goal.Data.Links.Self, response.Data.Transaction.Links.Goal)
	suite.assertDecimal(d(5750), suite.balance())

	g := suite.request(http.MethodGet, goal.Data.Links.Self, "")
	var goalResponse v1.GoalResponse
	test.DecodeResponse(suite.T(), &g, &goalResponse)
	assert.Equal(suite.T(), models.GoalStatusCompleted, goalResponse.Data.Status)
}

func (suite *TestSuiteStandard) TestCompletionConfirmValidation() {
	suite.setBalance(1000)
	operation := suite.createTestFutureOperation(v1.FutureOperationEditable{Label: "Prime", Amount: d(400), Type: models.TransactionTypeIn, Date: now.AddDate(0, 2, 0)})

	r := suite.request(http.MethodPost, operation.Data.Links.Validation, v1.CompletionConfirmation{Amount: d(380)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.assertDecimal(d(1380), suite.balance())

	o := suite.request(http.MethodGet, operation.Data.Links.Self, "")
	var operationResponse v1.FutureOperationResponse
	test.DecodeResponse(suite.T(), &o, &operationResponse)
	assert.True(suite.T(), operationResponse.Data.Received)
}

func (suite *TestSuiteStandard) TestCompletionFails() {
	suite.setBalance(1000)
	asset := suite.createTestAsset(v1.AssetEditable{Name: "Voiture", Value: d(5000)})
	unknown := uuid.New()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		status int
	}{
		{"Proposal for unknown goal", http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s/completion", unknown), "", http.StatusNotFound},
		{"Proposal for unknown asset", http.MethodGet, fmt.Sprintf("http://example.com/v1/assets/%s/sale", unknown), "", http.StatusNotFound},
		{"Proposal for invalid ID", http.MethodGet, "http://example.com/v1/future-operations/xyz/validation", "", http.StatusBadRequest},
		{"Confirm unknown operation", http.MethodPost, fmt.Sprintf("http://example.com/v1/future-operations/%s/validation", unknown), v1.CompletionConfirmation{Amount: d(1)}, http.StatusNotFound},
		{"Confirm zero amount", http.MethodPost, asset.Data.Links.Sale, v1.CompletionConfirmation{}, http.StatusBadRequest},
		{"Confirm without body", http.MethodPost, asset.Data.Links.Sale, "", http.StatusBadRequest},
		{"Confirm with broken body", http.MethodPost, asset.Data.Links.Sale, `{ "amount": [] }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.assertDecimal(d(1000), suite.balance())
		})
	}

	a := suite.request(http.MethodGet, asset.Data.Links.Self, "")
	var assetResponse v1.AssetResponse
	test.DecodeResponse(suite.T(), &a, &assetResponse)
	assert.Equal(suite.T(), models.AssetStatusActive, assetResponse.Data.Status)
}
