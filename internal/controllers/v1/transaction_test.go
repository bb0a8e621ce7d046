package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/halalflow/backend/internal/controllers/v1"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/halalflow/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	suite.setBalance(1000)

	r := suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(42.5), Label: " Courses "})
	suite.Require().NotNil(r.Balance)
	suite.assertDecimal(d(957.5), *r.Balance)
	suite.assertDecimal(d(957.5), suite.balance())

	transaction := r.Data[0].Data
	assert.Equal(suite.T(), "Courses", transaction.Label)
	assert.Equal(suite.T(), now, *transaction.Date, "The date defaults to the current time")
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), transaction.Links.Self)
	assert.Empty(suite.T(), transaction.Links.Goal)
}

func (suite *TestSuiteStandard) TestTransactionsCreateMultiple() {
	suite.setBalance(100)

	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{Type: models.TransactionTypeIn, Amount: d(2800), Label: "Salaire"},
		{Type: models.TransactionTypeOut, Amount: d(900), Label: "Loyer"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.assertDecimal(d(2000), *response.Balance)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	suite.setBalance(500)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `[{ "amount": true }]`, http.StatusBadRequest},
		{"Invalid type", []v1.TransactionEditable{{Type: "sideways", Amount: d(1), Label: "Test"}}, http.StatusBadRequest},
		{"Zero amount", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Label: "Test"}}, http.StatusBadRequest},
		{"Negative amount", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Amount: d(-3), Label: "Test"}}, http.StatusBadRequest},
		{"Empty label", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Amount: d(1), Label: "   "}}, http.StatusBadRequest},
		{"Unknown goal", []v1.TransactionEditable{{Type: models.TransactionTypeOut, Amount: d(1), Label: "Test", RelatedGoalID: ptr(uuid.New())}}, http.StatusNotFound},
		{"Unknown asset", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Amount: d(1), Label: "Test", RelatedAssetID: ptr(uuid.New())}}, http.StatusNotFound},
		{"Unknown future operation", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Amount: d(1), Label: "Test", RelatedOpID: ptr(uuid.New())}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.assertDecimal(d(500), suite.balance())
		})
	}

	r := suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestTransactionsLinks() {
	goal := suite.createTestGoal(v1.GoalEditable{Name: "Voiture", TargetAmount: d(15000)})

	r := suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(14500), Label: "Achat : Voiture", RelatedGoalID: &goal.Data.ID})
	assert.Equal(suite.T(), goal.Data.Links.Self, r.Data[0].Data.Links.Goal)

	g := suite.request(http.MethodGet, goal.Data.Links.Self, "")
	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &g, &updated)
	assert.Equal(suite.T(), models.GoalStatusCompleted, updated.Data.Status)

	// The goal link lists the transaction
	l := suite.request(http.MethodGet, goal.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &l, http.StatusOK)
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &l, &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), r.Data[0].Data.ID, list.Data[0].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	june := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	may := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	asset := suite.createTestAsset(v1.AssetEditable{Name: "Voiture", Value: d(5000)})

	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(80), Label: "Courses Lidl", Date: &june})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(60), Label: "Courses Marché", Date: &may})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(2800), Label: "Salaire", Date: &may})
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(4800), Label: "Vente : Voiture", RelatedAssetID: &asset.Data.ID})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Type in", "type=in", 2},
		{"Type out", "type=out", 2},
		{"Label exact", "label=Salaire", 1},
		{"Label glob", "label=Courses*", 2},
		{"Asset", fmt.Sprintf("asset=%s", asset.Data.ID), 1},
		{"Unknown goal", fmt.Sprintf("goal=%s", uuid.New()), 0},
		{"From date", "fromDate=2024-06-01", 2},
		{"Until date", "untilDate=2024-05-20", 2},
		{"Date range", "fromDate=2024-06-03&untilDate=2024-06-03", 1},
		{"Type and label", "type=out&label=*Lidl", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			assert.Len(suite.T(), response.Data, tt.len, "Request ID: %s", r.Header().Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid type", "type=sideways"},
		{"Invalid goal ID", "goal=nope"},
		{"Invalid date", "fromDate=yesterday"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := range 10 {
		date := now.AddDate(0, 0, -i)
		suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: decimal.NewFromInt(int64(i + 1)), Label: fmt.Sprintf("Revenu %d", i), Date: &date})
	}

	tests := []struct {
		name       string
		query      string
		pagination v1.Pagination
	}{
		{"Default", "", v1.Pagination{Count: 10, Offset: 0, Limit: 50, Total: 10}},
		{"Limit", "limit=3", v1.Pagination{Count: 3, Offset: 0, Limit: 3, Total: 10}},
		{"Offset", "offset=8", v1.Pagination{Count: 2, Offset: 8, Limit: 50, Total: 10}},
		{"Offset and limit", "offset=4&limit=4", v1.Pagination{Count: 4, Offset: 4, Limit: 4, Total: 10}},
		{"All", "limit=-1", v1.Pagination{Count: 10, Offset: 0, Limit: -1, Total: 10}},
		{"Offset too large", "offset=20", v1.Pagination{Count: 0, Offset: 20, Limit: 50, Total: 10}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Pagination)
			assert.Equal(suite.T(), tt.pagination, *response.Pagination)
		})
	}

	// Newest first
	r := suite.request(http.MethodGet, "http://example.com/v1/transactions?limit=1", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Revenu 0", response.Data[0].Label)
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	r := suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(10), Label: "Cadeau"})

	g := suite.request(http.MethodGet, r.Data[0].Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &g, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &g, &response)
	assert.Equal(suite.T(), "Cadeau", response.Data.Label)

	g = suite.request(http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &g, http.StatusNotFound)

	g = suite.request(http.MethodGet, "http://example.com/v1/transactions/123", "")
	test.AssertHTTPStatus(suite.T(), &g, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	suite.setBalance(1000)

	goal := suite.createTestGoal(v1.GoalEditable{Name: "Voiture", TargetAmount: d(800)})
	asset := suite.createTestAsset(v1.AssetEditable{Name: "Vélo", Value: d(300)})
	operation := suite.createTestFutureOperation(v1.FutureOperationEditable{Label: "Prime", Amount: d(200), Type: models.TransactionTypeIn, Date: now.AddDate(0, 1, 0)})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		reverted ledger.Reverted
	}{
		{"Unlinked", v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(12), Label: "Café"}, ledger.RevertedNone},
		{"Goal", v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(750), Label: "Achat : Voiture", RelatedGoalID: &goal.Data.ID}, ledger.RevertedGoal},
		{"Asset", v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(280), Label: "Vente : Vélo", RelatedAssetID: &asset.Data.ID}, ledger.RevertedAsset},
		{"Future operation", v1.TransactionEditable{Type: models.TransactionTypeIn, Amount: d(200), Label: "Revenu : Prime", RelatedOpID: &operation.Data.ID}, ledger.RevertedFutureOperation},
		{"Goal takes precedence", v1.TransactionEditable{Type: models.TransactionTypeOut, Amount: d(5), Label: "Deux liens", RelatedGoalID: &goal.Data.ID, RelatedAssetID: &asset.Data.ID}, ledger.RevertedGoal},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			created := suite.createTestTransaction(tt.editable)

			r := suite.request(http.MethodDelete, created.Data[0].Data.Links.Self, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.TransactionDeleteResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Require().NotNil(response.Data)
			assert.Equal(suite.T(), tt.reverted, response.Data.Reverted)
			suite.assertDecimal(d(1000), response.Data.Balance)
			suite.assertDecimal(d(1000), suite.balance())
		})
	}

	g := suite.request(http.MethodGet, goal.Data.Links.Self, "")
	var goalResponse v1.GoalResponse
	test.DecodeResponse(suite.T(), &g, &goalResponse)
	assert.Equal(suite.T(), models.GoalStatusActive, goalResponse.Data.Status)

	a := suite.request(http.MethodGet, asset.Data.Links.Self, "")
	var assetResponse v1.AssetResponse
	test.DecodeResponse(suite.T(), &a, &assetResponse)
	assert.Equal(suite.T(), models.AssetStatusSold, assetResponse.Data.Status, "The asset is only reverted by a transaction linking no goal")
}

func (suite *TestSuiteStandard) TestTransactionsDeleteNotFound() {
	suite.setBalance(1000)

	r := suite.request(http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.assertDecimal(d(1000), suite.balance())
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{{Type: models.TransactionTypeIn, Amount: d(1), Label: "Test"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = suite.request(http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
