package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

type FutureOperationEditable struct {
	Label  string                 `json:"label" example:"Prime annuelle"`      // Label of the operation
	Amount decimal.Decimal        `json:"amount" example:"1500"`               // The planned amount, always positive
	Type   models.TransactionType `json:"type" example:"in"`                   // Direction of the money flow, 'in' or 'out'
	Date   time.Time              `json:"date" example:"2024-12-20T00:00:00Z"` // Date the operation is expected on
}

func (editable FutureOperationEditable) input() ledger.FutureOperationInput {
	return ledger.FutureOperationInput{
		Label:  editable.Label,
		Amount: editable.Amount,
		Type:   editable.Type,
		Date:   editable.Date,
	}
}

type FutureOperationLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/future-operations/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                    // The future operation itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?futureOperation=f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // Transactions validating the operation
	Validation   string `json:"validation" example:"https://example.com/api/v1/future-operations/f81566d9-af4d-4f13-9830-c62c4b5e4c7e/validation"`   // Endpoint to validate the operation
}

type FutureOperation struct {
	models.DefaultModel
	FutureOperationEditable
	Received bool                 `json:"received" example:"false"` // The operation is received when its transaction has been recorded
	Links    FutureOperationLinks `json:"links"`
}

// newFutureOperation returns the API v1 representation of the resource
func newFutureOperation(c *gin.Context, model models.FutureOperation) FutureOperation {
	url := c.GetString(string(models.DBContextURL))

	return FutureOperation{
		DefaultModel: model.DefaultModel,
		FutureOperationEditable: FutureOperationEditable{
			Label:  model.Label,
			Amount: model.Amount,
			Type:   model.Type,
			Date:   model.Date,
		},
		Received: model.Received,
		Links: FutureOperationLinks{
			Self:         fmt.Sprintf("%s/v1/future-operations/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?futureOperation=%s", url, model.ID),
			Validation:   fmt.Sprintf("%s/v1/future-operations/%s/validation", url, model.ID),
		},
	}
}

type FutureOperationListResponse struct {
	Data  []FutureOperation `json:"data"`                                                          // List of resources
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FutureOperationCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []FutureOperationResponse `json:"data"`                                                          // List of created resources
}

func (t *FutureOperationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, FutureOperationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FutureOperationResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *FutureOperation `json:"data"`                                                          // The resource
}

type FutureOperationQueryFilter struct {
	Received *bool `form:"received"` // Filter by received flag
}
