package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	hf_uuid "github.com/halalflow/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type           models.TransactionType `json:"type" example:"out"`                                            // Direction of the money flow, 'in' or 'out'
	Amount         decimal.Decimal        `json:"amount" example:"42.50" minimum:"0.00000001"`                   // The amount, always positive
	Label          string                 `json:"label" example:"Courses"`                                       // Label of the transaction
	Date           *time.Time             `json:"date" example:"2024-06-15T10:30:00Z"`                           // Date of the transaction. Defaults to now
	RelatedGoalID  *uuid.UUID             `json:"relatedGoalId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`  // The goal completed by this transaction
	RelatedAssetID *uuid.UUID             `json:"relatedAssetId" example:"c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // The asset sold by this transaction
	RelatedOpID    *uuid.UUID             `json:"relatedOpId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`    // The future operation validated by this transaction
}

// input returns the ledger input for the API representation of the editable fields
func (editable TransactionEditable) input() ledger.TransactionInput {
	var date time.Time
	if editable.Date != nil {
		date = *editable.Date
	}

	return ledger.TransactionInput{
		Type:           editable.Type,
		Amount:         editable.Amount,
		Label:          editable.Label,
		Date:           date,
		RelatedGoalID:  editable.RelatedGoalID,
		RelatedAssetID: editable.RelatedAssetID,
		RelatedOpID:    editable.RelatedOpID,
	}
}

type TransactionLinks struct {
	Self            string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                           // The transaction itself
	Goal            string `json:"goal,omitempty" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                        // The linked goal
	Asset           string `json:"asset,omitempty" example:"https://example.com/api/v1/assets/c1a96ae4-80e3-4827-8ed0-c7656f224fee"`                      // The linked asset
	FutureOperation string `json:"futureOperation,omitempty" example:"https://example.com/api/v1/future-operations/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // The linked future operation
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	date := model.Date
	links := TransactionLinks{
		Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
	}

	if model.RelatedGoalID != nil {
		links.Goal = fmt.Sprintf("%s/v1/goals/%s", url, *model.RelatedGoalID)
	}

	if model.RelatedAssetID != nil {
		links.Asset = fmt.Sprintf("%s/v1/assets/%s", url, *model.RelatedAssetID)
	}

	if model.RelatedOpID != nil {
		links.FutureOperation = fmt.Sprintf("%s/v1/future-operations/%s", url, *model.RelatedOpID)
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:           model.Type,
			Amount:         model.Amount,
			Label:          model.Label,
			Date:           &date,
			RelatedGoalID:  model.RelatedGoalID,
			RelatedAssetID: model.RelatedAssetID,
			RelatedOpID:    model.RelatedOpID,
		},
		Links: links,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error   *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data    []TransactionResponse `json:"data"`                                                          // List of created resources
	Balance *decimal.Decimal      `json:"balance" example:"1234.56"`                                     // The balance after all transactions have been recorded
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionDeletion struct {
	Balance  decimal.Decimal `json:"balance" example:"1234.56"` // The balance after the transaction has been reversed
	Reverted ledger.Reverted `json:"reverted" example:"goal"`   // The kind of linked resource whose status has been restored, empty if none
}

type TransactionDeleteResponse struct {
	Error *string              `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Data  *TransactionDeletion `json:"data"`                                                        // The result of the deletion
}

type TransactionQueryFilter struct {
	Type              string       `form:"type"`                                            // Direction of the money flow
	Label             string       `form:"label"`                                           // Glob pattern for the label
	GoalID            hf_uuid.UUID `form:"goal"`                                            // ID of the linked goal
	AssetID           hf_uuid.UUID `form:"asset"`                                           // ID of the linked asset
	FutureOperationID hf_uuid.UUID `form:"futureOperation"`                                 // ID of the linked future operation
	FromDate          time.Time    `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // From this date
	UntilDate         time.Time    `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Until this date
	Offset            uint         `form:"offset"`                                          // The offset of the first transaction returned. Defaults to 0.
	Limit             int          `form:"limit"`                                           // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) filter(limit int) ledger.TransactionFilter {
	return ledger.TransactionFilter{
		Type:      models.TransactionType(f.Type),
		Label:     f.Label,
		GoalID:    f.GoalID.Ptr(),
		AssetID:   f.AssetID.Ptr(),
		OpID:      f.FutureOperationID.Ptr(),
		FromDate:  f.FromDate,
		UntilDate: f.UntilDate,
		Offset:    int(f.Offset),
		Limit:     limit,
	}
}
