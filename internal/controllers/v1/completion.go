package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Completion is the proposal for the transaction that completes a goal,
// sells an asset or validates a future operation.
type Completion struct {
	Kind            ledger.TargetKind      `json:"kind" example:"goal"`                               // Kind of the resource
	ID              string                 `json:"id" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // ID of the resource
	SuggestedAmount decimal.Decimal        `json:"suggestedAmount" example:"15000"`                   // The planned amount
	Type            models.TransactionType `json:"type" example:"out"`                                // Direction of the transaction that will be recorded
	Label           string                 `json:"label" example:"Achat : Nouvelle voiture"`          // Label of the transaction that will be recorded
}

type CompletionResponse struct {
	Error *string     `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
	Data  *Completion `json:"data"`                                                 // The proposal
}

type CompletionConfirmation struct {
	Amount decimal.Decimal `json:"amount" example:"14250"` // The amount that was actually paid or received
}

type CompletionResult struct {
	Balance     decimal.Decimal `json:"balance" example:"2345.67"` // The balance after the transaction has been recorded
	Transaction Transaction     `json:"transaction"`               // The recorded transaction
}

type CompletionConfirmationResponse struct {
	Error *string           `json:"error" example:"the amount must be larger than zero"` // The error, if any occurred
	Data  *CompletionResult `json:"data"`                                                // The result
}

func (co Controller) getCompletion(c *gin.Context, kind ledger.TargetKind) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompletionResponse{
			Error: &e,
		})
		return
	}

	p, err := co.Ledger.RequestFinalAmount(c.Request.Context(), ledger.Target{Kind: kind, ID: uri.ID.UUID})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompletionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CompletionResponse{
		Data: &Completion{
			Kind:            p.Target.Kind,
			ID:              p.Target.ID.String(),
			SuggestedAmount: p.SuggestedAmount,
			Type:            p.Type,
			Label:           p.Label,
		},
	})
}

func (co Controller) confirmCompletion(c *gin.Context, kind ledger.TargetKind) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompletionConfirmationResponse{
			Error: &e,
		})
		return
	}

	var data CompletionConfirmation
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompletionConfirmationResponse{
			Error: &e,
		})
		return
	}

	result, err := co.Ledger.ConfirmFinalAmount(c.Request.Context(), ledger.Target{Kind: kind, ID: uri.ID.UUID}, data.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CompletionConfirmationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, CompletionConfirmationResponse{
		Data: &CompletionResult{
			Balance:     result.Settings.Balance,
			Transaction: newTransaction(c, result.Transaction),
		},
	})
}
