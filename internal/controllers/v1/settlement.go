package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

type SettlementStatus struct {
	Due             bool            `json:"due" example:"true"`                             // If the monthly settlement is due
	Balance         decimal.Decimal `json:"balance" example:"2345.67"`                      // The current balance
	LastBudgetCheck *time.Time      `json:"lastBudgetCheck" example:"2024-05-02T08:12:00Z"` // Time of the last monthly settlement
}

type SettlementStatusResponse struct {
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *SettlementStatus `json:"data"`                                                                // The settlement status
}

type SettlementConfirmation struct {
	ReportedBalance *decimal.Decimal `json:"reportedBalance" example:"2395.67"` // The balance the user actually has
}

type Settlement struct {
	Adjusted    bool            `json:"adjusted" example:"true"`   // If an adjustment transaction has been recorded
	Difference  decimal.Decimal `json:"difference" example:"50"`   // Reported balance minus the balance before the settlement
	Balance     decimal.Decimal `json:"balance" example:"2395.67"` // The balance after the settlement
	Transaction *Transaction    `json:"transaction"`               // The adjustment transaction, if one has been recorded
}

type SettlementResponse struct {
	Error *string     `json:"error" example:"the reportedBalance must be set"` // The error, if any occurred
	Data  *Settlement `json:"data"`                                            // The result of the settlement
}

func (co Controller) RegisterSettlementRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSettlement)
	r.GET("", co.GetSettlement)
	r.POST("", co.ConfirmSettlement)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settlement
// @Success		204
// @Router			/v1/settlement [options]
func (co Controller) OptionsSettlement(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get settlement status
// @Description	Returns if the monthly settlement is due. It is due when the last settlement happened in an earlier month.
// @Tags			Settlement
// @Produce		json
// @Success		200	{object}	SettlementStatusResponse
// @Failure		500	{object}	SettlementStatusResponse
// @Router			/v1/settlement [get]
func (co Controller) GetSettlement(c *gin.Context) {
	settings, err := co.Ledger.Settings(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementStatusResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettlementStatusResponse{
		Data: &SettlementStatus{
			Due:             ledger.IsSettlementDue(settings, co.Ledger.Now()),
			Balance:         settings.Balance,
			LastBudgetCheck: settings.LastBudgetCheck,
		},
	})
}

// @Summary		Confirm settlement
// @Description	Reconciles the balance with the balance the user reports. Differences of more than one cent are recorded as adjustment transaction.
// @Tags			Settlement
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettlementResponse
// @Failure		400			{object}	SettlementResponse
// @Failure		500			{object}	SettlementResponse
// @Param			settlement	body		SettlementConfirmation	true	"Reported balance"
// @Router			/v1/settlement [post]
func (co Controller) ConfirmSettlement(c *gin.Context) {
	var data SettlementConfirmation
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &e,
		})
		return
	}

	if data.ReportedBalance == nil {
		e := errReportedBalanceMissing.Error()
		c.JSON(http.StatusBadRequest, SettlementResponse{
			Error: &e,
		})
		return
	}

	result, err := co.Ledger.ConfirmSettlement(c.Request.Context(), *data.ReportedBalance)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettlementResponse{
			Error: &e,
		})
		return
	}

	settlement := Settlement{
		Adjusted:   result.Adjusted,
		Difference: result.Difference,
		Balance:    result.Settings.Balance,
	}

	if result.Transaction != nil {
		transaction := newTransaction(c, *result.Transaction)
		settlement.Transaction = &transaction
	}

	c.JSON(http.StatusOK, SettlementResponse{Data: &settlement})
}
