package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Settings         string `json:"settings" example:"https://example.com/api/v1/settings"`                  // URL of the settings endpoint
	Settlement       string `json:"settlement" example:"https://example.com/api/v1/settlement"`              // URL of the monthly settlement endpoint
	Snapshot         string `json:"snapshot" example:"https://example.com/api/v1/snapshot"`                  // URL of the snapshot endpoint
	Summary          string `json:"summary" example:"https://example.com/api/v1/summary"`                    // URL of the dashboard summary endpoint
	Projection       string `json:"projection" example:"https://example.com/api/v1/projection"`              // URL of the balance projection endpoint
	History          string `json:"history" example:"https://example.com/api/v1/history"`                    // URL of the balance history endpoint
	Transactions     string `json:"transactions" example:"https://example.com/api/v1/transactions"`          // URL of the transaction list endpoint
	Goals            string `json:"goals" example:"https://example.com/api/v1/goals"`                        // URL of the goal list endpoint
	Assets           string `json:"assets" example:"https://example.com/api/v1/assets"`                      // URL of the asset list endpoint
	FutureOperations string `json:"futureOperations" example:"https://example.com/api/v1/future-operations"` // URL of the future operation list endpoint
	Export           string `json:"export" example:"https://example.com/api/v1/export"`                      // URL of the export endpoint
	Import           string `json:"import" example:"https://example.com/api/v1/import"`                      // URL of the import list endpoint
}

// RegisterRoutes registers all v1 routes on the group
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.Options)
		r.GET("", co.Get)
		r.DELETE("", co.Cleanup)
	}

	co.RegisterDashboardRoutes(r)
	co.RegisterSettingsRoutes(r.Group("/settings"))
	co.RegisterSettlementRoutes(r.Group("/settlement"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterAssetRoutes(r.Group("/assets"))
	co.RegisterFutureOperationRoutes(r.Group("/future-operations"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterImportRoutes(r.Group("/import"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Settings:         url + "/settings",
			Settlement:       url + "/settlement",
			Snapshot:         url + "/snapshot",
			Summary:          url + "/summary",
			Projection:       url + "/projection",
			History:          url + "/history",
			Transactions:     url + "/transactions",
			Goals:            url + "/goals",
			Assets:           url + "/assets",
			FutureOperations: url + "/future-operations",
			Export:           url + "/export",
			Import:           url + "/import",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources and resets the settings
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = co.Ledger.Reset(c.Request.Context())
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
