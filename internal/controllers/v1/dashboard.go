package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/snapshot", co.OptionsDashboard)
	r.GET("/snapshot", co.GetSnapshot)
	r.OPTIONS("/summary", co.OptionsDashboard)
	r.GET("/summary", co.GetSummary)
	r.OPTIONS("/projection", co.OptionsDashboard)
	r.GET("/projection", co.GetProjection)
	r.OPTIONS("/history", co.OptionsDashboard)
	r.GET("/history", co.GetHistory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/snapshot [options]
// @Router			/v1/summary [options]
// @Router			/v1/projection [options]
// @Router			/v1/history [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get snapshot
// @Description	Returns the complete state: settings, transactions, goals, assets and future operations
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	SnapshotResponse
// @Failure		500	{object}	SnapshotResponse
// @Router			/v1/snapshot [get]
func (co Controller) GetSnapshot(c *gin.Context) {
	snapshot, err := co.Ledger.Snapshot(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SnapshotResponse{
			Error: &e,
		})
		return
	}

	data := newSnapshot(c, snapshot)
	c.JSON(http.StatusOK, SnapshotResponse{Data: &data})
}

// @Summary		Get summary
// @Description	Returns the dashboard figures
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	summary, err := co.Ledger.Summary(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	data := newSummary(c, summary)
	c.JSON(http.StatusOK, SummaryResponse{Data: &data})
}

// @Summary		Get projection
// @Description	Returns the projected real and potential balance for the twelve months following the current one
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	ProjectionResponse
// @Failure		500	{object}	ProjectionResponse
// @Router			/v1/projection [get]
func (co Controller) GetProjection(c *gin.Context) {
	entries, err := co.Ledger.Projection(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &e,
		})
		return
	}

	data := make([]ProjectionEntry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, ProjectionEntry{
			Month:            entry.Month,
			Name:             entry.Name,
			RealBalance:      entry.RealBalance,
			PotentialBalance: entry.PotentialBalance,
		})
	}

	c.JSON(http.StatusOK, ProjectionResponse{Data: data})
}

// @Summary		Get balance history
// @Description	Returns the balance before every transaction, oldest first. The last point is the current balance.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	HistoryResponse
// @Failure		500	{object}	HistoryResponse
// @Router			/v1/history [get]
func (co Controller) GetHistory(c *gin.Context) {
	points, err := co.Ledger.BalanceHistory(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HistoryResponse{
			Error: &e,
		})
		return
	}

	data := make([]HistoryPoint, 0, len(points))
	for _, point := range points {
		data = append(data, HistoryPoint{
			Date:    point.Date,
			Label:   point.Label,
			Balance: point.Balance,
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: data})
}
