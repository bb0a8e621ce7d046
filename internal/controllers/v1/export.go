package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
)

type ExportResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported data
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
	Clacks       string                     `json:"clacks"`       // This will always have the value "GNU Terry Pratchett"
}

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
	r.OPTIONS("/csv", co.OptionsExport)
	r.GET("/csv", co.GetExportCSV)
	r.OPTIONS("/xlsx", co.OptionsExport)
	r.GET("/xlsx", co.GetExportXLSX)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
// @Router			/v1/export/csv [options]
// @Router			/v1/export/xlsx [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	export, err := co.Ledger.Export(c.Request.Context(), co.Version)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      export.Version,
		Data:         export.Data,
		CreationTime: export.CreationTime,
		Clacks:       "GNU Terry Pratchett",
	})
}

// @Summary		Export transactions as CSV
// @Description	Exports all transactions, newest first, as semicolon separated CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/csv [get]
func (co Controller) GetExportCSV(c *gin.Context) {
	var b bytes.Buffer
	err := co.Ledger.WriteTransactionsCSV(c.Request.Context(), &b)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="halal-flow-transactions.csv"`)
	c.Data(http.StatusOK, csvContentType, b.Bytes())
}

// @Summary		Export transactions as XLSX
// @Description	Exports all transactions, newest first, as spreadsheet
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/xlsx [get]
func (co Controller) GetExportXLSX(c *gin.Context) {
	var b bytes.Buffer
	err := co.Ledger.WriteTransactionsXLSX(c.Request.Context(), &b)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="halal-flow-transactions.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, b.Bytes())
}
