package v1

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
)

type ImportLinks struct {
	Legacy string `json:"legacy" example:"https://example.com/api/v1/import/legacy"` // URL of the endpoint importing the data of the browser version
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import endpoints
}

type LegacyImport struct {
	Transactions     int `json:"transactions" example:"128"`   // Number of imported transactions
	Goals            int `json:"goals" example:"3"`            // Number of imported goals
	Assets           int `json:"assets" example:"2"`           // Number of imported assets
	FutureOperations int `json:"futureOperations" example:"5"` // Number of imported future operations
}

type LegacyImportResponse struct {
	Error *string       `json:"error" example:"invalid data: the legacy data could not be parsed"` // The error, if any occurred
	Data  *LegacyImport `json:"data"`                                                              // Number of imported resources
}

func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsImport)
		r.GET("", co.GetImport)
	}
	{
		r.OPTIONS("/legacy", co.OptionsImportLegacy)
		r.POST("/legacy", co.ImportLegacy)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Import links
// @Description	Returns the link list for the import endpoints
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func (co Controller) GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			Legacy: c.GetString(string(models.DBContextURL)) + "/v1/import/legacy",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/legacy [options]
func (co Controller) OptionsImportLegacy(c *gin.Context) {
	httputil.OptionsPost(c)
}

// legacySource returns the uploaded legacy data. It is either sent as form
// file 'file' or as the request body.
func legacySource(c *gin.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			return nil, errNoLegacyData
		}

		return c.Request.Body, nil
	}

	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoLegacyData
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, ".json") {
		return nil, fmt.Errorf("%w: .json", errWrongFileSuffix)
	}

	return formFile.Open()
}

// @Summary		Import legacy data
// @Description	Replaces all data with the data exported from the browser version of Halal Flow
// @Tags			Import
// @Accept			json
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	LegacyImportResponse
// @Failure		400		{object}	LegacyImportResponse
// @Failure		500		{object}	LegacyImportResponse
// @Param			file	formData	file	false	"File to import"
// @Router			/v1/import/legacy [post]
func (co Controller) ImportLegacy(c *gin.Context) {
	source, err := legacySource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LegacyImportResponse{
			Error: &e,
		})
		return
	}
	defer source.Close()

	data, err := ledger.ParseLegacyData(source)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LegacyImportResponse{
			Error: &e,
		})
		return
	}

	result, err := co.Ledger.ImportLegacy(c.Request.Context(), data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LegacyImportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, LegacyImportResponse{
		Data: &LegacyImport{
			Transactions:     result.Transactions,
			Goals:            result.Goals,
			Assets:           result.Assets,
			FutureOperations: result.FutureOperations,
		},
	})
}
