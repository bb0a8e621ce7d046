package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/ledger"
	"github.com/halalflow/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AssetEditable struct {
	Name     string          `json:"name" example:"Appartement Lyon"`                // Name of the asset
	Value    decimal.Decimal `json:"value" example:"180000" minimum:"0" default:"0"` // Estimated value of the asset
	Category string          `json:"category" example:"Immobilier" default:"Autre"`  // Category of the asset
}

func (editable AssetEditable) input() ledger.AssetInput {
	return ledger.AssetInput{
		Name:     editable.Name,
		Value:    editable.Value,
		Category: editable.Category,
	}
}

type AssetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/assets/c1a96ae4-80e3-4827-8ed0-c7656f224fee"`                     // The asset itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?asset=c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // Transactions selling the asset
	Sale         string `json:"sale" example:"https://example.com/api/v1/assets/c1a96ae4-80e3-4827-8ed0-c7656f224fee/sale"`                // Endpoint to sell the asset
}

type Asset struct {
	models.DefaultModel
	AssetEditable
	Status models.AssetStatus `json:"status" example:"active"` // The asset is sold when the sale has been recorded
	Links  AssetLinks         `json:"links"`
}

// newAsset returns the API v1 representation of the resource
func newAsset(c *gin.Context, model models.Asset) Asset {
	url := c.GetString(string(models.DBContextURL))

	return Asset{
		DefaultModel: model.DefaultModel,
		AssetEditable: AssetEditable{
			Name:     model.Name,
			Value:    model.Value,
			Category: model.Category,
		},
		Status: model.Status,
		Links: AssetLinks{
			Self:         fmt.Sprintf("%s/v1/assets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?asset=%s", url, model.ID),
			Sale:         fmt.Sprintf("%s/v1/assets/%s/sale", url, model.ID),
		},
	}
}

type AssetListResponse struct {
	Data  []Asset `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AssetCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AssetResponse `json:"data"`                                                          // List of created resources
}

func (t *AssetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, AssetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AssetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Asset  `json:"data"`                                                          // The resource
}

type AssetQueryFilter struct {
	Status models.AssetStatus `form:"status"` // Status of the asset
}
