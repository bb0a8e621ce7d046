package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/ledger"
)

func (co Controller) RegisterAssetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsAssets)
		r.GET("", co.GetAssets)
		r.POST("", co.CreateAssets)
	}
	{
		r.OPTIONS("/:id", co.OptionsAssetDetail)
		r.GET("/:id", co.GetAsset)
		r.PUT("/:id", co.UpdateAsset)
		r.DELETE("/:id", co.DeleteAsset)
	}
	{
		r.OPTIONS("/:id/sale", co.OptionsAssetSale)
		r.GET("/:id/sale", co.GetAssetSale)
		r.POST("/:id/sale", co.SellAsset)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assets
// @Success		204
// @Router			/v1/assets [options]
func (co Controller) OptionsAssets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assets/{id} [options]
func (co Controller) OptionsAssetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Ledger.Asset(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create assets
// @Description	Creates new assets
// @Tags			Assets
// @Produce		json
// @Success		201		{object}	AssetCreateResponse
// @Failure		400		{object}	AssetCreateResponse
// @Failure		500		{object}	AssetCreateResponse
// @Param			assets	body		[]AssetEditable	true	"Assets"
// @Router			/v1/assets [post]
func (co Controller) CreateAssets(c *gin.Context) {
	var assets []AssetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &assets)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AssetCreateResponse{}

	for _, create := range assets {
		asset, err := co.Ledger.UpsertAsset(c.Request.Context(), nil, create.input())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newAsset(c, asset)
		r.Data = append(r.Data, AssetResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get assets
// @Description	Returns a list of assets, sorted by name
// @Tags			Assets
// @Produce		json
// @Success		200		{object}	AssetListResponse
// @Failure		400		{object}	AssetListResponse
// @Failure		500		{object}	AssetListResponse
// @Param			status	query		string	false	"Filter by status, 'active' or 'sold'"
// @Router			/v1/assets [get]
func (co Controller) GetAssets(c *gin.Context) {
	var filter AssetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AssetListResponse{
			Error: &s,
		})
		return
	}

	assets, err := co.Ledger.Assets(c.Request.Context(), ledger.AssetFilter{Status: filter.Status})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AssetListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Asset, 0, len(assets))
	for _, asset := range assets {
		data = append(data, newAsset(c, asset))
	}

	c.JSON(http.StatusOK, AssetListResponse{Data: data})
}

// @Summary		Get asset
// @Description	Returns a specific asset
// @Tags			Assets
// @Produce		json
// @Success		200	{object}	AssetResponse
// @Failure		400	{object}	AssetResponse
// @Failure		404	{object}	AssetResponse
// @Failure		500	{object}	AssetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assets/{id} [get]
func (co Controller) GetAsset(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetResponse{
			Error: &e,
		})
		return
	}

	asset, err := co.Ledger.Asset(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAsset(c, asset)
	c.JSON(http.StatusOK, AssetResponse{Data: &apiResource})
}

// @Summary		Create or update asset
// @Description	Updates the asset with the ID. If it does not exist, an asset with this ID is created. The status is never changed.
// @Tags			Assets
// @Accept			json
// @Produce		json
// @Success		200		{object}	AssetResponse
// @Failure		400		{object}	AssetResponse
// @Failure		500		{object}	AssetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			asset	body		AssetEditable	true	"Asset"
// @Router			/v1/assets/{id} [put]
func (co Controller) UpdateAsset(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetResponse{
			Error: &e,
		})
		return
	}

	var data AssetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetResponse{
			Error: &e,
		})
		return
	}

	asset, err := co.Ledger.UpsertAsset(c.Request.Context(), &uri.ID.UUID, data.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AssetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAsset(c, asset)
	c.JSON(http.StatusOK, AssetResponse{Data: &apiResource})
}

// @Summary		Delete asset
// @Description	Deletes an asset. Transactions linked to it are kept.
// @Tags			Assets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assets/{id} [delete]
func (co Controller) DeleteAsset(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Ledger.DeleteAsset(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Assets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assets/{id}/sale [options]
func (co Controller) OptionsAssetSale(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get asset sale
// @Description	Returns the proposal for the sale of the asset
// @Tags			Assets
// @Produce		json
// @Success		200	{object}	CompletionResponse
// @Failure		400	{object}	CompletionResponse
// @Failure		404	{object}	CompletionResponse
// @Failure		500	{object}	CompletionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/assets/{id}/sale [get]
func (co Controller) GetAssetSale(c *gin.Context) {
	co.getCompletion(c, ledger.TargetAsset)
}

// @Summary		Sell asset
// @Description	Records the sale of the asset with the amount that was actually received and marks the asset as sold
// @Tags			Assets
// @Accept			json
// @Produce		json
// @Success		201			{object}	CompletionConfirmationResponse
// @Failure		400			{object}	CompletionConfirmationResponse
// @Failure		404			{object}	CompletionConfirmationResponse
// @Failure		500			{object}	CompletionConfirmationResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sale		body		CompletionConfirmation	true	"Final amount"
// @Router			/v1/assets/{id}/sale [post]
func (co Controller) SellAsset(c *gin.Context) {
	co.confirmCompletion(c, ledger.TargetAsset)
}
