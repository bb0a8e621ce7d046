package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/halalflow/backend/internal/ledger"
)

func (co Controller) RegisterFutureOperationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsFutureOperations)
		r.GET("", co.GetFutureOperations)
		r.POST("", co.CreateFutureOperations)
	}
	{
		r.OPTIONS("/:id", co.OptionsFutureOperationDetail)
		r.GET("/:id", co.GetFutureOperation)
		r.PUT("/:id", co.UpdateFutureOperation)
		r.DELETE("/:id", co.DeleteFutureOperation)
	}
	{
		r.OPTIONS("/:id/validation", co.OptionsFutureOperationValidation)
		r.GET("/:id/validation", co.GetFutureOperationValidation)
		r.POST("/:id/validation", co.ValidateFutureOperation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FutureOperations
// @Success		204
// @Router			/v1/future-operations [options]
func (co Controller) OptionsFutureOperations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			FutureOperations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/future-operations/{id} [options]
func (co Controller) OptionsFutureOperationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Ledger.FutureOperation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create future operations
// @Description	Creates new future operations
// @Tags			FutureOperations
// @Produce		json
// @Success		201		{object}	FutureOperationCreateResponse
// @Failure		400		{object}	FutureOperationCreateResponse
// @Failure		500		{object}	FutureOperationCreateResponse
// @Param			futureOperations	body		[]FutureOperationEditable	true	"Future operations"
// @Router			/v1/future-operations [post]
func (co Controller) CreateFutureOperations(c *gin.Context) {
	var operations []FutureOperationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &operations)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := FutureOperationCreateResponse{}

	for _, create := range operations {
		operation, err := co.Ledger.UpsertFutureOperation(c.Request.Context(), nil, create.input())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newFutureOperation(c, operation)
		r.Data = append(r.Data, FutureOperationResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get future operations
// @Description	Returns a list of future operations, sorted by date
// @Tags			FutureOperations
// @Produce		json
// @Success		200		{object}	FutureOperationListResponse
// @Failure		400		{object}	FutureOperationListResponse
// @Failure		500		{object}	FutureOperationListResponse
// @Param			received	query		bool	false	"Filter by the received flag"
// @Router			/v1/future-operations [get]
func (co Controller) GetFutureOperations(c *gin.Context) {
	var filter FutureOperationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FutureOperationListResponse{
			Error: &s,
		})
		return
	}

	operations, err := co.Ledger.FutureOperations(c.Request.Context(), ledger.FutureOperationFilter{Received: filter.Received})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FutureOperationListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]FutureOperation, 0, len(operations))
	for _, operation := range operations {
		data = append(data, newFutureOperation(c, operation))
	}

	c.JSON(http.StatusOK, FutureOperationListResponse{Data: data})
}

// @Summary		Get future operation
// @Description	Returns a specific future operation
// @Tags			FutureOperations
// @Produce		json
// @Success		200	{object}	FutureOperationResponse
// @Failure		400	{object}	FutureOperationResponse
// @Failure		404	{object}	FutureOperationResponse
// @Failure		500	{object}	FutureOperationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/future-operations/{id} [get]
func (co Controller) GetFutureOperation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationResponse{
			Error: &e,
		})
		return
	}

	operation, err := co.Ledger.FutureOperation(c.Request.Context(), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFutureOperation(c, operation)
	c.JSON(http.StatusOK, FutureOperationResponse{Data: &apiResource})
}

// @Summary		Create or update future operation
// @Description	Updates the future operation with the ID. If it does not exist, a future operation with this ID is created. The received flag is never changed.
// @Tags			FutureOperations
// @Accept			json
// @Produce		json
// @Success		200		{object}	FutureOperationResponse
// @Failure		400		{object}	FutureOperationResponse
// @Failure		500		{object}	FutureOperationResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			futureOperation	body		FutureOperationEditable	true	"Future operation"
// @Router			/v1/future-operations/{id} [put]
func (co Controller) UpdateFutureOperation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationResponse{
			Error: &e,
		})
		return
	}

	var data FutureOperationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationResponse{
			Error: &e,
		})
		return
	}

	operation, err := co.Ledger.UpsertFutureOperation(c.Request.Context(), &uri.ID.UUID, data.input())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FutureOperationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFutureOperation(c, operation)
	c.JSON(http.StatusOK, FutureOperationResponse{Data: &apiResource})
}

// @Summary		Delete future operation
// @Description	Deletes a future operation. Transactions linked to it are kept.
// @Tags			FutureOperations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/future-operations/{id} [delete]
func (co Controller) DeleteFutureOperation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Ledger.DeleteFutureOperation(c.Request.Context(), uri.ID.UUID)
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
// @Tags			FutureOperations
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/future-operations/{id}/validation [options]
func (co Controller) OptionsFutureOperationValidation(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get future operation validation
// @Description	Returns the proposal for the transaction validating the future operation
// @Tags			FutureOperations
// @Produce		json
// @Success		200	{object}	CompletionResponse
// @Failure		400	{object}	CompletionResponse
// @Failure		404	{object}	CompletionResponse
// @Failure		500	{object}	CompletionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/future-operations/{id}/validation [get]
func (co Controller) GetFutureOperationValidation(c *gin.Context) {
	co.getCompletion(c, ledger.TargetFutureOperation)
}

// @Summary		Validate future operation
// @Description	Records the transaction for the future operation with the amount that was actually received or paid and marks the operation as received
// @Tags			FutureOperations
// @Accept			json
// @Produce		json
// @Success		201			{object}	CompletionConfirmationResponse
// @Failure		400			{object}	CompletionConfirmationResponse
// @Failure		404			{object}	CompletionConfirmationResponse
// @Failure		500			{object}	CompletionConfirmationResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			validation	body		CompletionConfirmation	true	"Final amount"
// @Router			/v1/future-operations/{id}/validation [post]
func (co Controller) ValidateFutureOperation(c *gin.Context) {
	co.confirmCompletion(c, ledger.TargetFutureOperation)
}
