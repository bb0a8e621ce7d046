package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
)

func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsSettings)
		r.GET("", co.GetSettings)
		r.PATCH("", co.UpdateSettings)
	}
	{
		r.OPTIONS("/onboarding", co.OptionsOnboarding)
		r.POST("/onboarding", co.Onboard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func (co Controller) OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings, including the current balance
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := co.Ledger.Settings(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := co.Ledger.UpdateSettings(c.Request.Context(), data.update(updateFields))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/onboarding [options]
func (co Controller) OptionsOnboarding(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Onboarding
// @Description	Sets up the profile and the balance. Creates an emergency savings goal when no goals exist.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			onboarding	body		OnboardingEditable	true	"Onboarding"
// @Router			/v1/settings/onboarding [post]
func (co Controller) Onboard(c *gin.Context) {
	var data OnboardingEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := co.Ledger.Onboard(c.Request.Context(), data.onboarding())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &apiResource})
}
