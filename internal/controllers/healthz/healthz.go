package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halalflow/backend/internal/httputil"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// Options returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

type Response struct {
	Error *string `json:"error" example:"The database cannot be accessed"`
}

// Get returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		200	{object}	Response
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Err(err).Msg("healthz")
			e := "the database cannot be accessed"
			c.JSON(http.StatusInternalServerError, Response{Error: &e})
			return
		}

		c.JSON(http.StatusOK, Response{})
	}
}
