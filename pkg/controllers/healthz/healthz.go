package healthz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/models"
	"gorm.io/gorm"
)

// RegisterRoutes registers the health check for the database.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns an empty response if the database is reachable and an error otherwise
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			httputil.NewError(c, http.StatusInternalServerError, errors.Join(models.ErrGeneral, err))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
