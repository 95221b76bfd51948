package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/httputil"
)

// Version of the application
//
// This is set at build time with -ldflags "-X main.version=...".
var appVersion = "0.0.0"

type Response struct {
	Success bool   `json:"success" example:"true"`
	Data    Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version string `json:"version" example:"1.2.0"` // the running version of the application
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	appVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Application version
// @Description	Returns the software version of the running server
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: Object{
			Version: appVersion,
		},
	})
}
