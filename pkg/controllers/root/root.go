package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/httputil"
)

// ContextURL is the context key holding the base URL of the server.
const ContextURL = "baseURL"

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/docs/index.html"`            // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/healthz"`                 // Healthz endpoint
	Version      string `json:"version" example:"https://example.com/version"`                 // Endpoint returning the version of the backend
	Metrics      string `json:"metrics" example:"https://example.com/metrics"`                 // Endpoint returning Prometheus metrics
	Transactions string `json:"transactions" example:"https://example.com/api/transactions"`   // List endpoint for transactions
	Budget       string `json:"budget" example:"https://example.com/api/budget"`               // Budget overview of a month
	Dashboard    string `json:"dashboard" example:"https://example.com/api/dashboard/summary"` // Dashboard summary of a month
	Registry     string `json:"registry" example:"https://example.com/api/registry"`           // Categories, pockets and roles
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/api [get]
func Get(c *gin.Context) {
	url := c.GetString(ContextURL)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:         url + "/docs/index.html",
			Healthz:      url + "/healthz",
			Version:      url + "/version",
			Metrics:      url + "/metrics",
			Transactions: url + "/api/transactions",
			Budget:       url + "/api/budget",
			Dashboard:    url + "/api/dashboard/summary",
			Registry:     url + "/api/registry",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
