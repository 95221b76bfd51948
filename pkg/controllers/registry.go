package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/registry"
)

type Registry struct {
	Categories []registry.Entry `json:"categories"`
	Pockets    []registry.Entry `json:"pockets"`
	Roles      []string         `json:"roles" example:"Husband,Wife,Self"`
}

type RegistryResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    Registry `json:"data"`
}

func (co Controller) RegisterRegistryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetRegistry)
}

// @Summary		Get registry
// @Description	Returns all categories and pockets with their icons and the household roles
// @Tags			Registry
// @Produce		json
// @Success		200	{object}	RegistryResponse
// @Failure		401	{object}	httputil.HTTPError
// @Router			/api/registry [get]
func (co Controller) GetRegistry(c *gin.Context) {
	c.JSON(http.StatusOK, RegistryResponse{
		Success: true,
		Data: Registry{
			Categories: registry.Categories(),
			Pockets:    registry.Pockets(),
			Roles:      registry.Roles(),
		},
	})
}
