package controllers

import (
	"github.com/gin-gonic/gin"
	ez_uuid "github.com/moneyjournal/backend/internal/uuid"
	"github.com/moneyjournal/backend/pkg/httputil"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

// idFromURI returns the ID from the path. It writes the error
// response when the ID is not a UUID.
func idFromURI(c *gin.Context) (ez_uuid.UUID, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.ErrorInvalidUUID(c)
		return ez_uuid.Nil, false
	}

	return uri.ID, true
}
