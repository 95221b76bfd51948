package httputil

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses.
type HTTPError struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// NewError aborts the request with the status and the error message.
//
// Server errors are logged with the request ID and the client only
// gets a generic message.
func NewError(c *gin.Context, status int, err error) {
	msg := err.Error()

	if status >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, msg)
		msg = fmt.Sprintf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Success: false,
		Error:   msg,
	})
}

func ErrorInvalidUUID(c *gin.Context) {
	NewError(c, http.StatusBadRequest, ErrInvalidUUID)
}

func ErrorInvalidQueryString(c *gin.Context) {
	NewError(c, http.StatusBadRequest, ErrInvalidQueryString)
}
