package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

// IsJSON reports whether the request body is JSON.
func IsJSON(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEJSON
}

// WantsJSON reports whether the client expects a JSON response. Browsers
// posting forms get redirects instead.
func WantsJSON(c *gin.Context) bool {
	return IsJSON(c) || strings.Contains(c.GetHeader("Accept"), binding.MIMEJSON)
}

// BindData binds the data from the request to the struct passed in the interface.
// JSON and form bodies are supported.
func BindData(c *gin.Context, data any) error {
	var err error
	if IsJSON(c) {
		err = c.ShouldBindJSON(data)
	} else {
		err = c.ShouldBindWith(data, binding.Form)
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
