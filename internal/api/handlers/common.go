package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtranscripciones/backend/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	Detail  string     `json:"detail,omitempty"`
}

// writeError is the single place handler errors become HTTP responses.
// Detail carries the raw upstream error text when there is one, so vendor
// failures reach the caller verbatim. The error is also attached to the gin
// context so the request logger records it.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
			Detail:  utils.Detail(err),
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}
