package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusSuccess is the generic marker mutating endpoints return instead
// of the written record.
const statusSuccess = "success"

// envelope is the uniform wrapper every endpoint answers with.
type envelope struct {
	Error    bool        `json:"error"`
	Response interface{} `json:"response"`
}

func newSuccessResponse(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, envelope{
		Error:    false,
		Response: payload,
	})
}

// newErrorResponse translates a typed error into the matching status and
// error envelope. This is the single place error kinds become HTTP.
func newErrorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindMalformed, domain.KindInvalidArgument:
		status = http.StatusBadRequest
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindStorage:
		message = "there was a problem processing the request, please try again later"
	default:
		message = "an unexpected error occurred, please try again later"
	}

	c.AbortWithStatusJSON(status, envelope{
		Error:    true,
		Response: message,
	})
}

// bindError classifies a ShouldBindJSON failure: field-level binding
// failures list the offending fields, everything else is an unreadable
// body.
func bindError(err error) error {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		parts := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			parts = append(parts, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
		return domain.ValidationFailed(strings.Join(parts, ", "))
	}
	return domain.Malformed("the request could not be processed")
}
