package types

import (
	"net/http"

	appErr "github.com/oceanofgigs/engine/pkg/errors"
)

// FromAppError maps err to its HTTP status and response body. Invalid input
// is reported in the validation shape; other AppErrors carry their message.
func FromAppError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}
	status := appErr.HTTPStatus(err)
	e, ok := appErr.As(err)
	if !ok {
		return status, &ErrorResponse{Message: err.Error()}
	}
	if e.Code == appErr.CodeInvalid {
		return status, &ErrorResponse{Message: ValidationErrorMessage, Errors: e.Message}
	}
	return status, &ErrorResponse{Message: e.Message}
}
