package response

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/awakentax/crypto-tax-go/pkg/cryptotax"
)

const (
	CodeBadRequest = 400
	CodeBadGateway = 502
)

// Error holds an error code, message and error itself
type Error struct {
	Code     int
	Status   int // http status to render, 400 when zero
	Message  interface{}
	Internal error
}

func NewError(code int, message interface{}) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) SetInternal(err error) *Error {
	e.Internal = err
	return e
}

func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadRequest
	}
	return e.Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %v", e.Code, e.Message)
}

// FromLinkError classifies a failure of a link creation call. Whatever the
// class, the message is the error text shown to the user.
func FromLinkError(err error) *Error {
	var (
		apiErr        *cryptotax.APIError
		validationErr *cryptotax.ValidationError
		configErr     *cryptotax.ConfigError
		respErr       *Error
	)
	switch {
	case errors.As(err, &respErr):
		return respErr
	case errors.As(err, &validationErr), errors.As(err, &configErr):
		return NewError(CodeBadRequest, err.Error()).SetInternal(err)
	case errors.As(err, &apiErr):
		return NewError(apiErr.StatusCode, err.Error()).SetInternal(err).WithStatus(http.StatusBadGateway)
	default: // transport and decode failures
		return NewError(CodeBadGateway, err.Error()).SetInternal(err).WithStatus(http.StatusBadGateway)
	}
}
