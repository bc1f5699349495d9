package http

import (
	"errors"
	"net/http"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// successEnvelope is the uniform body of every successful response.
type successEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the uniform body of every failed response.
type errorEnvelope struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func respondSuccess(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, successEnvelope{Status: "success", Message: message, Data: data})
}

func respondError(c echo.Context, code int, detail string) error {
	return c.JSON(code, errorEnvelope{Status: "error", Detail: detail})
}

// respondDomainError maps application and domain errors onto HTTP status
// codes. Losing the accept race is reported as not found so losers cannot
// distinguish a taken delivery from a withdrawn one; every other concurrent
// modification is a conflict. Duplicate feedback is a precondition failure
// on the request itself and maps to bad request alongside validation.
func respondDomainError(c echo.Context, err error) error {
	var (
		notFoundErr      *errs.ObjectNotFoundError
		alreadyExistsErr *errs.ObjectAlreadyExistsError
		forbiddenErr     *errs.AccessForbiddenError
		transitionErr    *delivery.IllegalTransitionError
	)

	switch {
	case errors.Is(err, commands.ErrDeliveryNoLongerAvailable):
		return respondError(c, http.StatusNotFound, "delivery is no longer available")
	case errors.Is(err, commands.ErrDeliveryModifiedConcurrently):
		return respondError(c, http.StatusConflict, "delivery was modified concurrently, retry")
	case errors.As(err, &notFoundErr):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &alreadyExistsErr):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &forbiddenErr):
		return respondError(c, http.StatusForbidden, err.Error())
	case errors.As(err, &transitionErr):
		return respondError(c, http.StatusBadRequest, err.Error())
	case isValidationError(err):
		return respondError(c, http.StatusBadRequest, err.Error())
	default:
		return respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func isValidationError(err error) bool {
	var (
		requiredErr   *errs.ValueIsRequiredError
		invalidErr    *errs.ValueIsInvalidError
		outOfRangeErr *errs.ValueIsOutOfRangeError
	)
	return errors.As(err, &requiredErr) ||
		errors.As(err, &invalidErr) ||
		errors.As(err, &outOfRangeErr)
}
