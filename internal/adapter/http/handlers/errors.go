package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"jobledger/internal/usecase"
	"jobledger/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid job id.", http.StatusBadRequest)
	errInvalidCustomerID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid customer id.", http.StatusBadRequest)
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload.", http.StatusBadRequest)
)

// mapUseCaseError turns a use case failure into its HTTP form. The use case
// message is already safe for display, except for internal failures.
func mapUseCaseError(err error) *pkg.AppError {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	switch ucErr.Kind {
	case usecase.KindValidation:
		return pkg.NewDomainError("VALIDATION_ERROR", ucErr.Message, err, http.StatusBadRequest)
	case usecase.KindNotFound:
		return pkg.NewDomainError("NOT_FOUND", ucErr.Message, err, http.StatusNotFound)
	case usecase.KindState:
		return pkg.NewDomainError("INVALID_STATE", ucErr.Message, err, http.StatusConflict)
	case usecase.KindConflict:
		return pkg.NewDomainError("CONFLICT", ucErr.Message, err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
