package handlers

import (
	"errors"
	"net/http"

	"athwela/internal/usecase"
	"athwela/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP envelope. The base classes are
// matched last so specific codes win.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPin):
		return pkg.NewDomainErrorSimple("INVALID_PIN_FORMAT", "PIN must be exactly 4 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPatch):
		return pkg.NewDomainErrorSimple("INVALID_PATCH", "Patch contains no updatable fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCollection):
		return pkg.NewDomainErrorSimple("UNKNOWN_COLLECTION", "Unknown collection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyAttempts):
		return pkg.NewDomainErrorSimple("TOO_MANY_ATTEMPTS", "Too many failed PIN attempts, try again later", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("INVALID_PIN", "Invalid PIN", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNeedNotFound):
		return pkg.NewDomainErrorSimple("NEED_NOT_FOUND", "Need not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPledgeNotFound):
		return pkg.NewDomainErrorSimple("PLEDGE_NOT_FOUND", "Pledge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyFulfilled):
		return pkg.NewDomainErrorSimple("ALREADY_FULFILLED", "Need is already fully pledged", http.StatusConflict)
	case errors.Is(err, usecase.ErrNeedClosed):
		return pkg.NewDomainErrorSimple("NEED_CLOSED", "Need has already been received", http.StatusConflict)
	case errors.Is(err, usecase.ErrReopenTooEarly):
		return pkg.NewDomainErrorSimple("REOPEN_TOO_EARLY", "Need was pledged recently and cannot be reopened yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrEventFull):
		return pkg.NewDomainErrorSimple("EVENT_FULL", "Event has no open volunteer slots", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Record changed concurrently, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
