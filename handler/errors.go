package handler

import (
	"errors"
	"net/http"

	"bank-backoffice-api/common"
	"bank-backoffice-api/exchange"
	"bank-backoffice-api/service"
)

// mapServiceError translates business failures into HTTP error responses.
func mapServiceError(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrBranchNotFound),
		errors.Is(err, service.ErrEmployeeNotFound):
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrAccountExists),
		errors.Is(err, service.ErrClientExists),
		errors.Is(err, service.ErrTransactionExists):
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	case errors.Is(err, service.ErrSameAccountTransfer),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidBirthDate),
		errors.Is(err, exchange.ErrUnknownCurrency):
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, exchange.ErrFeedUnavailable):
		return common.NewAppError(http.StatusServiceUnavailable, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}
}
