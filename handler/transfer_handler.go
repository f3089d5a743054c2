package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bank-backoffice-api/common"
	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransferHandler exposes the two transfer operations. It talks to the
// coordinator, never to the transfer engine directly, so every successful
// transfer is recorded and notified exactly once.
type TransferHandler struct {
	coordinator *service.TransferCoordinator
}

func NewTransferHandler(coordinator *service.TransferCoordinator) *TransferHandler {
	return &TransferHandler{coordinator: coordinator}
}

// CreateInternalTransfer godoc
// @Summary      Transfer money between two accounts internally
// @Description  Debits the source account by the converted amount and credits the target account. Amount is denominated in the target account's currency.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Source account ID"
// @Param        transfer body model.InternalTransferRequest true "Transfer details"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Insufficient funds, same account, invalid amount"
// @Failure      404  {object}  common.AppError "Source or target account not found"
// @Failure      503  {object}  common.AppError "Exchange rate feed unavailable"
// @Router       /api/accounts/{id}/internal-transaction [post]
func (h *TransferHandler) CreateInternalTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	sourceAccountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	var req model.InternalTransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": sourceAccountID,
		"target_account":    req.TargetAccountNumber,
		"amount":            req.Amount,
	})
	log.Info("Internal transfer request received")

	transaction, err := h.coordinator.TransferWithinBank(r.Context(), sourceAccountID,
		req.TargetAccountNumber, decimal.NewFromFloat(req.Amount))
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}

// CreateExternalTransfer godoc
// @Summary      Transfer money to an account at another bank
// @Description  Debits the source account in favor of an IBAN outside this institution. Only the source leg touches the local ledger.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Source account ID"
// @Param        transfer body model.ExternalTransferRequest true "Transfer details"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError "Insufficient funds, invalid amount or IBAN"
// @Failure      404  {object}  common.AppError "Source account not found"
// @Failure      503  {object}  common.AppError "Exchange rate feed unavailable"
// @Router       /api/accounts/{id}/external-transaction [post]
func (h *TransferHandler) CreateExternalTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	sourceAccountID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	var req model.ExternalTransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": sourceAccountID,
		"target_iban":       req.TargetAccountIban,
		"amount":            req.Amount,
		"currency":          req.Currency,
	})
	log.Info("External transfer request received")

	transaction, err := h.coordinator.TransferToAnotherBank(r.Context(), sourceAccountID,
		req.TargetAccountIban, decimal.NewFromFloat(req.Amount), req.Currency)
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
	return nil
}
