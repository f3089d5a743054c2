package handler

import (
	"encoding/json"
	"net/http"

	"bank-backoffice-api/common"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"
)

type TransactionHandler struct {
	service *service.TransactionService
}

func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// ListTransactions godoc
// @Summary      View transactions from the last 90 days
// @Description  Optionally filtered by source and/or target account number.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        sourceAccount query string false "Source account number"
// @Param        targetAccount query string false "Target account number"
// @Success      200  {array}   model.Transaction
// @Router       /api/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	sourceAccount := r.URL.Query().Get("sourceAccount")
	targetAccount := r.URL.Query().Get("targetAccount")

	var transactions []*model.Transaction
	var err error

	switch {
	case sourceAccount == "" && targetAccount == "":
		transactions, err = h.service.GetAllTransactions()
	case sourceAccount != "" && targetAccount == "":
		transactions, err = h.service.GetAllTransactionsFromSourceAccount(sourceAccount)
	case sourceAccount == "" && targetAccount != "":
		transactions, err = h.service.GetAllTransactionsFromTargetAccount(targetAccount)
	default:
		transactions, err = h.service.GetAllTransactionsFromSourceAndTargetAccount(sourceAccount, targetAccount)
	}
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve transactions", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(transactions)
	return nil
}
