package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bank-backoffice-api/common"
	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListAccounts godoc
// @Summary      View all accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Account
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts, err := h.service.GetAllAccounts()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAccount godoc
// @Summary      Retrieve an account with an ID
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Account ID"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	account, err := h.service.GetAccount(id)
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// CreateAccount godoc
// @Summary      Add a new account
// @Description  Opens an account for an existing client. The account number is generated server side.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.CreateAccountRequest true "Account to open"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"client_id": req.ClientID,
		"currency":  req.Currency,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateAccount(&model.Account{
		ClientID: req.ClientID,
		Currency: req.Currency,
	})
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account with an ID
// @Tags         accounts
// @Security     BearerAuth
// @Param        id path int true "Account ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid account ID in URL path", err)
	}

	if err := h.service.RemoveAccount(id); err != nil {
		return mapServiceError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
