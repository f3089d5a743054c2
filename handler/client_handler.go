package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bank-backoffice-api/common"
	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"
)

type ClientHandler struct {
	service *service.ClientService
}

func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// ListClients godoc
// @Summary      View all clients or search by client identifier
// @Description  Search clients by their generated identifier using the 'q' query parameter.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Client identifier token"
// @Success      200  {array}  model.Client
// @Router       /api/clients [get]
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) *common.AppError {
	query := r.URL.Query().Get("q")

	var clients []*model.Client
	var err error
	if query != "" {
		clients, err = h.service.FindByClientID(query)
	} else {
		clients, err = h.service.GetAllClients()
	}
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve clients", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(clients)
	return nil
}

// GetClient godoc
// @Summary      Retrieve a client with an ID
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200  {object}  model.Client
// @Failure      404  {object}  common.AppError
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid client ID in URL path", err)
	}

	client, err := h.service.GetClient(id)
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(client)
	return nil
}

// CreateClient godoc
// @Summary      Add a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        client body model.CreateClientRequest true "Client to register"
// @Success      201  {object}  model.Client
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError
// @Router       /api/clients [post]
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateClientRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid birth date format", err)
	}

	logger.Log.WithField("name", req.Name).Info("Create client request received")

	client, err := h.service.CreateClient(&model.Client{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: birthDate,
		Pin:       req.Pin,
	})
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(client)
	return nil
}

// DeleteClient godoc
// @Summary      Delete a client with an ID
// @Description  Also removes every account owned by the client.
// @Tags         clients
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid client ID in URL path", err)
	}

	if err := h.service.RemoveClient(r.Context(), id); err != nil {
		return mapServiceError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
