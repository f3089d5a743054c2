package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bank-backoffice-api/common"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"
)

type BranchHandler struct {
	service *service.BranchService
}

func NewBranchHandler(service *service.BranchService) *BranchHandler {
	return &BranchHandler{service: service}
}

// ListBranches godoc
// @Summary      View all branches
// @Tags         branches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.Branch
// @Router       /api/branches [get]
func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) *common.AppError {
	branches, err := h.service.GetAllBranches()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve branches", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(branches)
	return nil
}

// GetBranch godoc
// @Summary      Retrieve a branch with an ID
// @Tags         branches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Branch ID"
// @Success      200  {object}  model.Branch
// @Failure      404  {object}  common.AppError
// @Router       /api/branches/{id} [get]
func (h *BranchHandler) GetBranch(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid branch ID in URL path", err)
	}

	branch, err := h.service.GetBranch(id)
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(branch)
	return nil
}

// CreateBranch godoc
// @Summary      Add a new branch
// @Tags         branches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        branch body model.CreateBranchRequest true "Branch to create"
// @Success      201  {object}  model.Branch
// @Failure      400  {object}  common.AppError
// @Router       /api/branches [post]
func (h *BranchHandler) CreateBranch(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateBranchRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	branch, err := h.service.CreateBranch(&model.Branch{
		Zip:     req.Zip,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(branch)
	return nil
}

// DeleteBranch godoc
// @Summary      Delete a branch with an ID
// @Tags         branches
// @Security     BearerAuth
// @Param        id path int true "Branch ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid branch ID in URL path", err)
	}

	if err := h.service.RemoveBranch(id); err != nil {
		return mapServiceError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
