package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bank-backoffice-api/common"
	"bank-backoffice-api/model"
	"bank-backoffice-api/service"
)

type EmployeeHandler struct {
	service *service.EmployeeService
}

func NewEmployeeHandler(service *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// ListEmployees godoc
// @Summary      View all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) *common.AppError {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve employees", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(employees)
	return nil
}

// GetEmployee godoc
// @Summary      Retrieve an employee with an ID
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Employee ID"
// @Success      200  {object}  model.Employee
// @Failure      404  {object}  common.AppError
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid employee ID in URL path", err)
	}

	employee, err := h.service.GetEmployee(id)
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(employee)
	return nil
}

// CreateEmployee godoc
// @Summary      Add a new employee
// @Description  The employee must belong to an existing branch.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employee body model.CreateEmployeeRequest true "Employee to create"
// @Success      201  {object}  model.Employee
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Branch not found"
// @Router       /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateEmployeeRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	employee, err := h.service.CreateEmployee(&model.Employee{
		Name:     req.Name,
		BranchID: req.BranchID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(employee)
	return nil
}

// DeleteEmployee godoc
// @Summary      Delete an employee with an ID
// @Tags         employees
// @Security     BearerAuth
// @Param        id path int true "Employee ID"
// @Success      204  "No Content"
// @Failure      404  {object}  common.AppError
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid employee ID in URL path", err)
	}

	if err := h.service.RemoveEmployee(id); err != nil {
		return mapServiceError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
