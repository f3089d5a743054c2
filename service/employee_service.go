package service

import (
	"database/sql"
	"fmt"

	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"
)

// EmployeeService handles employee records. Every employee belongs to an
// existing branch.
type EmployeeService struct {
	employeeRepo repository.IEmployeeRepository
	branchRepo   repository.IBranchRepository
}

func NewEmployeeService(employeeRepo repository.IEmployeeRepository, branchRepo repository.IBranchRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		branchRepo:   branchRepo,
	}
}

func (s *EmployeeService) GetAllEmployees() ([]*model.Employee, error) {
	return s.employeeRepo.GetAllEmployees()
}

func (s *EmployeeService) GetEmployee(id int) (*model.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) CreateEmployee(employee *model.Employee) (*model.Employee, error) {
	branchExists, err := s.branchRepo.ExistsByID(employee.BranchID)
	if err != nil {
		return nil, fmt.Errorf("could not check branch existence: %w", err)
	}
	if !branchExists {
		return nil, ErrBranchNotFound
	}

	if err := s.employeeRepo.CreateEmployee(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(employee *model.Employee) (*model.Employee, error) {
	exists, err := s.employeeRepo.ExistsByID(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check employee existence: %w", err)
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	branchExists, err := s.branchRepo.ExistsByID(employee.BranchID)
	if err != nil {
		return nil, fmt.Errorf("could not check branch existence: %w", err)
	}
	if !branchExists {
		return nil, ErrBranchNotFound
	}

	if err := s.employeeRepo.UpdateEmployee(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) RemoveEmployee(id int) error {
	exists, err := s.employeeRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("could not check employee existence: %w", err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}
	return s.employeeRepo.DeleteEmployee(id)
}
