package repository

import (
	"database/sql"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
)

type IEmployeeRepository interface {
	CreateEmployee(employee *model.Employee) error
	GetEmployeeByID(id int) (*model.Employee, error)
	GetAllEmployees() ([]*model.Employee, error)
	ExistsByID(id int) (bool, error)
	UpdateEmployee(employee *model.Employee) error
	DeleteEmployee(id int) error
}

type EmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) CreateEmployee(employee *model.Employee) error {
	query := `INSERT INTO employees (name, branch_id) VALUES ($1, $2) RETURNING id`
	err := r.DB.QueryRow(query, employee.Name, employee.BranchID).Scan(&employee.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create employee query")
		return err
	}
	return nil
}

func (r *EmployeeRepository) GetEmployeeByID(id int) (*model.Employee, error) {
	employee := &model.Employee{}
	query := `SELECT id, name, branch_id FROM employees WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&employee.ID, &employee.Name, &employee.BranchID)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *EmployeeRepository) GetAllEmployees() ([]*model.Employee, error) {
	rows, err := r.DB.Query(`SELECT id, name, branch_id FROM employees`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute employees query")
		return nil, err
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.BranchID); err != nil {
			logger.Log.WithError(err).Error("Failed to scan employee row")
			return nil, err
		}
		employees = append(employees, &e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *EmployeeRepository) UpdateEmployee(employee *model.Employee) error {
	query := `UPDATE employees SET name = $1, branch_id = $2 WHERE id = $3`
	_, err := r.DB.Exec(query, employee.Name, employee.BranchID, employee.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update employee query")
		return err
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(id int) error {
	_, err := r.DB.Exec(`DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete employee query")
		return err
	}
	return nil
}
