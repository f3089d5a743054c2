package repository

import (
	"database/sql"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
)

type IBranchRepository interface {
	CreateBranch(branch *model.Branch) error
	GetBranchByID(id int) (*model.Branch, error)
	GetAllBranches() ([]*model.Branch, error)
	ExistsByID(id int) (bool, error)
	UpdateBranch(branch *model.Branch) error
	DeleteBranch(id int) error
}

type BranchRepository struct {
	DB *sql.DB
}

func NewBranchRepository(db *sql.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) CreateBranch(branch *model.Branch) error {
	query := `INSERT INTO branches (zip, city, address) VALUES ($1, $2, $3) RETURNING id`
	err := r.DB.QueryRow(query, branch.Zip, branch.City, branch.Address).Scan(&branch.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create branch query")
		return err
	}
	return nil
}

func (r *BranchRepository) GetBranchByID(id int) (*model.Branch, error) {
	branch := &model.Branch{}
	query := `SELECT id, zip, city, address FROM branches WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&branch.ID, &branch.Zip, &branch.City, &branch.Address)
	if err != nil {
		return nil, err
	}
	return branch, nil
}

func (r *BranchRepository) GetAllBranches() ([]*model.Branch, error) {
	rows, err := r.DB.Query(`SELECT id, zip, city, address FROM branches`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute branches query")
		return nil, err
	}
	defer rows.Close()

	var branches []*model.Branch
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Zip, &b.City, &b.Address); err != nil {
			logger.Log.WithError(err).Error("Failed to scan branch row")
			return nil, err
		}
		branches = append(branches, &b)
	}
	return branches, rows.Err()
}

func (r *BranchRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM branches WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *BranchRepository) UpdateBranch(branch *model.Branch) error {
	query := `UPDATE branches SET zip = $1, city = $2, address = $3 WHERE id = $4`
	_, err := r.DB.Exec(query, branch.Zip, branch.City, branch.Address, branch.ID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update branch query")
		return err
	}
	return nil
}

func (r *BranchRepository) DeleteBranch(id int) error {
	_, err := r.DB.Exec(`DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete branch query")
		return err
	}
	return nil
}
