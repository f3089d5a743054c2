package service

import (
	"database/sql"
	"fmt"

	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"
)

type BranchService struct {
	branchRepo repository.IBranchRepository
}

func NewBranchService(branchRepo repository.IBranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

func (s *BranchService) GetAllBranches() ([]*model.Branch, error) {
	return s.branchRepo.GetAllBranches()
}

func (s *BranchService) GetBranch(id int) (*model.Branch, error) {
	branch, err := s.branchRepo.GetBranchByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return branch, nil
}

func (s *BranchService) CreateBranch(branch *model.Branch) (*model.Branch, error) {
	if err := s.branchRepo.CreateBranch(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *BranchService) UpdateBranch(branch *model.Branch) (*model.Branch, error) {
	exists, err := s.branchRepo.ExistsByID(branch.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check branch existence: %w", err)
	}
	if !exists {
		return nil, ErrBranchNotFound
	}

	if err := s.branchRepo.UpdateBranch(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *BranchService) RemoveBranch(id int) error {
	exists, err := s.branchRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("could not check branch existence: %w", err)
	}
	if !exists {
		return ErrBranchNotFound
	}
	return s.branchRepo.DeleteBranch(id)
}
