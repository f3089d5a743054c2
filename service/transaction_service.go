package service

import (
	"time"

	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"
)

// TransactionService owns the append-only transaction audit log. Records are
// created once per successful transfer and are never mutated or deleted.
// Queries cover the most recent ninety days.
type TransactionService struct {
	transactionRepo repository.ITransactionRepository
}

func NewTransactionService(transactionRepo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// CreateTransaction persists a transaction description. A transaction that
// already carries the id of an existing record is a replay and is rejected.
func (s *TransactionService) CreateTransaction(transaction *model.Transaction) (*model.Transaction, error) {
	if transaction.ID != 0 {
		exists, err := s.transactionRepo.ExistsByID(transaction.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrTransactionExists
		}
	}

	if err := s.transactionRepo.CreateTransaction(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) GetAllTransactions() ([]*model.Transaction, error) {
	return s.transactionRepo.GetAllTransactions(ninetyDaysAgo())
}

func (s *TransactionService) GetAllTransactionsFromSourceAccount(sourceAccount string) ([]*model.Transaction, error) {
	return s.transactionRepo.GetTransactionsBySourceAccount(sourceAccount, ninetyDaysAgo())
}

func (s *TransactionService) GetAllTransactionsFromTargetAccount(targetAccount string) ([]*model.Transaction, error) {
	return s.transactionRepo.GetTransactionsByTargetAccount(targetAccount, ninetyDaysAgo())
}

func (s *TransactionService) GetAllTransactionsFromSourceAndTargetAccount(sourceAccount, targetAccount string) ([]*model.Transaction, error) {
	return s.transactionRepo.GetTransactionsBySourceAndTargetAccount(sourceAccount, targetAccount, ninetyDaysAgo())
}

func ninetyDaysAgo() time.Time {
	return time.Now().AddDate(0, 0, -90)
}
