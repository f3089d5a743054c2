package service

import (
	"database/sql"
	"fmt"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"

	"github.com/sirupsen/logrus"
)

// AccountService is the system of record for accounts. It is the only writer
// of account balances and account numbers.
type AccountService struct {
	accountRepo repository.IAccountRepository
}

func NewAccountService(accountRepo repository.IAccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return s.accountRepo.GetAllAccounts()
}

func (s *AccountService) GetAccount(id int) (*model.Account, error) {
	account, err := s.accountRepo.GetAccountByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) GetAccountByNumber(number string) (*model.Account, error) {
	account, err := s.accountRepo.GetAccountByNumber(number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// CreateAccount stores a new account under a freshly generated account
// number. If the generated number is already taken it keeps regenerating
// until a free one is found; no lock is held between attempts.
func (s *AccountService) CreateAccount(account *model.Account) (*model.Account, error) {
	if account.ID != 0 {
		exists, err := s.accountRepo.ExistsByID(account.ID)
		if err != nil {
			return nil, fmt.Errorf("could not check account existence: %w", err)
		}
		if exists {
			return nil, ErrAccountExists
		}
	}

	account.AccountNumber = model.GenerateAccountNumber()
	for {
		taken, err := s.accountRepo.ExistsByAccountNumber(account.AccountNumber)
		if err != nil {
			return nil, fmt.Errorf("could not check account number uniqueness: %w", err)
		}
		if !taken {
			break
		}
		account.AccountNumber = model.GenerateAccountNumber()
	}

	if err := s.accountRepo.CreateAccount(account); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"account_number": account.AccountNumber,
		"client_id":      account.ClientID,
	}).Info("Account created")
	return account, nil
}

func (s *AccountService) UpdateAccount(account *model.Account) (*model.Account, error) {
	exists, err := s.accountRepo.ExistsByID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check account existence: %w", err)
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	if err := s.accountRepo.UpdateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) RemoveAccount(id int) error {
	exists, err := s.accountRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("could not check account existence: %w", err)
	}
	if !exists {
		return ErrAccountNotFound
	}
	return s.accountRepo.DeleteAccount(id)
}
