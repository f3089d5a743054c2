package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ExchangeRateSource supplies the conversion rate between two currencies:
// one unit of `from` equals Rate(from, to) units of `to`.
type ExchangeRateSource interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// TransferService executes money transfers. It mutates balances and returns
// an unpersisted transaction description; recording and notification are the
// coordinator's job, so a direct call produces no durable side effects beyond
// the ledger itself.
type TransferService struct {
	db            *sql.DB
	accountRepo   repository.IAccountRepository
	exchangeRates ExchangeRateSource
}

func NewTransferService(db *sql.DB, accountRepo repository.IAccountRepository, exchangeRates ExchangeRateSource) *TransferService {
	return &TransferService{
		db:            db,
		accountRepo:   accountRepo,
		exchangeRates: exchangeRates,
	}
}

// TransferWithinBank moves money between two accounts held by this
// institution. The amount is expressed in the target account's currency; the
// source account is debited by the converted equivalent. Both balance writes
// commit together or not at all.
func (s *TransferService) TransferWithinBank(ctx context.Context, sourceAccountID int, targetAccountNumber string, amount decimal.Decimal) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": sourceAccountID,
		"target_account":    targetAccountNumber,
		"amount":            amount,
	})
	log.Info("Starting internal transfer")

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	source, err := s.accountRepo.GetAccountForUpdate(tx, sourceAccountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if source.AccountNumber == targetAccountNumber {
		return nil, ErrSameAccountTransfer
	}

	target, err := s.accountRepo.GetAccountByNumberForUpdate(tx, targetAccountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// One unit of the target currency equals `rate` units of the source
	// currency, so the debit is amount * rate.
	rate, err := s.exchangeRates.Rate(ctx, target.Currency, source.Currency)
	if err != nil {
		return nil, err
	}
	convertedAmount := amount.Mul(rate)

	if convertedAmount.GreaterThan(decimal.NewFromInt(source.Balance)) {
		return nil, ErrInsufficientFunds
	}

	debit := convertedAmount.Round(0).IntPart()
	credit := amount.Round(0).IntPart()

	if err := s.accountRepo.UpdateAccountBalance(tx, source.ID, source.Balance-debit); err != nil {
		return nil, fmt.Errorf("could not update source balance: %w", err)
	}
	if err := s.accountRepo.UpdateAccountBalance(tx, target.ID, target.Balance+credit); err != nil {
		return nil, fmt.Errorf("could not update target balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("exchange_rate", rate).Info("Internal transfer completed")
	return &model.Transaction{
		SourceAccountNumber: source.AccountNumber,
		TargetAccountNumber: target.AccountNumber,
		SourceCurrency:      source.Currency,
		TargetCurrency:      target.Currency,
		Date:                time.Now(),
		Amount:              amount,
		ExchangeRate:        rate,
	}, nil
}

// TransferToAnotherBank debits a local account in favor of an IBAN outside
// this institution. The amount is expressed in the source account's currency
// and, unlike the internal case, the funds check applies to the amount before
// conversion. Only the source leg touches the ledger; the target leg exists
// solely in the transaction record.
func (s *TransferService) TransferToAnotherBank(ctx context.Context, sourceAccountID int, targetIban string, amount decimal.Decimal, targetCurrency string) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"source_account_id": sourceAccountID,
		"target_iban":       targetIban,
		"amount":            amount,
		"target_currency":   targetCurrency,
	})
	log.Info("Starting external transfer")

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	source, err := s.accountRepo.GetAccountForUpdate(tx, sourceAccountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if amount.GreaterThan(decimal.NewFromInt(source.Balance)) {
		return nil, ErrInsufficientFunds
	}

	rate, err := s.exchangeRates.Rate(ctx, targetCurrency, source.Currency)
	if err != nil {
		return nil, err
	}
	convertedAmount := amount.Mul(rate)

	debit := convertedAmount.Round(0).IntPart()
	if err := s.accountRepo.UpdateAccountBalance(tx, source.ID, source.Balance-debit); err != nil {
		return nil, fmt.Errorf("could not update source balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("exchange_rate", rate).Info("External transfer completed")
	return &model.Transaction{
		SourceAccountNumber: source.AccountNumber,
		TargetAccountNumber: targetIban,
		SourceCurrency:      source.Currency,
		TargetCurrency:      targetCurrency,
		Date:                time.Now(),
		Amount:              amount,
		ExchangeRate:        rate,
	}, nil
}
