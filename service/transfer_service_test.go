package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// mockAccountRepo is a mock for IAccountRepository, shared by the service
// tests in this package.
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *mockAccountRepo) GetAccountByID(id int) (*model.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByNumber(number string) (*model.Account, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAllAccounts() ([]*model.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountsByClientID(clientID int) ([]*model.Account, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *mockAccountRepo) ExistsByID(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) ExistsByAccountNumber(number string) (bool, error) {
	args := m.Called(number)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) UpdateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *mockAccountRepo) DeleteAccount(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockAccountRepo) DeleteAccountsByClientID(tx *sql.Tx, clientID int) error {
	args := m.Called(tx, clientID)
	return args.Error(0)
}

func (m *mockAccountRepo) GetAccountForUpdate(tx *sql.Tx, id int) (*model.Account, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByNumberForUpdate(tx *sql.Tx, number string) (*model.Account, error) {
	args := m.Called(tx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdateAccountBalance(tx *sql.Tx, id int, newBalance int64) error {
	args := m.Called(tx, id, newBalance)
	return args.Error(0)
}

// stubRateSource returns a fixed rate for every currency pair.
type stubRateSource struct {
	rate decimal.Decimal
	err  error

	calledFrom string
	calledTo   string
}

func (s *stubRateSource) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	s.calledFrom = from
	s.calledTo = to
	if s.err != nil {
		return decimal.Zero, s.err
	}
	return s.rate, nil
}

func TestTransferService_TransferWithinBank(t *testing.T) {
	ctx := context.Background()

	sourceAccount := func() *model.Account {
		return &model.Account{ID: 1, AccountNumber: "SOURCE1", Currency: "HUF", Balance: 1000}
	}
	targetAccount := func() *model.Account {
		return &model.Account{ID: 2, AccountNumber: "TARGET1", Currency: "USD", Balance: 2000}
	}

	t.Run("success with currency conversion", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		rates := &stubRateSource{rate: decimal.NewFromInt(300)}
		svc := NewTransferService(db, mockRepo, rates)

		source := sourceAccount()
		target := targetAccount()

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(source, nil).Once()
		mockRepo.On("GetAccountByNumberForUpdate", mock.Anything, "TARGET1").Return(target, nil).Once()
		// One USD is 300 HUF: sending 2 USD debits 600 HUF.
		mockRepo.On("UpdateAccountBalance", mock.Anything, 1, int64(400)).Return(nil).Once()
		mockRepo.On("UpdateAccountBalance", mock.Anything, 2, int64(2002)).Return(nil).Once()
		dbMock.ExpectCommit()

		result, err := svc.TransferWithinBank(ctx, 1, "TARGET1", decimal.NewFromInt(2))

		assert.NoError(t, err)
		assert.Equal(t, "SOURCE1", result.SourceAccountNumber)
		assert.Equal(t, "TARGET1", result.TargetAccountNumber)
		assert.Equal(t, "HUF", result.SourceCurrency)
		assert.Equal(t, "USD", result.TargetCurrency)
		assert.True(t, result.Amount.Equal(decimal.NewFromInt(2)))
		assert.True(t, result.ExchangeRate.Equal(decimal.NewFromInt(300)))
		// The rate is asked for as target currency against source currency.
		assert.Equal(t, "USD", rates.calledFrom)
		assert.Equal(t, "HUF", rates.calledTo)
		mockRepo.AssertExpectations(t)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("insufficient funds checks converted amount", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(300)})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(sourceAccount(), nil).Once()
		mockRepo.On("GetAccountByNumberForUpdate", mock.Anything, "TARGET1").Return(targetAccount(), nil).Once()
		dbMock.ExpectRollback()

		// 4 USD converts to 1200 HUF, more than the 1000 HUF balance.
		_, err = svc.TransferWithinBank(ctx, 1, "TARGET1", decimal.NewFromInt(4))

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		mockRepo.AssertNotCalled(t, "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("transfer to the same account is rejected", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(1)})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(sourceAccount(), nil).Once()
		dbMock.ExpectRollback()

		_, err = svc.TransferWithinBank(ctx, 1, "SOURCE1", decimal.NewFromInt(10))

		assert.ErrorIs(t, err, ErrSameAccountTransfer)
		mockRepo.AssertNotCalled(t, "GetAccountByNumberForUpdate", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown source account", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(1)})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 42).Return(nil, sql.ErrNoRows).Once()
		dbMock.ExpectRollback()

		_, err = svc.TransferWithinBank(ctx, 42, "TARGET1", decimal.NewFromInt(10))

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(1)})

		_, err = svc.TransferWithinBank(ctx, 1, "TARGET1", decimal.Zero)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		mockRepo.AssertNotCalled(t, "GetAccountForUpdate", mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("rate lookup failure rolls back", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		feedErr := errors.New("feed is down")
		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{err: feedErr})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(sourceAccount(), nil).Once()
		mockRepo.On("GetAccountByNumberForUpdate", mock.Anything, "TARGET1").Return(targetAccount(), nil).Once()
		dbMock.ExpectRollback()

		_, err = svc.TransferWithinBank(ctx, 1, "TARGET1", decimal.NewFromInt(2))

		assert.ErrorIs(t, err, feedErr)
		mockRepo.AssertNotCalled(t, "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("commit failure surfaces", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(300)})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(sourceAccount(), nil).Once()
		mockRepo.On("GetAccountByNumberForUpdate", mock.Anything, "TARGET1").Return(targetAccount(), nil).Once()
		mockRepo.On("UpdateAccountBalance", mock.Anything, 1, int64(400)).Return(nil).Once()
		mockRepo.On("UpdateAccountBalance", mock.Anything, 2, int64(2002)).Return(nil).Once()
		dbMock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		_, err = svc.TransferWithinBank(ctx, 1, "TARGET1", decimal.NewFromInt(2))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "could not commit")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestTransferService_TransferToAnotherBank(t *testing.T) {
	ctx := context.Background()
	targetIban := "DE02100100100006820101"

	t.Run("success debits only the source account", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		rates := &stubRateSource{rate: decimal.NewFromInt(300)}
		svc := NewTransferService(db, mockRepo, rates)

		source := &model.Account{ID: 1, AccountNumber: "SOURCE1", Currency: "HUF", Balance: 1000}

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(source, nil).Once()
		mockRepo.On("UpdateAccountBalance", mock.Anything, 1, int64(400)).Return(nil).Once()
		dbMock.ExpectCommit()

		result, err := svc.TransferToAnotherBank(ctx, 1, targetIban, decimal.NewFromInt(2), "USD")

		assert.NoError(t, err)
		assert.Equal(t, "SOURCE1", result.SourceAccountNumber)
		assert.Equal(t, targetIban, result.TargetAccountNumber)
		assert.Equal(t, "USD", result.TargetCurrency)
		assert.True(t, result.ExchangeRate.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, "USD", rates.calledFrom)
		assert.Equal(t, "HUF", rates.calledTo)
		// No credit leg: the target account lives at another bank.
		mockRepo.AssertNumberOfCalls(t, "UpdateAccountBalance", 1)
		mockRepo.AssertExpectations(t)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("funds check applies before conversion", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		rates := &stubRateSource{rate: decimal.NewFromInt(300)}
		svc := NewTransferService(db, mockRepo, rates)

		source := &model.Account{ID: 1, AccountNumber: "SOURCE1", Currency: "HUF", Balance: 1000}

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 1).Return(source, nil).Once()
		dbMock.ExpectRollback()

		// 1001 exceeds the balance as a raw figure, so the transfer is
		// rejected without ever consulting the rate.
		_, err = svc.TransferToAnotherBank(ctx, 1, targetIban, decimal.NewFromInt(1001), "USD")

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Empty(t, rates.calledFrom)
		mockRepo.AssertNotCalled(t, "UpdateAccountBalance", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown source account", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(1)})

		dbMock.ExpectBegin()
		mockRepo.On("GetAccountForUpdate", mock.Anything, 9).Return(nil, sql.ErrNoRows).Once()
		dbMock.ExpectRollback()

		_, err = svc.TransferToAnotherBank(ctx, 9, targetIban, decimal.NewFromInt(10), "USD")

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockRepo := new(mockAccountRepo)
		svc := NewTransferService(db, mockRepo, &stubRateSource{rate: decimal.NewFromInt(1)})

		_, err = svc.TransferToAnotherBank(ctx, 1, targetIban, decimal.NewFromInt(-5), "USD")

		assert.ErrorIs(t, err, ErrInvalidAmount)
		mockRepo.AssertNotCalled(t, "GetAccountForUpdate", mock.Anything, mock.Anything)
	})
}
