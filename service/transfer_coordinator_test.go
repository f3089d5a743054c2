package service

import (
	"context"
	"errors"
	"testing"

	"bank-backoffice-api/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockEngine struct{ mock.Mock }

func (m *mockEngine) TransferWithinBank(ctx context.Context, sourceAccountID int, targetAccountNumber string, amount decimal.Decimal) (*model.Transaction, error) {
	args := m.Called(ctx, sourceAccountID, targetAccountNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockEngine) TransferToAnotherBank(ctx context.Context, sourceAccountID int, targetIban string, amount decimal.Decimal, targetCurrency string) (*model.Transaction, error) {
	args := m.Called(ctx, sourceAccountID, targetIban, amount, targetCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) CreateTransaction(transaction *model.Transaction) (*model.Transaction, error) {
	args := m.Called(transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyOnSuccess(transaction *model.Transaction) error {
	args := m.Called(transaction)
	return args.Error(0)
}

func TestTransferCoordinator_TransferWithinBank(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(2)
	executed := &model.Transaction{SourceAccountNumber: "SOURCE1", TargetAccountNumber: "TARGET1"}
	recorded := &model.Transaction{ID: 7, SourceAccountNumber: "SOURCE1", TargetAccountNumber: "TARGET1"}

	t.Run("records then notifies", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		engine.On("TransferWithinBank", ctx, 1, "TARGET1", amount).Return(executed, nil).Once()
		recorder.On("CreateTransaction", executed).Return(recorded, nil).Once()
		notifier.On("NotifyOnSuccess", recorded).Return(nil).Once()

		result, err := coordinator.TransferWithinBank(ctx, 1, "TARGET1", amount)

		assert.NoError(t, err)
		assert.Equal(t, recorded, result)
		engine.AssertExpectations(t)
		recorder.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("engine failure stops the chain", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		engine.On("TransferWithinBank", ctx, 1, "TARGET1", amount).Return(nil, ErrInsufficientFunds).Once()

		_, err := coordinator.TransferWithinBank(ctx, 1, "TARGET1", amount)

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		recorder.AssertNotCalled(t, "CreateTransaction", mock.Anything)
		notifier.AssertNotCalled(t, "NotifyOnSuccess", mock.Anything)
	})

	t.Run("recording failure suppresses the notification", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		recordErr := errors.New("insert failed")
		engine.On("TransferWithinBank", ctx, 1, "TARGET1", amount).Return(executed, nil).Once()
		recorder.On("CreateTransaction", executed).Return(nil, recordErr).Once()

		_, err := coordinator.TransferWithinBank(ctx, 1, "TARGET1", amount)

		assert.ErrorIs(t, err, recordErr)
		notifier.AssertNotCalled(t, "NotifyOnSuccess", mock.Anything)
	})

	t.Run("notification failure still returns the recorded transaction", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		engine.On("TransferWithinBank", ctx, 1, "TARGET1", amount).Return(executed, nil).Once()
		recorder.On("CreateTransaction", executed).Return(recorded, nil).Once()
		notifier.On("NotifyOnSuccess", recorded).Return(errors.New("smtp refused")).Once()

		result, err := coordinator.TransferWithinBank(ctx, 1, "TARGET1", amount)

		assert.ErrorIs(t, err, ErrNotificationFailed)
		assert.Equal(t, recorded, result)
	})
}

func TestTransferCoordinator_TransferToAnotherBank(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(500)
	targetIban := "DE02100100100006820101"
	executed := &model.Transaction{SourceAccountNumber: "SOURCE1", TargetAccountNumber: targetIban}
	recorded := &model.Transaction{ID: 9, SourceAccountNumber: "SOURCE1", TargetAccountNumber: targetIban}

	t.Run("records then notifies", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		engine.On("TransferToAnotherBank", ctx, 1, targetIban, amount, "EUR").Return(executed, nil).Once()
		recorder.On("CreateTransaction", executed).Return(recorded, nil).Once()
		notifier.On("NotifyOnSuccess", recorded).Return(nil).Once()

		result, err := coordinator.TransferToAnotherBank(ctx, 1, targetIban, amount, "EUR")

		assert.NoError(t, err)
		assert.Equal(t, recorded, result)
		engine.AssertExpectations(t)
		recorder.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("engine failure stops the chain", func(t *testing.T) {
		engine := new(mockEngine)
		recorder := new(mockRecorder)
		notifier := new(mockNotifier)
		coordinator := NewTransferCoordinator(engine, recorder, notifier)

		engine.On("TransferToAnotherBank", ctx, 1, targetIban, amount, "EUR").Return(nil, ErrAccountNotFound).Once()

		_, err := coordinator.TransferToAnotherBank(ctx, 1, targetIban, amount, "EUR")

		assert.ErrorIs(t, err, ErrAccountNotFound)
		recorder.AssertNotCalled(t, "CreateTransaction", mock.Anything)
	})
}
