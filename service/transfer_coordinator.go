package service

import (
	"context"
	"fmt"

	"bank-backoffice-api/model"

	"github.com/shopspring/decimal"
)

// TransferEngine executes a transfer and returns its unpersisted description.
type TransferEngine interface {
	TransferWithinBank(ctx context.Context, sourceAccountID int, targetAccountNumber string, amount decimal.Decimal) (*model.Transaction, error)
	TransferToAnotherBank(ctx context.Context, sourceAccountID int, targetIban string, amount decimal.Decimal, targetCurrency string) (*model.Transaction, error)
}

// TransactionRecorder persists a transaction description as an audit record.
type TransactionRecorder interface {
	CreateTransaction(transaction *model.Transaction) (*model.Transaction, error)
}

// SuccessNotifier informs the parties of a recorded transaction.
type SuccessNotifier interface {
	NotifyOnSuccess(transaction *model.Transaction) error
}

// TransferCoordinator is the single completion point behind every transfer:
// after the engine returns successfully it records the transaction, then
// notifies the parties, each exactly once. A recording failure stops the
// notification; a notification failure leaves both the ledger mutation and
// the record in place.
type TransferCoordinator struct {
	engine   TransferEngine
	recorder TransactionRecorder
	notifier SuccessNotifier
}

func NewTransferCoordinator(engine TransferEngine, recorder TransactionRecorder, notifier SuccessNotifier) *TransferCoordinator {
	return &TransferCoordinator{
		engine:   engine,
		recorder: recorder,
		notifier: notifier,
	}
}

func (c *TransferCoordinator) TransferWithinBank(ctx context.Context, sourceAccountID int, targetAccountNumber string, amount decimal.Decimal) (*model.Transaction, error) {
	result, err := c.engine.TransferWithinBank(ctx, sourceAccountID, targetAccountNumber, amount)
	if err != nil {
		return nil, err
	}
	return c.complete(result)
}

func (c *TransferCoordinator) TransferToAnotherBank(ctx context.Context, sourceAccountID int, targetIban string, amount decimal.Decimal, targetCurrency string) (*model.Transaction, error) {
	result, err := c.engine.TransferToAnotherBank(ctx, sourceAccountID, targetIban, amount, targetCurrency)
	if err != nil {
		return nil, err
	}
	return c.complete(result)
}

func (c *TransferCoordinator) complete(result *model.Transaction) (*model.Transaction, error) {
	recorded, err := c.recorder.CreateTransaction(result)
	if err != nil {
		return nil, fmt.Errorf("could not record transaction: %w", err)
	}

	if err := c.notifier.NotifyOnSuccess(recorded); err != nil {
		return recorded, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	return recorded, nil
}
