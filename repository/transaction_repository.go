package repository

import (
	"database/sql"
	"time"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for the append-only transaction
// audit log. Records are never updated or deleted through this interface.
type ITransactionRepository interface {
	CreateTransaction(transaction *model.Transaction) error
	ExistsByID(id int) (bool, error)
	GetAllTransactions(since time.Time) ([]*model.Transaction, error)
	GetTransactionsBySourceAccount(sourceAccount string, since time.Time) ([]*model.Transaction, error)
	GetTransactionsByTargetAccount(targetAccount string, since time.Time) ([]*model.Transaction, error)
	GetTransactionsBySourceAndTargetAccount(sourceAccount, targetAccount string, since time.Time) ([]*model.Transaction, error)
}

type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

const transactionColumns = `id, source_account_number, target_account_number, source_currency, target_currency, date, amount, exchange_rate`

func (r *TransactionRepository) CreateTransaction(transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"source_account": transaction.SourceAccountNumber,
		"target_account": transaction.TargetAccountNumber,
		"amount":         transaction.Amount,
	})
	log.Info("Executing query to create a new transaction record")

	query := `INSERT INTO transactions (source_account_number, target_account_number, source_currency, target_currency, amount, exchange_rate)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, date`
	err := r.DB.QueryRow(query, transaction.SourceAccountNumber, transaction.TargetAccountNumber,
		transaction.SourceCurrency, transaction.TargetCurrency, transaction.Amount,
		transaction.ExchangeRate).Scan(&transaction.ID, &transaction.Date)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

func (r *TransactionRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *TransactionRepository) GetAllTransactions(since time.Time) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE date > $1 ORDER BY date DESC`
	return r.queryTransactions(query, since)
}

func (r *TransactionRepository) GetTransactionsBySourceAccount(sourceAccount string, since time.Time) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE source_account_number = $1 AND date > $2 ORDER BY date DESC`
	return r.queryTransactions(query, sourceAccount, since)
}

func (r *TransactionRepository) GetTransactionsByTargetAccount(targetAccount string, since time.Time) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE target_account_number = $1 AND date > $2 ORDER BY date DESC`
	return r.queryTransactions(query, targetAccount, since)
}

func (r *TransactionRepository) GetTransactionsBySourceAndTargetAccount(sourceAccount, targetAccount string, since time.Time) ([]*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE source_account_number = $1 AND target_account_number = $2 AND date > $3 ORDER BY date DESC`
	return r.queryTransactions(query, sourceAccount, targetAccount, since)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]*model.Transaction, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute transactions query")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.SourceAccountNumber, &t.TargetAccountNumber, &t.SourceCurrency,
			&t.TargetCurrency, &t.Date, &t.Amount, &t.ExchangeRate); err != nil {
			logger.Log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}
