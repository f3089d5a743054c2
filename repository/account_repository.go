package repository

import (
	"database/sql"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"

	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account persistence. Balance
// mutations happen only through the FOR UPDATE + UpdateAccountBalance pair so
// concurrent transfers serialize their read-modify-write sequence.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountByID(id int) (*model.Account, error)
	GetAccountByNumber(number string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	GetAccountsByClientID(clientID int) ([]*model.Account, error)
	ExistsByID(id int) (bool, error)
	ExistsByAccountNumber(number string) (bool, error)
	UpdateAccount(account *model.Account) error
	DeleteAccount(id int) error
	DeleteAccountsByClientID(tx *sql.Tx, clientID int) error
	GetAccountForUpdate(tx *sql.Tx, id int) (*model.Account, error)
	GetAccountByNumberForUpdate(tx *sql.Tx, number string) (*model.Account, error)
	UpdateAccountBalance(tx *sql.Tx, id int, newBalance int64) error
}

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `id, client_id, account_number, currency, balance, created_at`

func scanAccount(row *sql.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.ClientID, &acc.AccountNumber, &acc.Currency, &acc.Balance, &acc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// CreateAccount adds a new account to the database.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"client_id":      account.ClientID,
		"account_number": account.AccountNumber,
		"currency":       account.Currency,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (client_id, account_number, currency, balance) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, account.ClientID, account.AccountNumber, account.Currency, account.Balance).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

func (r *AccountRepository) GetAccountByID(id int) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return scanAccount(r.DB.QueryRow(query, id))
}

func (r *AccountRepository) GetAccountByNumber(number string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	return scanAccount(r.DB.QueryRow(query, number))
}

// GetAllAccounts retrieves all accounts from the database.
func (r *AccountRepository) GetAllAccounts() ([]*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	return r.queryAccounts(query)
}

// GetAccountsByClientID retrieves all accounts owned by a specific client.
func (r *AccountRepository) GetAccountsByClientID(clientID int) ([]*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1`
	return r.queryAccounts(query, clientID)
}

func (r *AccountRepository) queryAccounts(query string, args ...interface{}) ([]*model.Account, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute accounts query")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.ClientID, &acc.AccountNumber, &acc.Currency, &acc.Balance, &acc.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *AccountRepository) ExistsByAccountNumber(number string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, number).Scan(&exists)
	return exists, err
}

// UpdateAccount rewrites the mutable columns of an existing account.
func (r *AccountRepository) UpdateAccount(account *model.Account) error {
	log := logger.Log.WithField("account_id", account.ID)
	log.Info("Executing query to update account")

	query := `UPDATE accounts SET currency = $1, balance = $2, client_id = $3 WHERE id = $4`
	_, err := r.DB.Exec(query, account.Currency, account.Balance, account.ClientID, account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account query")
		return err
	}
	return nil
}

func (r *AccountRepository) DeleteAccount(id int) error {
	log := logger.Log.WithField("account_id", id)
	log.Info("Executing query to delete account")

	_, err := r.DB.Exec(`DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete account query")
		return err
	}
	return nil
}

// DeleteAccountsByClientID removes every account owned by the client within
// the caller's transaction. Used by the explicit client cascade delete.
func (r *AccountRepository) DeleteAccountsByClientID(tx *sql.Tx, clientID int) error {
	log := logger.Log.WithField("client_id", clientID)
	log.Info("Executing query to delete accounts for client")

	_, err := tx.Exec(`DELETE FROM accounts WHERE client_id = $1`, clientID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete accounts for client query")
		return err
	}
	return nil
}

func (r *AccountRepository) GetAccountForUpdate(tx *sql.Tx, accountID int) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT id, client_id, account_number, currency, balance FROM accounts WHERE id = $1 FOR UPDATE`
	err := tx.QueryRow(query, accountID).Scan(&account.ID, &account.ClientID, &account.AccountNumber, &account.Currency, &account.Balance)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) GetAccountByNumberForUpdate(tx *sql.Tx, number string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", number)
	log.Info("Executing query to get account by number for update")

	account := &model.Account{}
	query := `SELECT id, client_id, account_number, currency, balance FROM accounts WHERE account_number = $1 FOR UPDATE`
	err := tx.QueryRow(query, number).Scan(&account.ID, &account.ClientID, &account.AccountNumber, &account.Currency, &account.Balance)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account by number for update query")
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) UpdateAccountBalance(tx *sql.Tx, accountID int, newBalance int64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": newBalance,
	})
	log.Info("Executing query to update account balance")

	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	_, err := tx.Exec(query, newBalance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}
	return nil
}
