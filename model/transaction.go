package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the immutable audit record of a completed transfer. The
// target account number may be a foreign-bank IBAN with no local account.
type Transaction struct {
	ID                  int             `json:"id"`
	SourceAccountNumber string          `json:"source_account_number"`
	TargetAccountNumber string          `json:"target_account_number"`
	SourceCurrency      string          `json:"source_currency"`
	TargetCurrency      string          `json:"target_currency"`
	Date                time.Time       `json:"date"`
	Amount              decimal.Decimal `json:"amount"`
	ExchangeRate        decimal.Decimal `json:"exchange_rate"`
}
