package model

import (
	"crypto/rand"
	"math/big"
	"time"
)

type Account struct {
	ID            int       `json:"id"`
	ClientID      int       `json:"client_id"`
	AccountNumber string    `json:"account_number"`
	Currency      string    `json:"currency"`
	Balance       int64     `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

const accountNumberLength = 24

const accountNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccountNumber returns a random 24-character alphanumeric account
// number. Uniqueness is enforced by the account service, not here.
func GenerateAccountNumber() string {
	buf := make([]byte, accountNumberLength)
	max := big.NewInt(int64(len(accountNumberAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err) // crypto/rand failure means a broken platform
		}
		buf[i] = accountNumberAlphabet[n.Int64()]
	}
	return string(buf)
}
