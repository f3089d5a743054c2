package service

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrClientNotFound      = errors.New("client not found")
	ErrClientExists        = errors.New("client already exists")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrTransactionExists   = errors.New("transaction already exists")
	ErrSameAccountTransfer = errors.New("source account matches the target account")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("transfer amount must be greater than zero")
	ErrInvalidBirthDate    = errors.New("birth date must be in the past")
	ErrNotificationFailed  = errors.New("transaction recorded but notification failed")
)
