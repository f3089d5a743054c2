package service

import (
	"database/sql"
	"fmt"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/mailer"
	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"
)

const notificationSubject = "Successful transaction notification"

// NotificationService mails both parties of a recorded transaction. A leg
// whose account number has no local owner (a foreign IBAN) is skipped rather
// than failing the whole notification; transport errors propagate unretried.
type NotificationService struct {
	accountRepo repository.IAccountRepository
	clientRepo  repository.IClientRepository
	mail        mailer.Mailer
	fromAddress string
}

func NewNotificationService(accountRepo repository.IAccountRepository, clientRepo repository.IClientRepository, mail mailer.Mailer, fromAddress string) *NotificationService {
	return &NotificationService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		mail:        mail,
		fromAddress: fromAddress,
	}
}

func (s *NotificationService) NotifyOnSuccess(transaction *model.Transaction) error {
	for _, accountNumber := range []string{transaction.SourceAccountNumber, transaction.TargetAccountNumber} {
		client, err := s.resolveOwner(accountNumber)
		if err == ErrAccountNotFound || err == ErrClientNotFound {
			logger.Log.WithField("account_number", accountNumber).Info("No local owner for transaction leg, skipping notification")
			continue
		}
		if err != nil {
			return err
		}

		if err := s.mail.Send(s.fromAddress, client.Email, notificationSubject, notificationBody(client.Name, transaction)); err != nil {
			return err
		}
		logger.Log.WithField("account_number", accountNumber).Info("Transaction notification sent")
	}
	return nil
}

func (s *NotificationService) resolveOwner(accountNumber string) (*model.Client, error) {
	account, err := s.accountRepo.GetAccountByNumber(accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	client, err := s.clientRepo.GetClientByID(account.ClientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func notificationBody(clientName string, tx *model.Transaction) string {
	return fmt.Sprintf("Dear %s,\n"+
		"There was a successful transaction in our system at %s.\n\n"+
		"Source Account: %s\n"+
		"Target Account: %s\n"+
		"Amount: %s\n"+
		"Source currency: %s\n"+
		"Target currency: %s\n"+
		"Exchange rate: %s\n",
		clientName,
		tx.Date.Format("Jan 2, 2006, 3:04:05 PM"),
		tx.SourceAccountNumber,
		tx.TargetAccountNumber,
		tx.Amount.String(),
		tx.SourceCurrency,
		tx.TargetCurrency,
		tx.ExchangeRate.String(),
	)
}
