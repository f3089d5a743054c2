package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"
	"bank-backoffice-api/repository"

	"github.com/google/uuid"
)

// ClientService handles client lifecycle. Removing a client also removes the
// client's accounts, as one explicit multi-step operation in one database
// transaction.
type ClientService struct {
	db          *sql.DB
	clientRepo  repository.IClientRepository
	accountRepo repository.IAccountRepository
}

func NewClientService(db *sql.DB, clientRepo repository.IClientRepository, accountRepo repository.IAccountRepository) *ClientService {
	return &ClientService{
		db:          db,
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
	}
}

func (s *ClientService) GetAllClients() ([]*model.Client, error) {
	return s.clientRepo.GetAllClients()
}

func (s *ClientService) FindByClientID(clientID string) ([]*model.Client, error) {
	return s.clientRepo.FindByClientID(clientID)
}

func (s *ClientService) GetClient(id int) (*model.Client, error) {
	client, err := s.clientRepo.GetClientByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) CreateClient(client *model.Client) (*model.Client, error) {
	if client.ID != 0 {
		exists, err := s.clientRepo.ExistsByID(client.ID)
		if err != nil {
			return nil, fmt.Errorf("could not check client existence: %w", err)
		}
		if exists {
			return nil, ErrClientExists
		}
	}

	if !client.BirthDate.Before(time.Now()) {
		return nil, ErrInvalidBirthDate
	}

	pinTaken, err := s.clientRepo.ExistsByPin(client.Pin)
	if err != nil {
		return nil, fmt.Errorf("could not check pin uniqueness: %w", err)
	}
	if pinTaken {
		return nil, ErrClientExists
	}

	if client.ClientID == "" {
		client.ClientID = uuid.NewString()
	}

	if err := s.clientRepo.CreateClient(client); err != nil {
		return nil, err
	}

	logger.Log.WithField("client_id", client.ClientID).Info("Client created")
	return client, nil
}

func (s *ClientService) UpdateClient(client *model.Client) (*model.Client, error) {
	exists, err := s.clientRepo.ExistsByID(client.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check client existence: %w", err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	if err := s.clientRepo.UpdateClient(client); err != nil {
		return nil, err
	}
	return client, nil
}

// RemoveClient deletes the client and every account the client owns. Both
// deletes commit together or not at all.
func (s *ClientService) RemoveClient(ctx context.Context, id int) error {
	exists, err := s.clientRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("could not check client existence: %w", err)
	}
	if !exists {
		return ErrClientNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.accountRepo.DeleteAccountsByClientID(tx, id); err != nil {
		return fmt.Errorf("could not delete accounts for client: %w", err)
	}
	if err := s.clientRepo.DeleteClient(tx, id); err != nil {
		return fmt.Errorf("could not delete client: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	logger.Log.WithField("id", id).Info("Client and owned accounts removed")
	return nil
}
