package repository

import (
	"database/sql"

	"bank-backoffice-api/logger"
	"bank-backoffice-api/model"

	"github.com/sirupsen/logrus"
)

// IClientRepository defines the contract for client persistence.
type IClientRepository interface {
	CreateClient(client *model.Client) error
	GetClientByID(id int) (*model.Client, error)
	GetAllClients() ([]*model.Client, error)
	FindByClientID(clientID string) ([]*model.Client, error)
	ExistsByID(id int) (bool, error)
	ExistsByPin(pin string) (bool, error)
	UpdateClient(client *model.Client) error
	DeleteClient(tx *sql.Tx, id int) error
}

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, client_id, name, email, phone, address, birth_date, pin, created_at`

func (r *ClientRepository) CreateClient(client *model.Client) error {
	log := logger.Log.WithFields(logrus.Fields{
		"client_id": client.ClientID,
		"name":      client.Name,
	})
	log.Info("Executing query to create a new client")

	query := `INSERT INTO clients (client_id, name, email, phone, address, birth_date, pin)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query, client.ClientID, client.Name, client.Email, client.Phone,
		client.Address, client.BirthDate, client.Pin).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create client query")
		return err
	}
	return nil
}

func (r *ClientRepository) GetClientByID(id int) (*model.Client, error) {
	client := &model.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&client.ID, &client.ClientID, &client.Name, &client.Email,
		&client.Phone, &client.Address, &client.BirthDate, &client.Pin, &client.CreatedAt)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepository) GetAllClients() ([]*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	return r.queryClients(query)
}

// FindByClientID searches clients by their generated client identifier token.
func (r *ClientRepository) FindByClientID(clientID string) ([]*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1`
	return r.queryClients(query, clientID)
}

func (r *ClientRepository) queryClients(query string, args ...interface{}) ([]*model.Client, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute clients query")
		return nil, err
	}
	defer rows.Close()

	var clients []*model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name, &c.Email, &c.Phone, &c.Address,
			&c.BirthDate, &c.Pin, &c.CreatedAt); err != nil {
			logger.Log.WithError(err).Error("Failed to scan client row")
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) ExistsByID(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *ClientRepository) ExistsByPin(pin string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM clients WHERE pin = $1)`, pin).Scan(&exists)
	return exists, err
}

func (r *ClientRepository) UpdateClient(client *model.Client) error {
	log := logger.Log.WithField("id", client.ID)
	log.Info("Executing query to update client")

	query := `UPDATE clients SET name = $1, email = $2, phone = $3, address = $4, birth_date = $5 WHERE id = $6`
	_, err := r.DB.Exec(query, client.Name, client.Email, client.Phone, client.Address, client.BirthDate, client.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update client query")
		return err
	}
	return nil
}

// DeleteClient removes the client row within the caller's transaction; the
// client's accounts must be deleted first in the same transaction.
func (r *ClientRepository) DeleteClient(tx *sql.Tx, id int) error {
	log := logger.Log.WithField("id", id)
	log.Info("Executing query to delete client")

	_, err := tx.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete client query")
		return err
	}
	return nil
}
