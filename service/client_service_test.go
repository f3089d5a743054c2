package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bank-backoffice-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClientService_CreateClient(t *testing.T) {
	validClient := func() *model.Client {
		return &model.Client{
			Name:      "Alice",
			Email:     "alice@example.com",
			Phone:     "+36201234567",
			Address:   "Budapest",
			BirthDate: time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC),
			Pin:       "1234",
		}
	}

	t.Run("assigns a client id when none is given", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		mockClients.On("ExistsByPin", "1234").Return(false, nil).Once()
		mockClients.On("CreateClient", mock.MatchedBy(func(c *model.Client) bool {
			return c.ClientID != ""
		})).Return(nil).Once()

		client, err := svc.CreateClient(validClient())

		assert.NoError(t, err)
		assert.NotEmpty(t, client.ClientID)
		mockClients.AssertExpectations(t)
	})

	t.Run("keeps a caller-supplied client id", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		mockClients.On("ExistsByPin", "1234").Return(false, nil).Once()
		mockClients.On("CreateClient", mock.AnythingOfType("*model.Client")).Return(nil).Once()

		input := validClient()
		input.ClientID = "external-reference-1"
		client, err := svc.CreateClient(input)

		assert.NoError(t, err)
		assert.Equal(t, "external-reference-1", client.ClientID)
	})

	t.Run("rejects a birth date that is not in the past", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		input := validClient()
		input.BirthDate = time.Now().Add(24 * time.Hour)
		_, err := svc.CreateClient(input)

		assert.ErrorIs(t, err, ErrInvalidBirthDate)
		mockClients.AssertNotCalled(t, "CreateClient", mock.Anything)
	})

	t.Run("rejects a pin that is already taken", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		mockClients.On("ExistsByPin", "1234").Return(true, nil).Once()

		_, err := svc.CreateClient(validClient())

		assert.ErrorIs(t, err, ErrClientExists)
		mockClients.AssertNotCalled(t, "CreateClient", mock.Anything)
	})

	t.Run("rejects an id that already exists", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		mockClients.On("ExistsByID", 3).Return(true, nil).Once()

		input := validClient()
		input.ID = 3
		_, err := svc.CreateClient(input)

		assert.ErrorIs(t, err, ErrClientExists)
	})
}

func TestClientService_GetClient(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, nil)

		mockClients.On("GetClientByID", 99).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.GetClient(99)

		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestClientService_RemoveClient(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the client and its accounts in one transaction", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockClients := new(mockClientRepo)
		mockAccounts := new(mockAccountRepo)
		svc := NewClientService(db, mockClients, mockAccounts)

		mockClients.On("ExistsByID", 5).Return(true, nil).Once()
		dbMock.ExpectBegin()
		mockAccounts.On("DeleteAccountsByClientID", mock.Anything, 5).Return(nil).Once()
		mockClients.On("DeleteClient", mock.Anything, 5).Return(nil).Once()
		dbMock.ExpectCommit()

		assert.NoError(t, svc.RemoveClient(ctx, 5))
		mockClients.AssertExpectations(t)
		mockAccounts.AssertExpectations(t)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("account deletion failure rolls everything back", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockClients := new(mockClientRepo)
		mockAccounts := new(mockAccountRepo)
		svc := NewClientService(db, mockClients, mockAccounts)

		mockClients.On("ExistsByID", 5).Return(true, nil).Once()
		dbMock.ExpectBegin()
		mockAccounts.On("DeleteAccountsByClientID", mock.Anything, 5).Return(sql.ErrConnDone).Once()
		dbMock.ExpectRollback()

		err = svc.RemoveClient(ctx, 5)

		assert.Error(t, err)
		mockClients.AssertNotCalled(t, "DeleteClient", mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mockClients := new(mockClientRepo)
		svc := NewClientService(nil, mockClients, new(mockAccountRepo))

		mockClients.On("ExistsByID", 42).Return(false, nil).Once()

		assert.ErrorIs(t, svc.RemoveClient(ctx, 42), ErrClientNotFound)
	})
}
