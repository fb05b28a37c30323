package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	now := time.Now()
	columns := []string{"id", "name", "lastname", "email", "password_hash", "active", "role_id", "created_at", "updated_at"}

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Ana", "Souza", "ana@example.com", "$2a$10$hash", true, 1, now, now))

	user, err := repo.GetUserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, 1, user.RoleID)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(columns))

	user, err = repo.GetUserByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
