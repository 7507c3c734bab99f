package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"partnerhub/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta("SELECT id, login, password_hash, role, partner_id FROM accounts WHERE login = $1")
	partnerID := "PT-001"

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name:  "Account found",
			login: "finuser",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "partner_id"}).
					AddRow(1, "finuser", "hashed_password", "finance", nil)
				mock.ExpectQuery(query).WithArgs("finuser").WillReturnRows(rows)
			},
			result: &domain.Account{
				ID:           1,
				Login:        "finuser",
				PasswordHash: "hashed_password",
				Role:         "finance",
			},
		},
		{
			name:  "Partner-scoped account found",
			login: "partneruser",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "partner_id"}).
					AddRow(2, "partneruser", "hashed_password", "partner", &partnerID)
				mock.ExpectQuery(query).WithArgs("partneruser").WillReturnRows(rows)
			},
			result: &domain.Account{
				ID:           2,
				Login:        "partneruser",
				PasswordHash: "hashed_password",
				Role:         "partner",
				PartnerID:    &partnerID,
			},
		},
		{
			name:  "Account not found",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "finuser",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("finuser").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		INSERT INTO accounts (login, password_hash, role, partner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`)

	t.Run("Create account successfully", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("finuser", "hashed_password", "finance", (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		account, err := repo.Create(context.Background(), &domain.Account{
			Login:        "finuser",
			PasswordHash: "hashed_password",
			Role:         "finance",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, account.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("finuser", "hashed_password", "finance", (*string)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Account{
			Login:        "finuser",
			PasswordHash: "hashed_password",
			Role:         "finance",
		})
		assert.Error(t, err)
	})
}
