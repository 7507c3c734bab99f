package userrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerhub/internal/domain"

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

func userRows(users ...domain.User) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "partner_id", "affiliate_id", "code_id", "code_value", "email", "first_name",
		"last_name", "region", "account_type", "app_id", "source", "status",
		"partner_override", "affiliate_override", "partner_cut", "created_at",
	})
	for _, user := range users {
		rows.AddRow(
			user.ID, user.PartnerID, user.AffiliateID, user.CodeID, user.CodeValue,
			user.Email, user.FirstName, user.LastName, user.Region, user.AccountType,
			user.AppID, user.Source, user.Status, user.PartnerOverride,
			user.AffiliateOverride, user.PartnerCut, user.CreatedAt,
		)
	}
	return rows
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	user := &domain.User{
		PartnerID: "PT-001", CodeID: 7, CodeValue: "PT-ABC12",
		Email: "u@example.com", AccountType: "standard", Source: "partner",
		Status: "active", CreatedAt: now,
	}

	t.Run("Save user successfully", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users (.+) RETURNING id").
			WithArgs(user.PartnerID, user.AffiliateID, user.CodeID, user.CodeValue, user.Email,
				user.FirstName, user.LastName, user.Region, user.AccountType, user.AppID,
				user.Source, user.Status, user.PartnerOverride, user.AffiliateOverride,
				user.PartnerCut, user.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Save(context.Background(), user)
		assert.NoError(t, err)
		assert.Equal(t, 42, user.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users (.+) RETURNING id").
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), user)
		assert.Error(t, err)
	})
}

func TestRepository_ListByPartnerID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	stored := domain.User{
		ID: 1, PartnerID: "PT-001", CodeID: 7, CodeValue: "PT-ABC12",
		Email: "u@example.com", AccountType: "standard", Source: "partner",
		Status: "active", CreatedAt: now,
	}

	mock.ExpectQuery("SELECT (.+) FROM users WHERE partner_id = \\$1 ORDER BY id").
		WithArgs("PT-001").
		WillReturnRows(userRows(stored))

	users, err := repo.ListByPartnerID(context.Background(), "PT-001")
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{stored}, users)
}

func TestRepository_ListByCodeID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE code_id = \\$1 ORDER BY id").
		WithArgs(7).
		WillReturnRows(userRows())

	users, err := repo.ListByCodeID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Empty(t, users)
}
