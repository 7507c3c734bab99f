package coderepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func codeRows(code domain.Code) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "value", "kind", "status", "max_uses", "current_uses", "partner_id", "affiliate_id",
		"partner_override", "affiliate_override", "currency", "created_at", "updated_at",
	}).AddRow(
		code.ID, code.Value, code.Kind, code.Status, code.MaxUses, code.CurrentUses,
		code.PartnerID, code.AffiliateID, code.PartnerOverride, code.AffiliateOverride,
		code.Currency, code.CreatedAt, code.UpdatedAt,
	)
}

func TestRepository_FindByValue(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	stored := domain.Code{
		ID: 1, Value: "PT-ABC12", Kind: "partner", Status: "active",
		CurrentUses: 3, PartnerID: "PT-001", Currency: "USD",
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("Code found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM codes WHERE value = \\$1").
			WithArgs("PT-ABC12").
			WillReturnRows(codeRows(stored))

		code, err := repo.FindByValue(context.Background(), "PT-ABC12")
		assert.NoError(t, err)
		assert.Equal(t, &stored, code)
	})

	t.Run("Code not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM codes WHERE value = \\$1").
			WithArgs("PT-ZZZZZ").
			WillReturnError(pgx.ErrNoRows)

		code, err := repo.FindByValue(context.Background(), "PT-ZZZZZ")
		assert.NoError(t, err)
		assert.Nil(t, code)
	})
}

func TestRepository_FindByIdentifier(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	stored := domain.Code{
		ID: 7, Value: "AF-XYZ99", Kind: "affiliate", Status: "active",
		PartnerID: "PT-001", Currency: "USD", CreatedAt: now, UpdatedAt: now,
	}

	t.Run("Numeric identifier resolves by id", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM codes WHERE id = \\$1").
			WithArgs(7).
			WillReturnRows(codeRows(stored))

		code, err := repo.FindByIdentifier(context.Background(), "7")
		assert.NoError(t, err)
		assert.Equal(t, &stored, code)
	})

	t.Run("Non-numeric identifier resolves by value", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM codes WHERE value = \\$1").
			WithArgs("AF-XYZ99").
			WillReturnRows(codeRows(stored))

		code, err := repo.FindByIdentifier(context.Background(), "AF-XYZ99")
		assert.NoError(t, err)
		assert.Equal(t, &stored, code)
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	code := &domain.Code{
		Value: "PT-ABC12", Kind: "partner", Status: "active",
		PartnerID: "PT-001", Currency: "USD", CreatedAt: now, UpdatedAt: now,
	}

	t.Run("Save code successfully", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO codes (.+) RETURNING id").
			WithArgs(code.Value, code.Kind, code.Status, code.MaxUses, code.CurrentUses,
				code.PartnerID, code.AffiliateID, code.PartnerOverride, code.AffiliateOverride,
				code.Currency, code.CreatedAt, code.UpdatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))

		err := repo.Save(context.Background(), code)
		assert.NoError(t, err)
		assert.Equal(t, 12, code.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO codes (.+) RETURNING id").
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), code)
		assert.Error(t, err)
	})
}

func TestRepository_ConsumeUse(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		UPDATE codes
		SET current_uses = current_uses + 1, updated_at = now()
		WHERE id = $1
		  AND status = 'active'
		  AND (max_uses IS NULL OR current_uses < max_uses)
	`)

	t.Run("Use consumed", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		consumed, err := repo.ConsumeUse(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("No capacity left", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		consumed, err := repo.ConsumeUse(context.Background(), 7)
		assert.NoError(t, err)
		assert.False(t, consumed)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(7).
			WillReturnError(errors.New("database error"))

		_, err := repo.ConsumeUse(context.Background(), 7)
		assert.Error(t, err)
	})
}
