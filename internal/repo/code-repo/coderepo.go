package coderepo

import (
	"context"
	"strconv"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const codeColumns = `id, value, kind, status, max_uses, current_uses, partner_id, affiliate_id,
		partner_override, affiliate_override, currency, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, code *domain.Code) error {
	query := `
		INSERT INTO codes (value, kind, status, max_uses, current_uses, partner_id, affiliate_id,
			partner_override, affiliate_override, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		code.Value, code.Kind, code.Status, code.MaxUses, code.CurrentUses,
		code.PartnerID, code.AffiliateID, code.PartnerOverride, code.AffiliateOverride,
		code.Currency, code.CreatedAt, code.UpdatedAt).
		Scan(&code.ID)
	if err != nil {
		zap.L().Error("can't save code", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByValue(ctx context.Context, value string) (*domain.Code, error) {
	query := "SELECT " + codeColumns + " FROM codes WHERE value = $1"
	return repo.findOne(ctx, query, value)
}

// FindByIdentifier resolves a code by numeric id or by value.
func (repo *Repository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Code, error) {
	if id, err := strconv.Atoi(identifier); err == nil {
		query := "SELECT " + codeColumns + " FROM codes WHERE id = $1"
		return repo.findOne(ctx, query, id)
	}
	return repo.FindByValue(ctx, identifier)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Code, error) {
	var code domain.Code
	err := repo.db.QueryRow(ctx, query, arg).Scan(
		&code.ID, &code.Value, &code.Kind, &code.Status, &code.MaxUses, &code.CurrentUses,
		&code.PartnerID, &code.AffiliateID, &code.PartnerOverride, &code.AffiliateOverride,
		&code.Currency, &code.CreatedAt, &code.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find code", zap.Error(err))
		return nil, err
	}
	return &code, nil
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.Code, error) {
	query := "SELECT " + codeColumns + " FROM codes ORDER BY id"
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var codes []domain.Code
	for rows.Next() {
		var code domain.Code
		err := rows.Scan(
			&code.ID, &code.Value, &code.Kind, &code.Status, &code.MaxUses, &code.CurrentUses,
			&code.PartnerID, &code.AffiliateID, &code.PartnerOverride, &code.AffiliateOverride,
			&code.Currency, &code.CreatedAt, &code.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan code row", zap.Error(err))
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// ConsumeUse takes one use of a code. The predicate repeats the capacity
// check so concurrent registrations can never push current_uses past
// max_uses; a zero row count means the code lost the race or went inactive.
func (repo *Repository) ConsumeUse(ctx context.Context, codeID int) (bool, error) {
	query := `
		UPDATE codes
		SET current_uses = current_uses + 1, updated_at = now()
		WHERE id = $1
		  AND status = 'active'
		  AND (max_uses IS NULL OR current_uses < max_uses)
	`
	tag, err := repo.db.Exec(ctx, query, codeID)
	if err != nil {
		zap.L().Error("can't consume code use", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
