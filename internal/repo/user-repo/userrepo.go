package userrepo

import (
	"context"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"

	"go.uber.org/zap"
)

const userColumns = `id, partner_id, affiliate_id, code_id, code_value, email, first_name, last_name,
		region, account_type, app_id, source, status, partner_override, affiliate_override,
		partner_cut, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (partner_id, affiliate_id, code_id, code_value, email, first_name, last_name,
			region, account_type, app_id, source, status, partner_override, affiliate_override,
			partner_cut, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		user.PartnerID, user.AffiliateID, user.CodeID, user.CodeValue, user.Email,
		user.FirstName, user.LastName, user.Region, user.AccountType, user.AppID,
		user.Source, user.Status, user.PartnerOverride, user.AffiliateOverride,
		user.PartnerCut, user.CreatedAt).
		Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id"
	return repo.list(ctx, query)
}

func (repo *Repository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE partner_id = $1 ORDER BY id"
	return repo.list(ctx, query, partnerID)
}

func (repo *Repository) ListByCodeID(ctx context.Context, codeID int) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE code_id = $1 ORDER BY id"
	return repo.list(ctx, query, codeID)
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.PartnerID, &user.AffiliateID, &user.CodeID, &user.CodeValue,
			&user.Email, &user.FirstName, &user.LastName, &user.Region, &user.AccountType,
			&user.AppID, &user.Source, &user.Status, &user.PartnerOverride,
			&user.AffiliateOverride, &user.PartnerCut, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
