package accountrepo

import (
	"context"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx,
		"SELECT id, login, password_hash, role, partner_id FROM accounts WHERE login = $1", login).
		Scan(&account.ID, &account.Login, &account.PasswordHash, &account.Role, &account.PartnerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (repo *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (login, password_hash, role, partner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, account.Login, account.PasswordHash, account.Role, account.PartnerID).
		Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}
