package affiliaterepo

import (
	"context"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const affiliateColumns = "id, partner_id, name, region, status, partner_cut, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, affiliate *domain.Affiliate) error {
	query := `
		INSERT INTO affiliates (id, partner_id, name, region, status, partner_cut, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := repo.db.Exec(ctx, query,
		affiliate.ID, affiliate.PartnerID, affiliate.Name, affiliate.Region,
		affiliate.Status, affiliate.PartnerCut, affiliate.CreatedAt)
	if err != nil {
		zap.L().Error("can't save affiliate", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Affiliate, error) {
	query := "SELECT " + affiliateColumns + " FROM affiliates WHERE id = $1"
	var affiliate domain.Affiliate
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&affiliate.ID, &affiliate.PartnerID, &affiliate.Name, &affiliate.Region,
		&affiliate.Status, &affiliate.PartnerCut, &affiliate.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find affiliate", zap.Error(err))
		return nil, err
	}
	return &affiliate, nil
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.Affiliate, error) {
	query := "SELECT " + affiliateColumns + " FROM affiliates ORDER BY id"
	return repo.list(ctx, query)
}

func (repo *Repository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.Affiliate, error) {
	query := "SELECT " + affiliateColumns + " FROM affiliates WHERE partner_id = $1 ORDER BY id"
	return repo.list(ctx, query, partnerID)
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Affiliate, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get affiliates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var affiliates []domain.Affiliate
	for rows.Next() {
		var affiliate domain.Affiliate
		err := rows.Scan(
			&affiliate.ID, &affiliate.PartnerID, &affiliate.Name, &affiliate.Region,
			&affiliate.Status, &affiliate.PartnerCut, &affiliate.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan affiliate row", zap.Error(err))
			return nil, err
		}
		affiliates = append(affiliates, affiliate)
	}
	return affiliates, nil
}
