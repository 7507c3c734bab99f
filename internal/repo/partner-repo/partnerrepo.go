package partnerrepo

import (
	"context"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const partnerColumns = "id, name, region, status, partner_cut, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, partner *domain.Partner) error {
	query := `
		INSERT INTO partners (id, name, region, status, partner_cut, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := repo.db.Exec(ctx, query,
		partner.ID, partner.Name, partner.Region, partner.Status, partner.PartnerCut, partner.CreatedAt)
	if err != nil {
		zap.L().Error("can't save partner", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := "SELECT " + partnerColumns + " FROM partners WHERE id = $1"
	var partner domain.Partner
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&partner.ID, &partner.Name, &partner.Region, &partner.Status, &partner.PartnerCut, &partner.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find partner", zap.Error(err))
		return nil, err
	}
	return &partner, nil
}

func (repo *Repository) ListAll(ctx context.Context) ([]domain.Partner, error) {
	query := "SELECT " + partnerColumns + " FROM partners ORDER BY id"
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get partners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var partner domain.Partner
		err := rows.Scan(&partner.ID, &partner.Name, &partner.Region, &partner.Status, &partner.PartnerCut, &partner.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan partner row", zap.Error(err))
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, nil
}
