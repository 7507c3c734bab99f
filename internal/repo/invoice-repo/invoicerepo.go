package invoicerepo

import (
	"context"
	"fmt"
	"strings"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"
	"partnerhub/internal/service/invoiceservice"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const invoiceColumns = `id, partner_id, partner_name, period, cutoff_date, cutoff_day, due_date,
		amount, payout_direct, payout_from_affiliates, affiliate_payout, users_count, status,
		created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Save(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (id, partner_id, partner_name, period, cutoff_date, cutoff_day, due_date,
			amount, payout_direct, payout_from_affiliates, affiliate_payout, users_count, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := repo.db.Exec(ctx, query,
		invoice.ID, invoice.PartnerID, invoice.PartnerName, invoice.Period,
		invoice.CutoffDate, invoice.CutoffDay, invoice.DueDate,
		invoice.Amount, invoice.PayoutDirect, invoice.PayoutFromAffiliates,
		invoice.AffiliatePayout, invoice.UsersCount, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save invoice", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := "SELECT " + invoiceColumns + " FROM invoices WHERE id = $1"
	var invoice domain.Invoice
	err := repo.db.QueryRow(ctx, query, id).Scan(
		&invoice.ID, &invoice.PartnerID, &invoice.PartnerName, &invoice.Period,
		&invoice.CutoffDate, &invoice.CutoffDay, &invoice.DueDate,
		&invoice.Amount, &invoice.PayoutDirect, &invoice.PayoutFromAffiliates,
		&invoice.AffiliatePayout, &invoice.UsersCount, &invoice.Status,
		&invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (repo *Repository) Update(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := repo.db.Exec(ctx, query, invoice.Status, invoice.UpdatedAt, invoice.ID)
	if err != nil {
		zap.L().Error("can't update invoice", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) List(ctx context.Context, filter invoiceservice.Filter) ([]domain.Invoice, error) {
	query := "SELECT " + invoiceColumns + " FROM invoices"
	var conditions []string
	var args []any

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, strings.ToLower(status))
		}
		args = append(args, statuses)
		conditions = append(conditions, fmt.Sprintf("LOWER(status) = ANY($%d)", len(args)))
	}
	if filter.PartnerID != "" {
		args = append(args, filter.PartnerID)
		conditions = append(conditions, fmt.Sprintf("partner_id = $%d", len(args)))
	}
	if filter.Period != "" {
		args = append(args, filter.Period)
		conditions = append(conditions, fmt.Sprintf("period = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY period DESC, partner_id"

	return repo.list(ctx, query, args...)
}

func (repo *Repository) ListByPeriod(ctx context.Context, period string) ([]domain.Invoice, error) {
	query := "SELECT " + invoiceColumns + " FROM invoices WHERE period = $1 ORDER BY partner_id"
	return repo.list(ctx, query, period)
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID, &invoice.PartnerID, &invoice.PartnerName, &invoice.Period,
			&invoice.CutoffDate, &invoice.CutoffDay, &invoice.DueDate,
			&invoice.Amount, &invoice.PayoutDirect, &invoice.PayoutFromAffiliates,
			&invoice.AffiliatePayout, &invoice.UsersCount, &invoice.Status,
			&invoice.CreatedAt, &invoice.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (repo *Repository) SaveHistory(ctx context.Context, entry *domain.InvoiceHistoryEntry) error {
	query := `
		INSERT INTO invoice_history (id, invoice_id, partner_id, status, amount, payment_ref, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := repo.db.Exec(ctx, query,
		entry.ID, entry.InvoiceID, entry.PartnerID, entry.Status, entry.Amount,
		entry.PaymentRef, entry.ChangedAt)
	if err != nil {
		zap.L().Error("can't save invoice history entry", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) ListHistory(ctx context.Context) ([]domain.InvoiceHistoryEntry, error) {
	query := `
		SELECT id, invoice_id, partner_id, status, amount, payment_ref, changed_at
		FROM invoice_history
		ORDER BY changed_at DESC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get invoice history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.InvoiceHistoryEntry
	for rows.Next() {
		var entry domain.InvoiceHistoryEntry
		err := rows.Scan(&entry.ID, &entry.InvoiceID, &entry.PartnerID, &entry.Status,
			&entry.Amount, &entry.PaymentRef, &entry.ChangedAt)
		if err != nil {
			zap.L().Error("can't scan invoice history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
