package invoicerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"partnerhub/internal/domain"
	"partnerhub/internal/service/invoiceservice"

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

func invoiceRows(invoices ...domain.Invoice) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "partner_id", "partner_name", "period", "cutoff_date", "cutoff_day", "due_date",
		"amount", "payout_direct", "payout_from_affiliates", "affiliate_payout", "users_count",
		"status", "created_at", "updated_at",
	})
	for _, inv := range invoices {
		rows.AddRow(
			inv.ID, inv.PartnerID, inv.PartnerName, inv.Period, inv.CutoffDate, inv.CutoffDay,
			inv.DueDate, inv.Amount, inv.PayoutDirect, inv.PayoutFromAffiliates,
			inv.AffiliatePayout, inv.UsersCount, inv.Status, inv.CreatedAt, inv.UpdatedAt,
		)
	}
	return rows
}

func testInvoice() domain.Invoice {
	now := time.Now()
	return domain.Invoice{
		ID: "INV-2024-03-PT-001", PartnerID: "PT-001", PartnerName: "Terra Partners",
		Period: "2024-03", CutoffDate: now, CutoffDay: 15, DueDate: now,
		Amount: 7.50, PayoutDirect: 5.00, PayoutFromAffiliates: 2.50,
		AffiliatePayout: 10.00, UsersCount: 2, Status: "pending",
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Invoice found", func(t *testing.T) {
		stored := testInvoice()
		mock.ExpectQuery("SELECT (.+) FROM invoices WHERE id = \\$1").
			WithArgs("INV-2024-03-PT-001").
			WillReturnRows(invoiceRows(stored))

		invoice, err := repo.FindByID(context.Background(), "INV-2024-03-PT-001")
		assert.NoError(t, err)
		assert.Equal(t, &stored, invoice)
	})

	t.Run("Invoice not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM invoices WHERE id = \\$1").
			WithArgs("INV-MISSING").
			WillReturnError(pgx.ErrNoRows)

		invoice, err := repo.FindByID(context.Background(), "INV-MISSING")
		assert.NoError(t, err)
		assert.Nil(t, invoice)
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	invoice := testInvoice()

	t.Run("Save invoice successfully", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO invoices (.+)").
			WithArgs(invoice.ID, invoice.PartnerID, invoice.PartnerName, invoice.Period,
				invoice.CutoffDate, invoice.CutoffDay, invoice.DueDate,
				invoice.Amount, invoice.PayoutDirect, invoice.PayoutFromAffiliates,
				invoice.AffiliatePayout, invoice.UsersCount, invoice.Status,
				invoice.CreatedAt, invoice.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Save(context.Background(), &invoice)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO invoices (.+)").
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), &invoice)
		assert.Error(t, err)
	})
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Without filters", func(t *testing.T) {
		stored := testInvoice()
		mock.ExpectQuery("SELECT (.+) FROM invoices ORDER BY period DESC, partner_id").
			WillReturnRows(invoiceRows(stored))

		invoices, err := repo.List(context.Background(), invoiceservice.Filter{})
		assert.NoError(t, err)
		assert.Len(t, invoices, 1)
	})

	t.Run("With status, partner and period filters", func(t *testing.T) {
		stored := testInvoice()
		mock.ExpectQuery("SELECT (.+) FROM invoices WHERE LOWER\\(status\\) = ANY\\(\\$1\\) AND partner_id = \\$2 AND period = \\$3").
			WithArgs([]string{"pending", "review"}, "PT-001", "2024-03").
			WillReturnRows(invoiceRows(stored))

		invoices, err := repo.List(context.Background(), invoiceservice.Filter{
			Statuses:  []string{"Pending", "REVIEW"},
			PartnerID: "PT-001",
			Period:    "2024-03",
		})
		assert.NoError(t, err)
		assert.Len(t, invoices, 1)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	invoice := testInvoice()
	invoice.Status = "paid"

	mock.ExpectExec("UPDATE invoices SET (.+) WHERE id = \\$3").
		WithArgs(invoice.Status, invoice.UpdatedAt, invoice.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &invoice)
	assert.NoError(t, err)
}

func TestRepository_History(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	entry := domain.InvoiceHistoryEntry{
		ID: "e1", InvoiceID: "INV-2024-03-PT-001", PartnerID: "PT-001",
		Status: "paid", Amount: 7.50, PaymentRef: "79927398713", ChangedAt: now,
	}

	t.Run("Save history entry", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO invoice_history (.+)").
			WithArgs(entry.ID, entry.InvoiceID, entry.PartnerID, entry.Status,
				entry.Amount, entry.PaymentRef, entry.ChangedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.SaveHistory(context.Background(), &entry)
		assert.NoError(t, err)
	})

	t.Run("List history", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "invoice_id", "partner_id", "status", "amount", "payment_ref", "changed_at"}).
			AddRow(entry.ID, entry.InvoiceID, entry.PartnerID, entry.Status, entry.Amount, entry.PaymentRef, entry.ChangedAt)
		mock.ExpectQuery("SELECT (.+) FROM invoice_history ORDER BY changed_at DESC").
			WillReturnRows(rows)

		entries, err := repo.ListHistory(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []domain.InvoiceHistoryEntry{entry}, entries)
	})
}
