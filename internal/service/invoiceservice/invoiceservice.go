package invoiceservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"partnerhub/internal/config"
	"partnerhub/internal/domain"
	"partnerhub/internal/service/summaryservice"
	"partnerhub/pkg/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=invoiceservice.go -destination=invoiceservice_mock.go -package=invoiceservice

type InvoiceRepo interface {
	Save(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	List(ctx context.Context, filter Filter) ([]domain.Invoice, error)
	ListByPeriod(ctx context.Context, period string) ([]domain.Invoice, error)
	SaveHistory(ctx context.Context, entry *domain.InvoiceHistoryEntry) error
	ListHistory(ctx context.Context) ([]domain.InvoiceHistoryEntry, error)
}

type PartnerRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Partner, error)
	ListAll(ctx context.Context) ([]domain.Partner, error)
}

// StatsProvider is the aggregator view the generator consumes.
type StatsProvider interface {
	PartnerPeriodStats(ctx context.Context, partnerID, period string) (*summaryservice.PartnerPeriodStats, error)
}

// Filter narrows invoice listings. Empty fields match everything; statuses
// compare case-insensitively.
type Filter struct {
	Statuses  []string
	PartnerID string
	Period    string
}

var (
	ErrStatusRequired  = errors.New("a valid status value is required")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

type Service struct {
	invoiceRepo InvoiceRepo
	partnerRepo PartnerRepo
	stats       StatsProvider
	tables      config.PayoutTables
}

func New(invoiceRepo InvoiceRepo, partnerRepo PartnerRepo, stats StatsProvider, tables config.PayoutTables) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		partnerRepo: partnerRepo,
		stats:       stats,
		tables:      tables,
	}
}

// Generate creates one invoice per partner for the cutoff date's period,
// skipping partners already invoiced for it. Returns only the invoices
// created by this call; a second call for the same cutoff returns nothing.
func (s *Service) Generate(ctx context.Context, cutoffDate time.Time) ([]domain.Invoice, error) {
	period := money.MonthKey(cutoffDate)
	cutoffDay := money.ClampCutoffDay(s.tables.CutoffDay, config.DefaultCutoffDay)

	existing, err := s.invoiceRepo.ListByPeriod(ctx, period)
	if err != nil {
		zap.L().Error("can't list existing invoices", zap.String("period", period), zap.Error(err))
		return nil, err
	}
	invoicedPartners := make(map[string]struct{}, len(existing))
	takenIDs := make(map[string]struct{}, len(existing))
	for _, invoice := range existing {
		invoicedPartners[invoice.PartnerID] = struct{}{}
		takenIDs[invoice.ID] = struct{}{}
	}

	partners, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, err
	}

	dueDate, err := money.DueDate(period, cutoffDay)
	if err != nil {
		return nil, fmt.Errorf("can't compute due date: %w", err)
	}

	created := make([]domain.Invoice, 0)
	for _, partner := range partners {
		if _, ok := invoicedPartners[partner.ID]; ok {
			continue
		}

		invoice, err := s.createInvoice(ctx, &partner, period, cutoffDate, cutoffDay, dueDate, takenIDs)
		if err != nil {
			return created, err
		}

		invoicedPartners[partner.ID] = struct{}{}
		created = append(created, *invoice)
	}

	zap.L().Info("invoice generation finished",
		zap.String("period", period), zap.Int("created", len(created)))
	return created, nil
}

func (s *Service) createInvoice(ctx context.Context, partner *domain.Partner, period string, cutoffDate time.Time, cutoffDay int, dueDate time.Time, takenIDs map[string]struct{}) (*domain.Invoice, error) {
	stats, err := s.stats.PartnerPeriodStats(ctx, partner.ID, period)
	if err != nil {
		zap.L().Error("can't compute partner period stats",
			zap.String("partnerID", partner.ID), zap.String("period", period), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		ID:                   s.nextInvoiceID(period, partner.ID, takenIDs),
		PartnerID:            partner.ID,
		PartnerName:          partner.Name,
		Period:               period,
		CutoffDate:           cutoffDate,
		CutoffDay:            cutoffDay,
		DueDate:              dueDate,
		Amount:               stats.Amount,
		PayoutDirect:         stats.DirectPartnerPayout,
		PayoutFromAffiliates: stats.AffiliatePartnerPayout,
		AffiliatePayout:      stats.AffiliateAffiliatePayout,
		UsersCount:           stats.TotalUsers,
		Status:               domain.InvoiceStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.invoiceRepo.Save(ctx, &invoice); err != nil {
		zap.L().Error("can't save invoice", zap.String("invoiceID", invoice.ID), zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

// PendingPartners lists partners still lacking an invoice for the cutoff
// date's period. The background billing runner fans these out one by one.
func (s *Service) PendingPartners(ctx context.Context, cutoffDate time.Time) ([]string, error) {
	period := money.MonthKey(cutoffDate)

	existing, err := s.invoiceRepo.ListByPeriod(ctx, period)
	if err != nil {
		zap.L().Error("can't list existing invoices", zap.String("period", period), zap.Error(err))
		return nil, err
	}
	invoicedPartners := make(map[string]struct{}, len(existing))
	for _, invoice := range existing {
		invoicedPartners[invoice.PartnerID] = struct{}{}
	}

	partners, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, err
	}

	pending := make([]string, 0)
	for _, partner := range partners {
		if _, ok := invoicedPartners[partner.ID]; !ok {
			pending = append(pending, partner.ID)
		}
	}
	return pending, nil
}

// GenerateForPartner invoices a single partner for the cutoff date's
// period. Returns nil when the partner is already invoiced for it.
func (s *Service) GenerateForPartner(ctx context.Context, partnerID string, cutoffDate time.Time) (*domain.Invoice, error) {
	period := money.MonthKey(cutoffDate)
	cutoffDay := money.ClampCutoffDay(s.tables.CutoffDay, config.DefaultCutoffDay)

	existing, err := s.invoiceRepo.ListByPeriod(ctx, period)
	if err != nil {
		zap.L().Error("can't list existing invoices", zap.String("period", period), zap.Error(err))
		return nil, err
	}
	takenIDs := make(map[string]struct{}, len(existing))
	for _, invoice := range existing {
		if invoice.PartnerID == partnerID {
			return nil, nil
		}
		takenIDs[invoice.ID] = struct{}{}
	}

	partner, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("unknown partner %s", partnerID)
	}

	dueDate, err := money.DueDate(period, cutoffDay)
	if err != nil {
		return nil, fmt.Errorf("can't compute due date: %w", err)
	}

	return s.createInvoice(ctx, partner, period, cutoffDate, cutoffDay, dueDate, takenIDs)
}

// nextInvoiceID derives a deterministic id from period and partner,
// suffixing a counter when the base id is already taken.
func (s *Service) nextInvoiceID(period, partnerID string, taken map[string]struct{}) string {
	base := fmt.Sprintf("INV-%s-%s", strings.ToUpper(period), strings.ToUpper(partnerID))
	id := base
	for counter := 2; ; counter++ {
		if _, ok := taken[id]; !ok {
			break
		}
		id = fmt.Sprintf("%s-%d", base, counter)
	}
	taken[id] = struct{}{}
	return id
}

// SetStatus updates an invoice's status. A paid transition appends an
// audit entry carrying the payment reference.
func (s *Service) SetStatus(ctx context.Context, id, status, paymentRef string) (*domain.Invoice, error) {
	nextStatus := strings.TrimSpace(status)
	if nextStatus == "" {
		return nil, ErrStatusRequired
	}

	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find invoice", zap.String("invoiceID", id), zap.Error(err))
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	invoice.Status = nextStatus
	invoice.UpdatedAt = time.Now()
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		zap.L().Error("can't update invoice", zap.String("invoiceID", id), zap.Error(err))
		return nil, err
	}

	if strings.EqualFold(nextStatus, domain.InvoiceStatusPaid) {
		entry := &domain.InvoiceHistoryEntry{
			ID:         uuid.NewString(),
			InvoiceID:  invoice.ID,
			PartnerID:  invoice.PartnerID,
			Status:     nextStatus,
			Amount:     invoice.Amount,
			PaymentRef: paymentRef,
			ChangedAt:  invoice.UpdatedAt,
		}
		if err := s.invoiceRepo.SaveHistory(ctx, entry); err != nil {
			zap.L().Error("can't append invoice history", zap.String("invoiceID", id), zap.Error(err))
			return nil, err
		}
	}

	return invoice, nil
}

// List returns invoice snapshots matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("can't list invoices", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

// History returns the paid-transition audit log.
func (s *Service) History(ctx context.Context) ([]domain.InvoiceHistoryEntry, error) {
	entries, err := s.invoiceRepo.ListHistory(ctx)
	if err != nil {
		zap.L().Error("can't list invoice history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
