package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"partnerhub/internal/config"
	"partnerhub/internal/domain"
	"partnerhub/pkg/money"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"partnerhub/pkg/clients"
)

//go:generate mockgen -source=billing.go -destination=billing_mock.go -package=billing

// Invoicer is the slice of the invoice service the runner drives.
type Invoicer interface {
	PendingPartners(ctx context.Context, cutoffDate time.Time) ([]string, error)
	GenerateForPartner(ctx context.Context, partnerID string, cutoffDate time.Time) (*domain.Invoice, error)
}

var billingPartners sync.Map

type Service struct {
	invoicer    Invoicer
	client      clients.HTTPClientI
	webhookURL  string
	cutoffDay   int
	workerPool  WorkerPoolI
	runInterval time.Duration
}

func New(cfg *config.Config, invoicer Invoicer, client clients.HTTPClientI) *Service {
	return &Service{
		invoicer:    invoicer,
		client:      client,
		webhookURL:  cfg.WebhookURL,
		cutoffDay:   money.ClampCutoffDay(cfg.Payouts.CutoffDay, config.DefaultCutoffDay),
		workerPool:  NewWorkerPool(10),
		runInterval: time.Hour,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Billing service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processPeriod(ctx, time.Now())
		}
	}
}

// processPeriod invoices every partner still lacking an invoice for the
// current period once the month's cutoff day has passed. Periods are UTC
// months, so the check and the cutoff both come from the UTC view of now.
// The DB unique key on (partner, period) is the idempotence backstop for
// overlapping runs.
func (s *Service) processPeriod(ctx context.Context, now time.Time) {
	now = now.UTC()
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	cutoffDay := s.cutoffDay
	if cutoffDay > lastDay {
		cutoffDay = lastDay
	}
	if now.Day() < cutoffDay {
		return
	}
	cutoff := time.Date(now.Year(), now.Month(), cutoffDay, 0, 0, 0, 0, time.UTC)

	pending, err := s.invoicer.PendingPartners(ctx, cutoff)
	if err != nil {
		zap.L().Error("Failed to fetch partners for billing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, partnerID := range pending {
		partnerID := partnerID

		if _, loaded := billingPartners.LoadOrStore(partnerID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer billingPartners.Delete(partnerID)
				return s.invoicePartner(ctx, partnerID, cutoff)
			})
			if err != nil {
				billingPartners.Delete(partnerID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error billing partners", zap.Error(err))
	}
}

func (s *Service) invoicePartner(ctx context.Context, partnerID string, cutoff time.Time) error {
	invoice, err := s.invoicer.GenerateForPartner(ctx, partnerID, cutoff)
	if err != nil {
		return fmt.Errorf("failed to invoice partner %s: %w", partnerID, err)
	}
	if invoice == nil {
		return nil
	}

	zap.L().Info("Invoice created",
		zap.String("invoiceID", invoice.ID),
		zap.String("partnerID", invoice.PartnerID),
		zap.Float64("amount", invoice.Amount),
	)

	if s.webhookURL == "" {
		return nil
	}
	return s.notify(invoice)
}

type webhookPayload struct {
	InvoiceID string  `json:"invoice_id"`
	PartnerID string  `json:"partner_id"`
	Period    string  `json:"period"`
	Amount    float64 `json:"amount"`
	DueDate   string  `json:"due_date"`
	Status    string  `json:"status"`
}

func (s *Service) notify(invoice *domain.Invoice) error {
	body, err := json.Marshal(webhookPayload{
		InvoiceID: invoice.ID,
		PartnerID: invoice.PartnerID,
		Period:    invoice.Period,
		Amount:    invoice.Amount,
		DueDate:   money.YMD(invoice.DueDate),
		Status:    invoice.Status,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal invoice %s: %w", invoice.ID, err)
	}

	statusCode, _, err := s.client.Post(s.webhookURL, nil, body)
	if err != nil {
		return fmt.Errorf("webhook delivery for invoice %s failed: %w", invoice.ID, err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook for invoice %s rejected with status %d", invoice.ID, statusCode)
	}
	return nil
}
