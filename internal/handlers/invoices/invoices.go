package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/invoiceservice"
	"partnerhub/pkg/auth"
	"partnerhub/pkg/utils"
	"partnerhub/pkg/validate"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=invoices.go -destination=invoices_mock.go -package=invoices

type Service interface {
	Generate(ctx context.Context, cutoffDate time.Time) ([]domain.Invoice, error)
	List(ctx context.Context, filter invoiceservice.Filter) ([]domain.Invoice, error)
	SetStatus(ctx context.Context, id, status, paymentRef string) (*domain.Invoice, error)
	History(ctx context.Context) ([]domain.InvoiceHistoryEntry, error)
}

type InvoiceHandler struct {
	invoiceService Service
}

func New(invoiceService Service) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Generate godoc
//
//	@Summary		Generate invoices for a billing period
//	@Description	Creates one pending invoice per partner with activity in the cutoff month. Already invoiced partners are skipped.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.GenerateInvoicesRequestDTO	true	"Cutoff date"
//	@Success		200		{array}		dto.InvoiceDTO
//	@Failure		400		{object}	utils.Response	"Invalid request format"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/generate [post]
//	@Security		ApiKeyAuth
func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateInvoicesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	cutoff, err := time.Parse("2006-01-02", req.CutoffDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "A cutoff_date in YYYY-MM-DD format is required")
		return
	}

	created, err := h.invoiceService.Generate(r.Context(), cutoff)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTOs(created))
}

// List godoc
//
//	@Summary		List invoices
//	@Description	Filterable by comma-separated statuses, partner and period. Partner-scoped tokens only see their own invoices.
//	@Tags			Invoices
//	@Produce		json
//	@Param			status		query		string	false	"Comma-separated statuses"	example(pending,review)
//	@Param			partner_id	query		string	false	"Partner id"				example(PT-001)
//	@Param			period		query		string	false	"Billing period"			example(2024-03)
//	@Success		200			{array}		dto.InvoiceDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices [get]
//	@Security		ApiKeyAuth
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := invoiceservice.Filter{
		PartnerID: r.URL.Query().Get("partner_id"),
		Period:    r.URL.Query().Get("period"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}
	if auth.RoleFromContext(r.Context()) == domain.RolePartner {
		filter.PartnerID = auth.PartnerScopeFromContext(r.Context())
	}

	invoices, err := h.invoiceService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTOs(invoices))
}

// SetStatus godoc
//
//	@Summary		Update invoice status
//	@Description	Marking an invoice paid requires a Luhn-valid payment reference and appends an audit history entry.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Invoice id"
//	@Param			body	body		dto.UpdateInvoiceStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.InvoiceDTO
//	@Failure		400		{object}	utils.Response	"Invalid request format"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Invoice not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id}/status [patch]
//	@Security		ApiKeyAuth
func (h *InvoiceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	var req dto.UpdateInvoiceStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if strings.EqualFold(strings.TrimSpace(req.Status), domain.InvoiceStatusPaid) &&
		!validate.IsLuhn(req.PaymentRef) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid payment reference is required to mark an invoice paid")
		return
	}

	invoice, err := h.invoiceService.SetStatus(r.Context(), invoiceID, req.Status, req.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, invoiceservice.ErrStatusRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, invoiceservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toInvoiceDTO(invoice))
}

// History godoc
//
//	@Summary	Invoice payment history
//	@Tags		Invoices
//	@Produce	json
//	@Success	200	{array}		dto.InvoiceHistoryEntryDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/invoices/history [get]
//	@Security	ApiKeyAuth
func (h *InvoiceHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.invoiceService.History(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	out := make([]dto.InvoiceHistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.InvoiceHistoryEntryDTO{
			ID:         entry.ID,
			InvoiceID:  entry.InvoiceID,
			PartnerID:  entry.PartnerID,
			Status:     entry.Status,
			Amount:     entry.Amount,
			PaymentRef: entry.PaymentRef,
			ChangedAt:  entry.ChangedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func toInvoiceDTO(invoice *domain.Invoice) dto.InvoiceDTO {
	return dto.InvoiceDTO{
		ID:                   invoice.ID,
		PartnerID:            invoice.PartnerID,
		PartnerName:          invoice.PartnerName,
		Period:               invoice.Period,
		CutoffDate:           invoice.CutoffDate.Format("2006-01-02"),
		CutoffDay:            invoice.CutoffDay,
		DueDate:              invoice.DueDate.Format("2006-01-02"),
		Amount:               invoice.Amount,
		PayoutDirect:         invoice.PayoutDirect,
		PayoutFromAffiliates: invoice.PayoutFromAffiliates,
		AffiliatePayout:      invoice.AffiliatePayout,
		UsersCount:           invoice.UsersCount,
		Status:               invoice.Status,
		CreatedAt:            invoice.CreatedAt,
		UpdatedAt:            invoice.UpdatedAt,
	}
}

func toInvoiceDTOs(invoices []domain.Invoice) []dto.InvoiceDTO {
	out := make([]dto.InvoiceDTO, 0, len(invoices))
	for i := range invoices {
		out = append(out, toInvoiceDTO(&invoices[i]))
	}
	return out
}
