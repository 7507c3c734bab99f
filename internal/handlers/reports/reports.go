package reports

import (
	"context"
	"errors"
	"net/http"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/summaryservice"
	"partnerhub/pkg/auth"
	"partnerhub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=reports.go -destination=reports_mock.go -package=reports

type Service interface {
	GlobalMetrics(ctx context.Context) (*summaryservice.GlobalMetrics, error)
	SummaryForCode(ctx context.Context, identifier string) (*summaryservice.CodeSummary, error)
	SummaryForPartner(ctx context.Context, partnerID string) (*summaryservice.PartnerSummary, error)
}

type ReportHandler struct {
	summaryService Service
}

func New(summaryService Service) *ReportHandler {
	return &ReportHandler{
		summaryService: summaryService,
	}
}

// Global godoc
//
//	@Summary		Global metrics
//	@Description	Overall totals plus per-app, per-month and per-region buckets across all partners
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	summaryservice.GlobalMetrics
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/global [get]
//	@Security		ApiKeyAuth
func (h *ReportHandler) Global(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.summaryService.GlobalMetrics(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, metrics)
}

// Code godoc
//
//	@Summary	Summary for one referral code
//	@Tags		Reports
//	@Produce	json
//	@Param		code	path		string	true	"Code id or value"
//	@Success	200		{object}	summaryservice.CodeSummary
//	@Failure	404		{object}	utils.Response	"Code not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/reports/codes/{code} [get]
//	@Security	ApiKeyAuth
func (h *ReportHandler) Code(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "code")
	summary, err := h.summaryService.SummaryForCode(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, summaryservice.ErrCodeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// Partner godoc
//
//	@Summary		Summary for one partner
//	@Description	Direct vs affiliate-sourced split with the three payout views; partner-scoped tokens may only read their own partner
//	@Tags			Reports
//	@Produce		json
//	@Param			id	path		string	true	"Partner id"
//	@Success		200	{object}	dto.PartnerReportDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Partner not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/partners/{id} [get]
//	@Security		ApiKeyAuth
func (h *ReportHandler) Partner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "id")

	if auth.RoleFromContext(r.Context()) == domain.RolePartner &&
		auth.PartnerScopeFromContext(r.Context()) != partnerID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	summary, err := h.summaryService.SummaryForPartner(r.Context(), partnerID)
	if err != nil {
		if errors.Is(err, summaryservice.ErrPartnerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	affiliates := make([]dto.AffiliateDTO, 0, len(summary.Affiliates))
	for i := range summary.Affiliates {
		affiliate := &summary.Affiliates[i]
		affiliates = append(affiliates, dto.AffiliateDTO{
			ID:         affiliate.ID,
			PartnerID:  affiliate.PartnerID,
			Name:       affiliate.Name,
			Region:     affiliate.Region,
			Status:     affiliate.Status,
			PartnerCut: affiliate.PartnerCut,
			CreatedAt:  affiliate.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PartnerReportDTO{
		Partner: dto.PartnerDTO{
			ID:         summary.Partner.ID,
			Name:       summary.Partner.Name,
			Region:     summary.Partner.Region,
			Status:     summary.Partner.Status,
			PartnerCut: summary.Partner.PartnerCut,
			CreatedAt:  summary.Partner.CreatedAt,
		},
		Users:         summary.Users,
		Payouts:       summary.Payouts,
		MonthlySeries: summary.MonthlySeries,
		Affiliates:    affiliates,
	})
}
