package partners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/partnerservice"
	"partnerhub/pkg/utils"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=partners.go -destination=partners_mock.go -package=partners

type Service interface {
	CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error)
	GetPartners(ctx context.Context) ([]domain.Partner, error)
	GetPartner(ctx context.Context, id string) (*domain.Partner, error)
	CreateAffiliate(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error)
	GetAffiliates(ctx context.Context, partnerID string) ([]domain.Affiliate, error)
}

type PartnerHandler struct {
	partnerService Service
}

func New(partnerService Service) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

func toPartnerDTO(partner *domain.Partner) dto.PartnerDTO {
	return dto.PartnerDTO{
		ID:         partner.ID,
		Name:       partner.Name,
		Region:     partner.Region,
		Status:     partner.Status,
		PartnerCut: partner.PartnerCut,
		CreatedAt:  partner.CreatedAt,
	}
}

func toAffiliateDTO(affiliate *domain.Affiliate) dto.AffiliateDTO {
	return dto.AffiliateDTO{
		ID:         affiliate.ID,
		PartnerID:  affiliate.PartnerID,
		Name:       affiliate.Name,
		Region:     affiliate.Region,
		Status:     affiliate.Status,
		PartnerCut: affiliate.PartnerCut,
		CreatedAt:  affiliate.CreatedAt,
	}
}

// CreatePartner godoc
//
//	@Summary		Create a partner
//	@Description	Register a partner; an empty id gets the next one in the PT-NNN sequence
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePartnerRequestDTO	true	"Partner body"
//	@Success		201		{object}	dto.PartnerDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Partner id already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners [post]
//	@Security		ApiKeyAuth
func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartnerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	partner, err := h.partnerService.CreatePartner(r.Context(), &domain.Partner{
		ID:         req.ID,
		Name:       req.Name,
		Region:     req.Region,
		PartnerCut: req.PartnerCut,
	})
	if err != nil {
		switch {
		case errors.Is(err, partnerservice.ErrNameRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, partnerservice.ErrPartnerAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPartnerDTO(partner))
}

// GetPartners godoc
//
//	@Summary	List partners
//	@Tags		Partners
//	@Produce	json
//	@Success	200	{array}		dto.PartnerDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/partners [get]
//	@Security	ApiKeyAuth
func (h *PartnerHandler) GetPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerService.GetPartners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.PartnerDTO, 0, len(partners))
	for i := range partners {
		response = append(response, toPartnerDTO(&partners[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetPartner godoc
//
//	@Summary	Get one partner
//	@Tags		Partners
//	@Produce	json
//	@Param		id	path		string	true	"Partner id"
//	@Success	200	{object}	dto.PartnerDTO
//	@Failure	404	{object}	utils.Response	"Partner not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/partners/{id} [get]
//	@Security	ApiKeyAuth
func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	partner, err := h.partnerService.GetPartner(r.Context(), id)
	if err != nil {
		if errors.Is(err, partnerservice.ErrPartnerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPartnerDTO(partner))
}

// CreateAffiliate godoc
//
//	@Summary		Create an affiliate under a partner
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Partner id"
//	@Param			request	body		dto.CreateAffiliateRequestDTO	true	"Affiliate body"
//	@Success		201		{object}	dto.AffiliateDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Partner not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/partners/{id}/affiliates [post]
//	@Security		ApiKeyAuth
func (h *PartnerHandler) CreateAffiliate(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "id")

	var req dto.CreateAffiliateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	affiliate, err := h.partnerService.CreateAffiliate(r.Context(), &domain.Affiliate{
		ID:         req.ID,
		PartnerID:  partnerID,
		Name:       req.Name,
		Region:     req.Region,
		PartnerCut: req.PartnerCut,
	})
	if err != nil {
		switch {
		case errors.Is(err, partnerservice.ErrNameRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, partnerservice.ErrPartnerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAffiliateDTO(affiliate))
}

// GetAffiliates godoc
//
//	@Summary	List a partner's affiliates
//	@Tags		Partners
//	@Produce	json
//	@Param		id	path		string	true	"Partner id"
//	@Success	200	{array}		dto.AffiliateDTO
//	@Failure	404	{object}	utils.Response	"Partner not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/partners/{id}/affiliates [get]
//	@Security	ApiKeyAuth
func (h *PartnerHandler) GetAffiliates(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "id")
	affiliates, err := h.partnerService.GetAffiliates(r.Context(), partnerID)
	if err != nil {
		if errors.Is(err, partnerservice.ErrPartnerNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AffiliateDTO, 0, len(affiliates))
	for i := range affiliates {
		response = append(response, toAffiliateDTO(&affiliates[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
