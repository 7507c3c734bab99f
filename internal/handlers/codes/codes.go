package codes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/codeservice"
	"partnerhub/pkg/utils"
)

//go:generate mockgen -source=codes.go -destination=codes_mock.go -package=codes

type Service interface {
	CreateCode(ctx context.Context, code *domain.Code) (*domain.Code, error)
	GetCodes(ctx context.Context) ([]domain.Code, error)
}

type CodeHandler struct {
	codeService Service
}

func New(codeService Service) *CodeHandler {
	return &CodeHandler{
		codeService: codeService,
	}
}

func toCodeDTO(code *domain.Code) dto.CodeDTO {
	return dto.CodeDTO{
		ID:                code.ID,
		Value:             code.Value,
		Kind:              code.Kind,
		Status:            code.Status,
		MaxUses:           code.MaxUses,
		CurrentUses:       code.CurrentUses,
		PartnerID:         code.PartnerID,
		AffiliateID:       code.AffiliateID,
		PartnerOverride:   code.PartnerOverride,
		AffiliateOverride: code.AffiliateOverride,
		Currency:          code.Currency,
		CreatedAt:         code.CreatedAt,
		UpdatedAt:         code.UpdatedAt,
	}
}

// CreateCode godoc
//
//	@Summary		Create a referral code
//	@Description	Register a referral code; the kind follows the PT-/AF- prefix and affiliate codes must belong to an affiliate of the owning partner
//	@Tags			Codes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCodeRequestDTO	true	"Code body"
//	@Success		201		{object}	dto.CodeDTO
//	@Failure		400		{object}	utils.Response	"Invalid code"
//	@Failure		404		{object}	utils.Response	"Partner or affiliate not found"
//	@Failure		409		{object}	utils.Response	"Code value already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/codes [post]
//	@Security		ApiKeyAuth
func (h *CodeHandler) CreateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	code, err := h.codeService.CreateCode(r.Context(), &domain.Code{
		Value:             req.Value,
		Status:            req.Status,
		MaxUses:           req.MaxUses,
		PartnerID:         req.PartnerID,
		AffiliateID:       req.AffiliateID,
		PartnerOverride:   req.PartnerOverride,
		AffiliateOverride: req.AffiliateOverride,
		Currency:          req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, codeservice.ErrInvalidCode),
			errors.Is(err, codeservice.ErrPartnerIDRequired),
			errors.Is(err, codeservice.ErrAffiliateIDRequired),
			errors.Is(err, codeservice.ErrAffiliateMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, codeservice.ErrPartnerNotFound),
			errors.Is(err, codeservice.ErrAffiliateNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, codeservice.ErrCodeAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCodeDTO(code))
}

// GetCodes godoc
//
//	@Summary	List referral codes
//	@Tags		Codes
//	@Produce	json
//	@Success	200	{array}		dto.CodeDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/codes [get]
//	@Security	ApiKeyAuth
func (h *CodeHandler) GetCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.codeService.GetCodes(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.CodeDTO, 0, len(codes))
	for i := range codes {
		response = append(response, toCodeDTO(&codes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
