package users

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

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User, codeValue string) (*domain.User, error)
}

type UserHandler struct {
	codeService Service
}

func New(codeService Service) *UserHandler {
	return &UserHandler{
		codeService: codeService,
	}
}

// Register godoc
//
//	@Summary		Register a referred user
//	@Description	Record an end user against a referral code; the code must be active and have capacity left
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterUserRequestDTO	true	"User body"
//	@Success		201		{object}	dto.UserDTO
//	@Failure		400		{object}	utils.Response	"Invalid code or request body"
//	@Failure		404		{object}	utils.Response	"Code not found"
//	@Failure		409		{object}	utils.Response	"Code inactive or exhausted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/register [post]
//	@Security		ApiKeyAuth
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "An email is required")
		return
	}

	user, err := h.codeService.RegisterUser(r.Context(), &domain.User{
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Region:            req.Region,
		AccountType:       req.ResolvedAccountType(),
		AppID:             req.AppID,
		PartnerOverride:   req.PartnerOverride,
		AffiliateOverride: req.AffiliateOverride,
	}, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, codeservice.ErrInvalidCode):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, codeservice.ErrCodeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, codeservice.ErrCodeInactive), errors.Is(err, codeservice.ErrCodeExhausted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.UserDTO{
		ID:          user.ID,
		PartnerID:   user.PartnerID,
		AffiliateID: user.AffiliateID,
		CodeID:      user.CodeID,
		CodeValue:   user.CodeValue,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Region:      user.Region,
		AccountType: user.AccountType,
		AppID:       user.AppID,
		Source:      user.Source,
		Status:      user.Status,
		CreatedAt:   user.CreatedAt,
	})
}
