package codeservice

import (
	"context"
	"errors"
	"time"

	"partnerhub/internal/domain"
	"partnerhub/internal/pg"
	"partnerhub/pkg/validate"

	"go.uber.org/zap"
)

//go:generate mockgen -source=codeservice.go -destination=codeservice_mock.go -package=codeservice

type CodeRepo interface {
	FindByValue(ctx context.Context, value string) (*domain.Code, error)
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Code, error)
	Save(ctx context.Context, code *domain.Code) error
	ListAll(ctx context.Context) ([]domain.Code, error)
	// ConsumeUse increments current_uses by one and stamps updated_at,
	// but only while the code is active and under its max. Reports
	// whether a row was updated.
	ConsumeUse(ctx context.Context, codeID int) (bool, error)
}

type UserRepo interface {
	Save(ctx context.Context, user *domain.User) error
}

type PartnerRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Partner, error)
}

type AffiliateRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Affiliate, error)
}

var (
	ErrInvalidCode         = errors.New("code value is not in the canonical format")
	ErrCodeAlreadyExists   = errors.New("code value already exists")
	ErrCodeNotFound        = errors.New("code not found")
	ErrCodeInactive        = errors.New("code is not active")
	ErrCodeExhausted       = errors.New("code has reached its maximum uses")
	ErrPartnerIDRequired   = errors.New("codes require a partner id")
	ErrPartnerNotFound     = errors.New("partner not found")
	ErrAffiliateNotFound   = errors.New("affiliate not found")
	ErrAffiliateMismatch   = errors.New("affiliate does not belong to the partner")
	ErrAffiliateIDRequired = errors.New("affiliate codes require an affiliate id")
)

type Service struct {
	codeRepo      CodeRepo
	userRepo      UserRepo
	partnerRepo   PartnerRepo
	affiliateRepo AffiliateRepo
	txManager     pg.TXManager
}

func New(codeRepo CodeRepo, userRepo UserRepo, partnerRepo PartnerRepo, affiliateRepo AffiliateRepo, txManager pg.TXManager) *Service {
	return &Service{
		codeRepo:      codeRepo,
		userRepo:      userRepo,
		partnerRepo:   partnerRepo,
		affiliateRepo: affiliateRepo,
		txManager:     txManager,
	}
}

// CreateCode registers a new referral code. The value is normalized to the
// canonical hyphenated form; the kind is derived from the prefix. Affiliate
// codes must reference an existing affiliate of the owning partner.
func (s *Service) CreateCode(ctx context.Context, code *domain.Code) (*domain.Code, error) {
	value := validate.NormalizeCode(code.Value)
	if value == "" {
		return nil, ErrInvalidCode
	}
	code.Value = value
	if validate.IsAffiliateCode(value) {
		code.Kind = domain.CodeKindAffiliate
	} else {
		code.Kind = domain.CodeKindPartner
	}

	if code.PartnerID == "" {
		return nil, ErrPartnerIDRequired
	}
	partner, err := s.partnerRepo.FindByID(ctx, code.PartnerID)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", code.PartnerID), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	if code.Kind == domain.CodeKindAffiliate {
		if code.AffiliateID == nil || *code.AffiliateID == "" {
			return nil, ErrAffiliateIDRequired
		}
		affiliate, err := s.affiliateRepo.FindByID(ctx, *code.AffiliateID)
		if err != nil {
			zap.L().Error("can't find affiliate", zap.String("affiliateID", *code.AffiliateID), zap.Error(err))
			return nil, err
		}
		if affiliate == nil {
			return nil, ErrAffiliateNotFound
		}
		if affiliate.PartnerID != code.PartnerID {
			return nil, ErrAffiliateMismatch
		}
	} else {
		code.AffiliateID = nil
	}

	existing, err := s.codeRepo.FindByValue(ctx, value)
	if err != nil {
		zap.L().Error("can't check code value", zap.String("value", value), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("code already exists", zap.String("value", value))
		return nil, ErrCodeAlreadyExists
	}

	if code.Status == "" {
		code.Status = domain.StatusActive
	}
	if code.Currency == "" {
		code.Currency = "USD"
	}
	now := time.Now()
	code.CreatedAt = now
	code.UpdatedAt = now

	if err := s.codeRepo.Save(ctx, code); err != nil {
		zap.L().Error("can't save code", zap.String("value", value), zap.Error(err))
		return nil, err
	}
	return code, nil
}

// CanUse reports whether a code accepts another registration: it must be
// active and, when capped, still under its max.
func CanUse(code *domain.Code) bool {
	if code == nil || code.Status != domain.StatusActive {
		return false
	}
	if code.MaxUses == nil {
		return true
	}
	return code.CurrentUses < *code.MaxUses
}

// GetCodes returns all referral codes.
func (s *Service) GetCodes(ctx context.Context) ([]domain.Code, error) {
	codes, err := s.codeRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list codes", zap.Error(err))
		return nil, err
	}
	return codes, nil
}

// GetCode resolves a code by numeric id or by value.
func (s *Service) GetCode(ctx context.Context, identifier string) (*domain.Code, error) {
	code, err := s.codeRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		zap.L().Error("can't find code", zap.String("identifier", identifier), zap.Error(err))
		return nil, err
	}
	if code == nil {
		return nil, ErrCodeNotFound
	}
	return code, nil
}

// RegisterUser records a referred user against a code. The user insert and
// the use-count increment run in one transaction; the increment is a
// conditional update so the cap holds under concurrent registrations.
func (s *Service) RegisterUser(ctx context.Context, user *domain.User, codeValue string) (*domain.User, error) {
	value := validate.NormalizeCode(codeValue)
	if value == "" {
		return nil, ErrInvalidCode
	}

	code, err := s.codeRepo.FindByValue(ctx, value)
	if err != nil {
		zap.L().Error("can't find code", zap.String("value", value), zap.Error(err))
		return nil, err
	}
	if code == nil {
		return nil, ErrCodeNotFound
	}
	if code.Status != domain.StatusActive {
		zap.L().Info("registration against inactive code", zap.String("value", value))
		return nil, ErrCodeInactive
	}
	if !CanUse(code) {
		zap.L().Info("registration against exhausted code", zap.String("value", value))
		return nil, ErrCodeExhausted
	}

	user.PartnerID = code.PartnerID
	user.AffiliateID = code.AffiliateID
	user.CodeID = code.ID
	user.CodeValue = code.Value
	if user.PartnerOverride == nil {
		user.PartnerOverride = code.PartnerOverride
	}
	if user.AffiliateOverride == nil {
		user.AffiliateOverride = code.AffiliateOverride
	}
	// The attribution source always comes from the code kind; a client-chosen
	// tag could disagree with the roster and skew payouts.
	user.Source = code.Kind
	if user.AccountType == "" {
		user.AccountType = domain.DefaultAccountType
	}
	user.Status = domain.StatusActive
	user.CreatedAt = time.Now()

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Save(ctx, user); err != nil {
			zap.L().Error("can't save user", zap.String("code", value), zap.Error(err))
			return err
		}
		consumed, err := s.codeRepo.ConsumeUse(ctx, code.ID)
		if err != nil {
			zap.L().Error("can't consume code use", zap.String("code", value), zap.Error(err))
			return err
		}
		if !consumed {
			return ErrCodeExhausted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	code.CurrentUses++
	return user, nil
}
