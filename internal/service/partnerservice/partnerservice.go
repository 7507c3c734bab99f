package partnerservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"partnerhub/internal/domain"

	"go.uber.org/zap"
)

//go:generate mockgen -source=partnerservice.go -destination=partnerservice_mock.go -package=partnerservice

type PartnerRepo interface {
	Save(ctx context.Context, partner *domain.Partner) error
	FindByID(ctx context.Context, id string) (*domain.Partner, error)
	ListAll(ctx context.Context) ([]domain.Partner, error)
}

type AffiliateRepo interface {
	Save(ctx context.Context, affiliate *domain.Affiliate) error
	FindByID(ctx context.Context, id string) (*domain.Affiliate, error)
	ListAll(ctx context.Context) ([]domain.Affiliate, error)
	ListByPartnerID(ctx context.Context, partnerID string) ([]domain.Affiliate, error)
}

var (
	ErrNameRequired         = errors.New("a name is required")
	ErrPartnerNotFound      = errors.New("partner not found")
	ErrPartnerAlreadyExists = errors.New("partner id already exists")
)

type Service struct {
	partnerRepo   PartnerRepo
	affiliateRepo AffiliateRepo
}

func New(partnerRepo PartnerRepo, affiliateRepo AffiliateRepo) *Service {
	return &Service{
		partnerRepo:   partnerRepo,
		affiliateRepo: affiliateRepo,
	}
}

// CreatePartner registers a partner. An empty id gets the next one in the
// PT-NNN sequence; an explicit id must be free.
func (s *Service) CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return nil, ErrNameRequired
	}

	if partner.ID == "" {
		existing, err := s.partnerRepo.ListAll(ctx)
		if err != nil {
			zap.L().Error("can't list partners", zap.Error(err))
			return nil, err
		}
		ids := make([]string, 0, len(existing))
		for _, p := range existing {
			ids = append(ids, p.ID)
		}
		partner.ID = nextID("PT", ids)
	} else {
		partner.ID = strings.ToUpper(strings.TrimSpace(partner.ID))
		found, err := s.partnerRepo.FindByID(ctx, partner.ID)
		if err != nil {
			zap.L().Error("can't check partner id", zap.String("partnerID", partner.ID), zap.Error(err))
			return nil, err
		}
		if found != nil {
			return nil, ErrPartnerAlreadyExists
		}
	}

	if partner.Status == "" {
		partner.Status = domain.StatusActive
	}
	partner.CreatedAt = time.Now()

	if err := s.partnerRepo.Save(ctx, partner); err != nil {
		zap.L().Error("can't save partner", zap.String("partnerID", partner.ID), zap.Error(err))
		return nil, err
	}
	return partner, nil
}

func (s *Service) GetPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, err
	}
	return partners, nil
}

func (s *Service) GetPartner(ctx context.Context, id string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", id), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}
	return partner, nil
}

// CreateAffiliate registers an affiliate under an existing partner,
// assigning the next AF-NNN id when none is given.
func (s *Service) CreateAffiliate(ctx context.Context, affiliate *domain.Affiliate) (*domain.Affiliate, error) {
	if strings.TrimSpace(affiliate.Name) == "" {
		return nil, ErrNameRequired
	}

	partner, err := s.partnerRepo.FindByID(ctx, affiliate.PartnerID)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", affiliate.PartnerID), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	if affiliate.ID == "" {
		existing, err := s.affiliateRepo.ListAll(ctx)
		if err != nil {
			zap.L().Error("can't list affiliates", zap.Error(err))
			return nil, err
		}
		ids := make([]string, 0, len(existing))
		for _, a := range existing {
			ids = append(ids, a.ID)
		}
		affiliate.ID = nextID("AF", ids)
	} else {
		affiliate.ID = strings.ToUpper(strings.TrimSpace(affiliate.ID))
	}

	if affiliate.Status == "" {
		affiliate.Status = domain.StatusActive
	}
	affiliate.CreatedAt = time.Now()

	if err := s.affiliateRepo.Save(ctx, affiliate); err != nil {
		zap.L().Error("can't save affiliate", zap.String("affiliateID", affiliate.ID), zap.Error(err))
		return nil, err
	}
	return affiliate, nil
}

// GetAffiliates returns the roster of a partner.
func (s *Service) GetAffiliates(ctx context.Context, partnerID string) ([]domain.Affiliate, error) {
	partner, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	affiliates, err := s.affiliateRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't list affiliates", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	return affiliates, nil
}

// nextID finds the highest numeric suffix among ids with the given prefix
// and returns the next one, zero-padded to three digits.
func nextID(prefix string, ids []string) string {
	max := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix+"-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}
