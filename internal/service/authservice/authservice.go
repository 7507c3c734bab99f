package authservice

import (
	"context"
	"errors"
	"time"

	"partnerhub/internal/domain"
	"partnerhub/pkg/auth"

	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
	ErrPartnerIDRequired  = errors.New("partner-scoped accounts require a partner id")
)

var validRoles = map[string]struct{}{
	domain.RoleAdmin:     {},
	domain.RoleExecutive: {},
	domain.RoleFinance:   {},
	domain.RolePartner:   {},
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates an operator account. Accounts with the partner role must
// carry the partner id they are scoped to.
func (s *Service) Register(ctx context.Context, login, password, role string, partnerID *string) (*domain.Account, error) {
	if role == "" {
		role = domain.RolePartner
	}
	if _, ok := validRoles[role]; !ok {
		return nil, ErrUnknownRole
	}
	if role == domain.RolePartner && (partnerID == nil || *partnerID == "") {
		return nil, ErrPartnerIDRequired
	}

	existing, err := s.accountRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	account := &domain.Account{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         role,
		PartnerID:    partnerID,
	}
	newAccount, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("login", login), zap.String("role", role))
	return newAccount, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByLogin(ctx, login)
	if err != nil || account == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("login", login))
	return account, nil
}

func (s *Service) GenerateToken(account *domain.Account) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	partnerID := ""
	if account.PartnerID != nil {
		partnerID = *account.PartnerID
	}
	token, err := s.jwtService.GenerateJWT(account.ID, account.Role, partnerID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
