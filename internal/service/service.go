package service

import (
	"partnerhub/internal/billing"
	"partnerhub/internal/handlers/auth"
	"partnerhub/internal/handlers/codes"
	"partnerhub/internal/handlers/invoices"
	"partnerhub/internal/handlers/partners"
	"partnerhub/internal/handlers/reports"
	"partnerhub/internal/handlers/users"

	pkgauth "partnerhub/pkg/auth"

	"partnerhub/internal/config"
	"partnerhub/internal/pg"
	"partnerhub/internal/repo"
	authservice "partnerhub/internal/service/authservice"
	codeservice "partnerhub/internal/service/codeservice"
	invoiceservice "partnerhub/internal/service/invoiceservice"
	partnerservice "partnerhub/internal/service/partnerservice"
	summaryservice "partnerhub/internal/service/summaryservice"
)

type Services struct {
	AuthService    auth.Service
	PartnerService partners.Service
	CodeService    codes.Service
	UserService    users.Service
	SummaryService reports.Service
	InvoiceService invoices.Service

	// Invoicer is the same invoice service, narrowed for the background
	// billing runner.
	Invoicer billing.Invoicer
}

func New(repo *repo.Repositories, txManager pg.TXManager, tables config.PayoutTables) *Services {
	authService := authservice.New(repo.AccountRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	partnerService := partnerservice.New(repo.PartnerRepo, repo.AffiliateRepo)
	codeService := codeservice.New(repo.CodeRepo, repo.UserRepo, repo.PartnerRepo, repo.AffiliateRepo, txManager)
	summaryService := summaryservice.New(repo.UserRepo, repo.PartnerRepo, repo.AffiliateRepo, repo.CodeRepo, tables)
	invoiceService := invoiceservice.New(repo.InvoiceRepo, repo.PartnerRepo, summaryService, tables)

	return &Services{
		AuthService:    authService,
		PartnerService: partnerService,
		CodeService:    codeService,
		UserService:    codeService,
		SummaryService: summaryService,
		InvoiceService: invoiceService,
		Invoicer:       invoiceService,
	}
}
