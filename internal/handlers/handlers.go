package handlers

import (
	"net/http"

	_ "partnerhub/docs"
	"partnerhub/internal/domain"
	authhandlers "partnerhub/internal/handlers/auth"
	codeshandlers "partnerhub/internal/handlers/codes"
	invoiceshandlers "partnerhub/internal/handlers/invoices"
	partnershandlers "partnerhub/internal/handlers/partners"
	reportshandlers "partnerhub/internal/handlers/reports"
	usershandlers "partnerhub/internal/handlers/users"
	"partnerhub/internal/service"
	"partnerhub/pkg/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	CreatePartner(w http.ResponseWriter, r *http.Request)
	GetPartners(w http.ResponseWriter, r *http.Request)
	GetPartner(w http.ResponseWriter, r *http.Request)
	CreateAffiliate(w http.ResponseWriter, r *http.Request)
	GetAffiliates(w http.ResponseWriter, r *http.Request)
}

type CodeHandler interface {
	CreateCode(w http.ResponseWriter, r *http.Request)
	GetCodes(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Global(w http.ResponseWriter, r *http.Request)
	Code(w http.ResponseWriter, r *http.Request)
	Partner(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	PartnerHandler PartnerHandler
	CodeHandler    CodeHandler
	UserHandler    UserHandler
	ReportHandler  ReportHandler
	InvoiceHandler InvoiceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		PartnerHandler: partnershandlers.New(s.PartnerService),
		CodeHandler:    codeshandlers.New(s.CodeService),
		UserHandler:    usershandlers.New(s.UserService),
		ReportHandler:  reportshandlers.New(s.SummaryService),
		InvoiceHandler: invoiceshandlers.New(s.InvoiceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		// Referred-user registration comes from partner-embedded signup
		// forms, so it stays outside the operator auth wall.
		r.Post("/users/register", h.UserHandler.Register)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			staff := auth.RequireRoles(domain.RoleAdmin, domain.RoleExecutive, domain.RoleFinance)
			writers := auth.RequireRoles(domain.RoleAdmin, domain.RoleExecutive)
			billing := auth.RequireRoles(domain.RoleAdmin, domain.RoleFinance)

			r.Route("/partners", func(r chi.Router) {
				r.With(writers).Post("/", h.PartnerHandler.CreatePartner)
				r.With(staff).Get("/", h.PartnerHandler.GetPartners)
				r.With(staff).Get("/{id}", h.PartnerHandler.GetPartner)
				r.With(writers).Post("/{id}/affiliates", h.PartnerHandler.CreateAffiliate)
				r.With(staff).Get("/{id}/affiliates", h.PartnerHandler.GetAffiliates)
			})
			r.Route("/codes", func(r chi.Router) {
				r.With(writers).Post("/", h.CodeHandler.CreateCode)
				r.With(staff).Get("/", h.CodeHandler.GetCodes)
			})
			r.Route("/reports", func(r chi.Router) {
				r.With(staff).Get("/global", h.ReportHandler.Global)
				r.With(staff).Get("/codes/{code}", h.ReportHandler.Code)
				// The handler enforces the own-partner restriction for
				// partner-scoped tokens.
				r.Get("/partners/{id}", h.ReportHandler.Partner)
			})
			r.Route("/invoices", func(r chi.Router) {
				r.With(writers).Post("/generate", h.InvoiceHandler.Generate)
				r.Get("/", h.InvoiceHandler.List)
				r.With(billing).Get("/history", h.InvoiceHandler.History)
				r.With(billing).Patch("/{id}/status", h.InvoiceHandler.SetStatus)
			})
		})
	})

	return r
}
