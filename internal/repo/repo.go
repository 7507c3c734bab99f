package repo

import (
	"partnerhub/internal/pg"
	accountrepo "partnerhub/internal/repo/account-repo"
	affiliaterepo "partnerhub/internal/repo/affiliate-repo"
	coderepo "partnerhub/internal/repo/code-repo"
	invoicerepo "partnerhub/internal/repo/invoice-repo"
	partnerrepo "partnerhub/internal/repo/partner-repo"
	userrepo "partnerhub/internal/repo/user-repo"
)

// Repositories holds the concrete repositories. Several services narrow
// each of them to their own interface.
type Repositories struct {
	AccountRepo   *accountrepo.Repository
	PartnerRepo   *partnerrepo.Repository
	AffiliateRepo *affiliaterepo.Repository
	CodeRepo      *coderepo.Repository
	UserRepo      *userrepo.Repository
	InvoiceRepo   *invoicerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:   accountrepo.New(conn),
		PartnerRepo:   partnerrepo.New(conn),
		AffiliateRepo: affiliaterepo.New(conn),
		CodeRepo:      coderepo.New(conn),
		UserRepo:      userrepo.New(conn),
		InvoiceRepo:   invoicerepo.New(conn),
	}
}
