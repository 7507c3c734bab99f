package domain

import "time"

const (
	CodeKindPartner   = "partner"
	CodeKindAffiliate = "affiliate"

	StatusActive = "active"

	InvoiceStatusPending = "pending"
	InvoiceStatusReview  = "review"
	InvoiceStatusPaid    = "paid"

	RoleAdmin     = "admin"
	RoleExecutive = "executive"
	RoleFinance   = "finance"
	RolePartner   = "partner"

	DefaultAccountType = "standard"
)

// Account is an operator of the dashboard (admin, executive, finance or a
// partner-scoped login).
type Account struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	PartnerID    *string   `db:"partner_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type Partner struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Region     string    `db:"region"`
	Status     string    `db:"status"`
	PartnerCut *float64  `db:"partner_cut"`
	CreatedAt  time.Time `db:"created_at"`
}

type Affiliate struct {
	ID         string    `db:"id"`
	PartnerID  string    `db:"partner_id"`
	Name       string    `db:"name"`
	Region     string    `db:"region"`
	Status     string    `db:"status"`
	PartnerCut *float64  `db:"partner_cut"`
	CreatedAt  time.Time `db:"created_at"`
}

// Code is a referral code. Affiliate-kind codes always reference both the
// issuing affiliate and its parent partner.
type Code struct {
	ID                int       `db:"id"`
	Value             string    `db:"value"`
	Kind              string    `db:"kind"`
	Status            string    `db:"status"`
	MaxUses           *int      `db:"max_uses"`
	CurrentUses       int       `db:"current_uses"`
	PartnerID         string    `db:"partner_id"`
	AffiliateID       *string   `db:"affiliate_id"`
	PartnerOverride   *float64  `db:"partner_override"`
	AffiliateOverride *float64  `db:"affiliate_override"`
	Currency          string    `db:"currency"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// User is a referred end user registered against a code. Immutable after
// creation except for status.
type User struct {
	ID                int       `db:"id"`
	PartnerID         string    `db:"partner_id"`
	AffiliateID       *string   `db:"affiliate_id"`
	CodeID            int       `db:"code_id"`
	CodeValue         string    `db:"code_value"`
	Email             string    `db:"email"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	Region            string    `db:"region"`
	AccountType       string    `db:"account_type"`
	AppID             string    `db:"app_id"`
	Source            string    `db:"source"`
	Status            string    `db:"status"`
	PartnerOverride   *float64  `db:"partner_override"`
	AffiliateOverride *float64  `db:"affiliate_override"`
	PartnerCut        *float64  `db:"partner_cut"`
	CreatedAt         time.Time `db:"created_at"`
}

// Payout is the money owed to a partner and an affiliate for one user.
type Payout struct {
	Partner   float64
	Affiliate float64
}

func (p Payout) Total() float64 {
	return p.Partner + p.Affiliate
}

type Invoice struct {
	ID                   string    `db:"id"`
	PartnerID            string    `db:"partner_id"`
	PartnerName          string    `db:"partner_name"`
	Period               string    `db:"period"`
	CutoffDate           time.Time `db:"cutoff_date"`
	CutoffDay            int       `db:"cutoff_day"`
	DueDate              time.Time `db:"due_date"`
	Amount               float64   `db:"amount"`
	PayoutDirect         float64   `db:"payout_direct"`
	PayoutFromAffiliates float64   `db:"payout_from_affiliates"`
	AffiliatePayout      float64   `db:"affiliate_payout"`
	UsersCount           int       `db:"users_count"`
	Status               string    `db:"status"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// InvoiceHistoryEntry is an append-only audit record written when an
// invoice transitions to paid.
type InvoiceHistoryEntry struct {
	ID         string    `db:"id"`
	InvoiceID  string    `db:"invoice_id"`
	PartnerID  string    `db:"partner_id"`
	Status     string    `db:"status"`
	Amount     float64   `db:"amount"`
	PaymentRef string    `db:"payment_ref"`
	ChangedAt  time.Time `db:"changed_at"`
}
