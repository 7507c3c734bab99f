package dto

import (
	"strings"
	"time"
)

type RegisterUserRequestDTO struct {
	Code              string   `json:"code" validate:"required" example:"PT-ABC12"`
	Email             string   `json:"email" validate:"required,email" example:"user@example.com"`
	FirstName         string   `json:"first_name" example:"Dana"`
	LastName          string   `json:"last_name" example:"Reyes"`
	Region            string   `json:"region" example:"Latin America"`
	AccountType       string   `json:"account_type" example:"premium"`
	Segment           string   `json:"segment,omitempty" example:"premium"`
	Tier              string   `json:"tier,omitempty" example:"premium"`
	Plan              string   `json:"plan,omitempty" example:"premium"`
	AppID             string   `json:"app_id" example:"app-main"`
	PartnerOverride   *float64 `json:"partner_override,omitempty" example:"7.5"`
	AffiliateOverride *float64 `json:"affiliate_override,omitempty" example:"15"`
}

// ResolvedAccountType folds the legacy alias fields into the canonical
// account type. First non-empty of account_type, segment, tier, plan wins.
func (r RegisterUserRequestDTO) ResolvedAccountType() string {
	for _, candidate := range []string{r.AccountType, r.Segment, r.Tier, r.Plan} {
		if v := strings.TrimSpace(candidate); v != "" {
			return v
		}
	}
	return ""
}

type UserDTO struct {
	ID          int       `json:"id" example:"42"`
	PartnerID   string    `json:"partner_id" example:"PT-001"`
	AffiliateID *string   `json:"affiliate_id,omitempty" example:"AF-001"`
	CodeID      int       `json:"code_id" example:"1"`
	CodeValue   string    `json:"code_value" example:"PT-ABC12"`
	Email       string    `json:"email" example:"user@example.com"`
	FirstName   string    `json:"first_name" example:"Dana"`
	LastName    string    `json:"last_name" example:"Reyes"`
	Region      string    `json:"region" example:"Latin America"`
	AccountType string    `json:"account_type" example:"premium"`
	AppID       string    `json:"app_id" example:"app-main"`
	Source      string    `json:"source" example:"affiliate"`
	Status      string    `json:"status" example:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
