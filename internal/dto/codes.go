package dto

import "time"

type CreateCodeRequestDTO struct {
	Value             string   `json:"value" validate:"required" example:"PT-ABC12"`
	PartnerID         string   `json:"partner_id" validate:"required" example:"PT-001"`
	AffiliateID       *string  `json:"affiliate_id,omitempty" example:"AF-001"`
	MaxUses           *int     `json:"max_uses,omitempty" example:"100"`
	PartnerOverride   *float64 `json:"partner_override,omitempty" example:"7.5"`
	AffiliateOverride *float64 `json:"affiliate_override,omitempty" example:"15"`
	Currency          string   `json:"currency,omitempty" example:"USD"`
	Status            string   `json:"status,omitempty" example:"active"`
}

type CodeDTO struct {
	ID                int       `json:"id" example:"1"`
	Value             string    `json:"value" example:"PT-ABC12"`
	Kind              string    `json:"kind" example:"partner"`
	Status            string    `json:"status" example:"active"`
	MaxUses           *int      `json:"max_uses,omitempty" example:"100"`
	CurrentUses       int       `json:"current_uses" example:"3"`
	PartnerID         string    `json:"partner_id" example:"PT-001"`
	AffiliateID       *string   `json:"affiliate_id,omitempty" example:"AF-001"`
	PartnerOverride   *float64  `json:"partner_override,omitempty" example:"7.5"`
	AffiliateOverride *float64  `json:"affiliate_override,omitempty" example:"15"`
	Currency          string    `json:"currency" example:"USD"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
