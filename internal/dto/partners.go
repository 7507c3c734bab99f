package dto

import "time"

type CreatePartnerRequestDTO struct {
	ID         string   `json:"id,omitempty" example:"PT-001"`
	Name       string   `json:"name" validate:"required" example:"Terra Partners"`
	Region     string   `json:"region" example:"Latin America"`
	PartnerCut *float64 `json:"partner_cut,omitempty" example:"0.25"`
}

type PartnerDTO struct {
	ID         string    `json:"id" example:"PT-001"`
	Name       string    `json:"name" example:"Terra Partners"`
	Region     string    `json:"region" example:"Latin America"`
	Status     string    `json:"status" example:"active"`
	PartnerCut *float64  `json:"partner_cut,omitempty" example:"0.25"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateAffiliateRequestDTO struct {
	ID         string   `json:"id,omitempty" example:"AF-001"`
	Name       string   `json:"name" validate:"required" example:"Horizons Media"`
	Region     string   `json:"region" example:"Europe"`
	PartnerCut *float64 `json:"partner_cut,omitempty" example:"0.3"`
}

type AffiliateDTO struct {
	ID         string    `json:"id" example:"AF-001"`
	PartnerID  string    `json:"partner_id" example:"PT-001"`
	Name       string    `json:"name" example:"Horizons Media"`
	Region     string    `json:"region" example:"Europe"`
	Status     string    `json:"status" example:"active"`
	PartnerCut *float64  `json:"partner_cut,omitempty" example:"0.3"`
	CreatedAt  time.Time `json:"created_at"`
}
