package dto

import "time"

type GenerateInvoicesRequestDTO struct {
	CutoffDate string `json:"cutoff_date" validate:"required" example:"2024-03-15"`
}

type InvoiceDTO struct {
	ID                   string    `json:"id" example:"INV-2024-03-PT-001"`
	PartnerID            string    `json:"partner_id" example:"PT-001"`
	PartnerName          string    `json:"partner_name" example:"Terra Partners"`
	Period               string    `json:"period" example:"2024-03"`
	CutoffDate           string    `json:"cutoff_date" example:"2024-03-15"`
	CutoffDay            int       `json:"cutoff_day" example:"15"`
	DueDate              string    `json:"due_date" example:"2024-04-15"`
	Amount               float64   `json:"amount" example:"7.5"`
	PayoutDirect         float64   `json:"payout_direct" example:"5"`
	PayoutFromAffiliates float64   `json:"payout_from_affiliates" example:"2.5"`
	AffiliatePayout      float64   `json:"affiliate_payout" example:"10"`
	UsersCount           int       `json:"users_count" example:"2"`
	Status               string    `json:"status" example:"pending"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type UpdateInvoiceStatusRequestDTO struct {
	Status     string `json:"status" validate:"required" example:"paid"`
	PaymentRef string `json:"payment_ref,omitempty" example:"79927398713"`
}

type InvoiceHistoryEntryDTO struct {
	ID         string    `json:"id"`
	InvoiceID  string    `json:"invoice_id" example:"INV-2024-03-PT-001"`
	PartnerID  string    `json:"partner_id" example:"PT-001"`
	Status     string    `json:"status" example:"paid"`
	Amount     float64   `json:"amount" example:"7.5"`
	PaymentRef string    `json:"payment_ref" example:"79927398713"`
	ChangedAt  time.Time `json:"changed_at"`
}
