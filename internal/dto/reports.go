package dto

import "partnerhub/internal/service/summaryservice"

type PartnerReportDTO struct {
	Partner       PartnerDTO                          `json:"partner"`
	Users         summaryservice.PartnerUserCounts    `json:"users"`
	Payouts       summaryservice.PartnerPayouts       `json:"payouts"`
	MonthlySeries []summaryservice.PartnerMonthBucket `json:"monthly_series"`
	Affiliates    []AffiliateDTO                      `json:"affiliates"`
}
