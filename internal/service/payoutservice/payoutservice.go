package payoutservice

import (
	"strings"

	"partnerhub/internal/config"
	"partnerhub/internal/domain"
	"partnerhub/pkg/money"
)

// Refs carries the resolved partner and affiliate records a user is
// attributed to. Either may be nil for inconsistent data.
type Refs struct {
	Partner   *domain.Partner
	Affiliate *domain.Affiliate
}

// ForUser computes the partner and affiliate payout owed for a single user.
// Pure: no store access, malformed input yields zero payouts.
func ForUser(user *domain.User, refs Refs, tables config.PayoutTables) domain.Payout {
	if user == nil {
		return domain.Payout{}
	}

	accountType := NormalizeAccountType(user.AccountType)

	if !IsAffiliateAttributed(user) {
		partnerPayout := tableLookup(tables.PartnerBase, accountType)
		if user.PartnerOverride != nil {
			partnerPayout = *user.PartnerOverride
		}
		return domain.Payout{
			Partner:   money.Round2(partnerPayout),
			Affiliate: 0,
		}
	}

	affiliatePayout := tableLookup(tables.AffiliateBase, accountType)
	if user.AffiliateOverride != nil {
		affiliatePayout = *user.AffiliateOverride
	}

	cut := ResolvePartnerCut(user, refs, tables)
	partnerPayout := affiliatePayout * cut
	if user.PartnerOverride != nil {
		partnerPayout = *user.PartnerOverride
	}

	return domain.Payout{
		Partner:   money.Round2(partnerPayout),
		Affiliate: money.Round2(affiliatePayout),
	}
}

// IsAffiliateAttributed decides which payout formula applies. The source
// tag set at registration wins; the affiliate id and the code-value prefix
// are fallbacks for ingested legacy records.
func IsAffiliateAttributed(user *domain.User) bool {
	switch strings.ToLower(strings.TrimSpace(user.Source)) {
	case domain.CodeKindAffiliate, "af", "affiliated":
		return true
	case domain.CodeKindPartner, "pt":
		return false
	}

	if user.AffiliateID != nil && strings.TrimSpace(*user.AffiliateID) != "" {
		return true
	}

	code := strings.ToUpper(strings.TrimSpace(user.CodeValue))
	if strings.HasPrefix(code, "AF") {
		return true
	}
	if strings.HasPrefix(code, "PT") {
		return false
	}

	return false
}

// ResolvePartnerCut resolves the ratio of an affiliate payout retained by
// the partner. Priority: per-user override, partner setting, affiliate
// setting, global table, 0.25. Raw percentages in (1,100] are scaled down;
// values outside [0,100] fall through to the next candidate.
func ResolvePartnerCut(user *domain.User, refs Refs, tables config.PayoutTables) float64 {
	candidates := make([]*float64, 0, 4)
	if user != nil {
		candidates = append(candidates, user.PartnerCut)
	}
	if refs.Partner != nil {
		candidates = append(candidates, refs.Partner.PartnerCut)
	}
	if refs.Affiliate != nil {
		candidates = append(candidates, refs.Affiliate.PartnerCut)
	}
	candidates = append(candidates, &tables.PartnerCut)

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if cut, ok := normalizeCut(*candidate); ok {
			return cut
		}
	}
	return config.DefaultPartnerCut
}

func normalizeCut(value float64) (float64, bool) {
	if value < 0 {
		return 0, false
	}
	if value <= 1 {
		return value, true
	}
	if value <= 100 {
		return value / 100, true
	}
	return 0, false
}

// NormalizeAccountType lowercases a raw account type tag, defaulting to
// "standard". Alias fields (segment, tier, plan) are folded into the
// canonical field at the ingestion boundary, not here.
func NormalizeAccountType(raw string) string {
	accountType := strings.ToLower(strings.TrimSpace(raw))
	if accountType == "" {
		return domain.DefaultAccountType
	}
	return accountType
}

// tableLookup resolves an account type against a payout table, trying the
// key itself, separator variants, then the wildcard keys.
func tableLookup(table map[string]float64, key string) float64 {
	if len(table) == 0 {
		return 0
	}

	normalized := strings.ToLower(strings.TrimSpace(key))
	replacer := strings.NewReplacer("-", "_", " ", "_")
	stripper := strings.NewReplacer("-", "", " ", "")
	candidates := []string{
		normalized,
		replacer.Replace(normalized),
		stripper.Replace(normalized),
		"default",
		"*",
	}

	for _, candidate := range candidates {
		if value, ok := table[candidate]; ok {
			return value
		}
	}
	return 0
}
