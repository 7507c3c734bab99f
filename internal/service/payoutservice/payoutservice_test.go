package payoutservice

import (
	"testing"

	"partnerhub/internal/config"
	"partnerhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(s string) *string { return &s }

func testTables() config.PayoutTables {
	return config.PayoutTables{
		PartnerBase: map[string]float64{
			"standard": 5,
			"premium":  12,
			"default":  5,
		},
		AffiliateBase: map[string]float64{
			"standard": 10,
			"premium":  18,
			"default":  10,
		},
		PartnerCut: 0.25,
		CutoffDay:  15,
	}
}

func TestForUser(t *testing.T) {
	tables := testTables()

	tests := []struct {
		name     string
		user     *domain.User
		refs     Refs
		expected domain.Payout
	}{
		{
			name:     "Nil user yields zero payouts",
			user:     nil,
			expected: domain.Payout{},
		},
		{
			name:     "Direct user gets partner base, affiliate zero",
			user:     &domain.User{Source: "partner", AccountType: "standard"},
			expected: domain.Payout{Partner: 5, Affiliate: 0},
		},
		{
			name:     "Direct user unknown account type defaults via wildcard",
			user:     &domain.User{Source: "partner", AccountType: "mystery"},
			expected: domain.Payout{Partner: 5, Affiliate: 0},
		},
		{
			name:     "Direct user with partner override",
			user:     &domain.User{Source: "partner", AccountType: "standard", PartnerOverride: floatPtr(9.99)},
			expected: domain.Payout{Partner: 9.99, Affiliate: 0},
		},
		{
			name:     "Affiliate user gets affiliate base and partner cut",
			user:     &domain.User{Source: "affiliate", AccountType: "standard"},
			expected: domain.Payout{Partner: 2.5, Affiliate: 10},
		},
		{
			name:     "Affiliate user premium tier",
			user:     &domain.User{Source: "affiliate", AccountType: "premium"},
			expected: domain.Payout{Partner: 4.5, Affiliate: 18},
		},
		{
			name:     "Affiliate user with affiliate override",
			user:     &domain.User{Source: "affiliate", AccountType: "standard", AffiliateOverride: floatPtr(40)},
			expected: domain.Payout{Partner: 10, Affiliate: 40},
		},
		{
			name:     "Affiliate user with partner override wins over share",
			user:     &domain.User{Source: "affiliate", AccountType: "standard", PartnerOverride: floatPtr(1.11)},
			expected: domain.Payout{Partner: 1.11, Affiliate: 10},
		},
		{
			name:     "AF code prefix implies affiliate attribution",
			user:     &domain.User{CodeValue: "AF-XY9Z0", AccountType: "standard"},
			expected: domain.Payout{Partner: 2.5, Affiliate: 10},
		},
		{
			name:     "PT code prefix implies direct attribution",
			user:     &domain.User{CodeValue: "PT-ABC12", AccountType: "standard"},
			expected: domain.Payout{Partner: 5, Affiliate: 0},
		},
		{
			name:     "Affiliate id alone implies affiliate attribution",
			user:     &domain.User{AffiliateID: stringPtr("AF-001"), AccountType: "standard"},
			expected: domain.Payout{Partner: 2.5, Affiliate: 10},
		},
		{
			name:     "Source tag beats AF prefix",
			user:     &domain.User{Source: "partner", CodeValue: "AF-XY9Z0", AccountType: "standard"},
			expected: domain.Payout{Partner: 5, Affiliate: 0},
		},
		{
			name:     "Negative override clamps to zero",
			user:     &domain.User{Source: "partner", PartnerOverride: floatPtr(-10)},
			expected: domain.Payout{Partner: 0, Affiliate: 0},
		},
		{
			name:     "Partner cut from partner record",
			user:     &domain.User{Source: "affiliate", AccountType: "standard"},
			refs:     Refs{Partner: &domain.Partner{ID: "PT-001", PartnerCut: floatPtr(0.5)}},
			expected: domain.Payout{Partner: 5, Affiliate: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForUser(tt.user, tt.refs, tables))
		})
	}
}

func TestForUserEndToEndScenario(t *testing.T) {
	// Partner PT-001 with cut 0.25, affiliate AF-001, affiliate base $10 for
	// standard accounts: a user through an AF code owes {affiliate 10, partner 2.50}.
	tables := testTables()
	affiliateID := "AF-001"
	user := &domain.User{
		PartnerID:   "PT-001",
		AffiliateID: &affiliateID,
		CodeValue:   "AF-XY9Z0",
		AccountType: "standard",
		Source:      "affiliate",
	}
	refs := Refs{
		Partner:   &domain.Partner{ID: "PT-001", PartnerCut: floatPtr(0.25)},
		Affiliate: &domain.Affiliate{ID: "AF-001", PartnerID: "PT-001"},
	}

	payout := ForUser(user, refs, tables)
	assert.Equal(t, 10.0, payout.Affiliate)
	assert.Equal(t, 2.5, payout.Partner)
}

func TestResolvePartnerCut(t *testing.T) {
	tables := testTables()

	tests := []struct {
		name     string
		user     *domain.User
		refs     Refs
		expected float64
	}{
		{
			name:     "Defaults to global table",
			user:     &domain.User{},
			expected: 0.25,
		},
		{
			name:     "Per-user cut wins",
			user:     &domain.User{PartnerCut: floatPtr(0.4)},
			refs:     Refs{Partner: &domain.Partner{PartnerCut: floatPtr(0.5)}},
			expected: 0.4,
		},
		{
			name:     "Partner setting beats affiliate setting",
			user:     &domain.User{},
			refs:     Refs{Partner: &domain.Partner{PartnerCut: floatPtr(0.3)}, Affiliate: &domain.Affiliate{PartnerCut: floatPtr(0.6)}},
			expected: 0.3,
		},
		{
			name:     "Affiliate setting used when partner has none",
			user:     &domain.User{},
			refs:     Refs{Partner: &domain.Partner{}, Affiliate: &domain.Affiliate{PartnerCut: floatPtr(0.6)}},
			expected: 0.6,
		},
		{
			name:     "Raw percentage scaled down",
			user:     &domain.User{PartnerCut: floatPtr(40)},
			expected: 0.4,
		},
		{
			name:     "Over 100 rejected, falls through",
			user:     &domain.User{PartnerCut: floatPtr(150)},
			refs:     Refs{Partner: &domain.Partner{PartnerCut: floatPtr(0.35)}},
			expected: 0.35,
		},
		{
			name:     "Negative rejected, falls through to default",
			user:     &domain.User{PartnerCut: floatPtr(-1)},
			expected: 0.25,
		},
		{
			name:     "All candidates invalid falls back to default constant",
			user:     &domain.User{PartnerCut: floatPtr(500)},
			refs:     Refs{Partner: &domain.Partner{PartnerCut: floatPtr(-2)}, Affiliate: &domain.Affiliate{PartnerCut: floatPtr(101)}},
			expected: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ResolvePartnerCut(tt.user, tt.refs, tables), 1e-9)
		})
	}
}

func TestNormalizeAccountType(t *testing.T) {
	assert.Equal(t, "standard", NormalizeAccountType(""))
	assert.Equal(t, "standard", NormalizeAccountType("  "))
	assert.Equal(t, "premium", NormalizeAccountType(" Premium "))
}

func TestTableLookup(t *testing.T) {
	table := map[string]float64{
		"standard":  5,
		"small_biz": 7,
		"smallbiz2": 8,
		"*":         1,
	}

	assert.Equal(t, 5.0, tableLookup(table, "Standard"))
	assert.Equal(t, 7.0, tableLookup(table, "small-biz"))
	assert.Equal(t, 8.0, tableLookup(table, "small biz2"))
	assert.Equal(t, 1.0, tableLookup(table, "unknown"))
	assert.Equal(t, 0.0, tableLookup(nil, "standard"))
}

func TestIsAffiliateAttributed(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.User
		expected bool
	}{
		{name: "Explicit affiliate tag", user: domain.User{Source: "AF"}, expected: true},
		{name: "Explicit partner tag", user: domain.User{Source: "PARTNER"}, expected: false},
		{name: "Affiliate id present", user: domain.User{AffiliateID: stringPtr("AF-002")}, expected: true},
		{name: "Blank affiliate id ignored", user: domain.User{AffiliateID: stringPtr("  ")}, expected: false},
		{name: "AF prefix heuristic", user: domain.User{CodeValue: "af-xy9z0"}, expected: true},
		{name: "PT prefix heuristic", user: domain.User{CodeValue: "PT-ABC12"}, expected: false},
		{name: "No signals defaults to direct", user: domain.User{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.user
			assert.Equal(t, tt.expected, IsAffiliateAttributed(&user))
		})
	}
}
