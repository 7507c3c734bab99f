package summaryservice

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"partnerhub/internal/config"
	"partnerhub/internal/domain"
	"partnerhub/internal/service/payoutservice"
	"partnerhub/pkg/money"

	"go.uber.org/zap"
)

//go:generate mockgen -source=summaryservice.go -destination=summaryservice_mock.go -package=summaryservice

type UserRepo interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	ListByPartnerID(ctx context.Context, partnerID string) ([]domain.User, error)
	ListByCodeID(ctx context.Context, codeID int) ([]domain.User, error)
}

type PartnerRepo interface {
	ListAll(ctx context.Context) ([]domain.Partner, error)
	FindByID(ctx context.Context, id string) (*domain.Partner, error)
}

type AffiliateRepo interface {
	ListAll(ctx context.Context) ([]domain.Affiliate, error)
	ListByPartnerID(ctx context.Context, partnerID string) ([]domain.Affiliate, error)
}

type CodeRepo interface {
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Code, error)
}

var (
	ErrCodeNotFound    = errors.New("code not found")
	ErrPartnerNotFound = errors.New("partner not found")
)

type Service struct {
	userRepo      UserRepo
	partnerRepo   PartnerRepo
	affiliateRepo AffiliateRepo
	codeRepo      CodeRepo
	tables        config.PayoutTables
}

func New(userRepo UserRepo, partnerRepo PartnerRepo, affiliateRepo AffiliateRepo, codeRepo CodeRepo, tables config.PayoutTables) *Service {
	return &Service{
		userRepo:      userRepo,
		partnerRepo:   partnerRepo,
		affiliateRepo: affiliateRepo,
		codeRepo:      codeRepo,
		tables:        tables,
	}
}

type PayoutTotals struct {
	Partner   float64 `json:"partner"`
	Affiliate float64 `json:"affiliate"`
	Total     float64 `json:"total"`
}

type Bucket struct {
	Users  int          `json:"users"`
	Payout PayoutTotals `json:"payout"`
}

type AppBucket struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Users  int          `json:"users"`
	Payout PayoutTotals `json:"payout"`
}

type MonthBucket struct {
	Month  string       `json:"month"`
	Users  int          `json:"users"`
	Payout PayoutTotals `json:"payout"`
}

type RegionBucket struct {
	Region string       `json:"region"`
	Users  int          `json:"users"`
	Payout PayoutTotals `json:"payout"`
}

type GlobalMetrics struct {
	Totals          Bucket         `json:"totals"`
	ByApp           []AppBucket    `json:"by_app"`
	ByMonth         []MonthBucket  `json:"by_month"`
	ByRegion        []RegionBucket `json:"by_region"`
	PartnersCount   int            `json:"partners_count"`
	AffiliatesCount int            `json:"affiliates_count"`
}

type CodeSummary struct {
	Code          string        `json:"code"`
	CodeID        int           `json:"code_id"`
	Totals        Bucket        `json:"totals"`
	MonthlySeries []MonthBucket `json:"monthly_series"`
	PartnerID     string        `json:"partner_id"`
	AffiliateID   *string       `json:"affiliate_id"`
}

type PartnerUserCounts struct {
	Direct     int `json:"direct"`
	Affiliates int `json:"affiliates"`
	Total      int `json:"total"`
}

type PartnerPayouts struct {
	Direct         PayoutTotals `json:"direct"`
	FromAffiliates PayoutTotals `json:"from_affiliates"`
	Overall        PayoutTotals `json:"overall"`
}

type PartnerMonthBucket struct {
	Month   string            `json:"month"`
	Users   PartnerUserCounts `json:"users"`
	Payouts PartnerPayouts    `json:"payouts"`
}

type PartnerSummary struct {
	Partner       domain.Partner       `json:"partner"`
	Users         PartnerUserCounts    `json:"users"`
	Payouts       PartnerPayouts       `json:"payouts"`
	MonthlySeries []PartnerMonthBucket `json:"monthly_series"`
	Affiliates    []domain.Affiliate   `json:"affiliates"`
}

// PartnerPeriodStats feeds the invoice generator: one partner, one period.
type PartnerPeriodStats struct {
	DirectUsers              int
	AffiliateUsers           int
	TotalUsers               int
	DirectPartnerPayout      float64
	AffiliatePartnerPayout   float64
	AffiliateAffiliatePayout float64
	Amount                   float64
}

// payout sums accumulate in cents so that monthly buckets always add up to
// the grand totals exactly.
type centTotals struct {
	partner   int64
	affiliate int64
}

func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func (c *centTotals) add(p domain.Payout) {
	c.partner += cents(p.Partner)
	c.affiliate += cents(p.Affiliate)
}

func (c centTotals) totals() PayoutTotals {
	return PayoutTotals{
		Partner:   float64(c.partner) / 100,
		Affiliate: float64(c.affiliate) / 100,
		Total:     float64(c.partner+c.affiliate) / 100,
	}
}

func (s *Service) refsFor(user *domain.User, partnersByID map[string]*domain.Partner, affiliatesByID map[string]*domain.Affiliate) payoutservice.Refs {
	refs := payoutservice.Refs{}
	if partner, ok := partnersByID[user.PartnerID]; ok {
		refs.Partner = partner
	}
	if user.AffiliateID != nil {
		if affiliate, ok := affiliatesByID[*user.AffiliateID]; ok {
			refs.Affiliate = affiliate
		}
	}
	return refs
}

func (s *Service) loadRelations(ctx context.Context) (map[string]*domain.Partner, map[string]*domain.Affiliate, []domain.Partner, []domain.Affiliate, error) {
	partners, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list partners", zap.Error(err))
		return nil, nil, nil, nil, err
	}
	affiliates, err := s.affiliateRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list affiliates", zap.Error(err))
		return nil, nil, nil, nil, err
	}

	partnersByID := make(map[string]*domain.Partner, len(partners))
	for i := range partners {
		partnersByID[partners[i].ID] = &partners[i]
	}
	affiliatesByID := make(map[string]*domain.Affiliate, len(affiliates))
	for i := range affiliates {
		affiliatesByID[affiliates[i].ID] = &affiliates[i]
	}
	return partnersByID, affiliatesByID, partners, affiliates, nil
}

// GlobalMetrics rolls all users up into overall totals plus per-app,
// per-month and per-region buckets.
func (s *Service) GlobalMetrics(ctx context.Context) (*GlobalMetrics, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	partnersByID, affiliatesByID, partners, affiliates, err := s.loadRelations(ctx)
	if err != nil {
		return nil, err
	}

	var totalCents centTotals
	totalUsers := 0
	type appAgg struct {
		bucket AppBucket
		cents  centTotals
	}
	type monthAgg struct {
		bucket MonthBucket
		cents  centTotals
	}
	type regionAgg struct {
		bucket RegionBucket
		cents  centTotals
	}
	byApp := map[string]*appAgg{}
	byMonth := map[string]*monthAgg{}
	byRegion := map[string]*regionAgg{}

	for i := range users {
		user := &users[i]
		payout := payoutservice.ForUser(user, s.refsFor(user, partnersByID, affiliatesByID), s.tables)
		totalUsers++
		totalCents.add(payout)

		appKey := strings.TrimSpace(user.AppID)
		if appKey == "" {
			appKey = "unknown"
		}
		app, ok := byApp[appKey]
		if !ok {
			app = &appAgg{bucket: AppBucket{ID: appKey, Name: appKey}}
			byApp[appKey] = app
		}
		app.bucket.Users++
		app.cents.add(payout)

		monthKey := money.SafeMonthKey(user.CreatedAt)
		month, ok := byMonth[monthKey]
		if !ok {
			month = &monthAgg{bucket: MonthBucket{Month: monthKey}}
			byMonth[monthKey] = month
		}
		month.bucket.Users++
		month.cents.add(payout)

		regionKey := strings.TrimSpace(user.Region)
		if regionKey == "" {
			regionKey = "Unknown"
		}
		region, ok := byRegion[regionKey]
		if !ok {
			region = &regionAgg{bucket: RegionBucket{Region: regionKey}}
			byRegion[regionKey] = region
		}
		region.bucket.Users++
		region.cents.add(payout)
	}

	metrics := &GlobalMetrics{
		Totals:          Bucket{Users: totalUsers, Payout: totalCents.totals()},
		ByApp:           make([]AppBucket, 0, len(byApp)),
		ByMonth:         make([]MonthBucket, 0, len(byMonth)),
		ByRegion:        make([]RegionBucket, 0, len(byRegion)),
		PartnersCount:   len(partners),
		AffiliatesCount: len(affiliates),
	}

	for _, agg := range byApp {
		agg.bucket.Payout = agg.cents.totals()
		metrics.ByApp = append(metrics.ByApp, agg.bucket)
	}
	sort.Slice(metrics.ByApp, func(i, j int) bool {
		if metrics.ByApp[i].Users == metrics.ByApp[j].Users {
			return metrics.ByApp[i].Name < metrics.ByApp[j].Name
		}
		return metrics.ByApp[i].Users > metrics.ByApp[j].Users
	})

	for _, agg := range byMonth {
		agg.bucket.Payout = agg.cents.totals()
		metrics.ByMonth = append(metrics.ByMonth, agg.bucket)
	}
	sortMonths(metrics.ByMonth, func(b MonthBucket) string { return b.Month })

	for _, agg := range byRegion {
		agg.bucket.Payout = agg.cents.totals()
		metrics.ByRegion = append(metrics.ByRegion, agg.bucket)
	}
	sort.Slice(metrics.ByRegion, func(i, j int) bool {
		if metrics.ByRegion[i].Users == metrics.ByRegion[j].Users {
			return metrics.ByRegion[i].Region < metrics.ByRegion[j].Region
		}
		return metrics.ByRegion[i].Users > metrics.ByRegion[j].Users
	})

	return metrics, nil
}

// SummaryForCode resolves a code by id or value and aggregates the users
// attributed to it.
func (s *Service) SummaryForCode(ctx context.Context, identifier string) (*CodeSummary, error) {
	code, err := s.codeRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		zap.L().Error("can't find code", zap.String("identifier", identifier), zap.Error(err))
		return nil, err
	}
	if code == nil {
		return nil, ErrCodeNotFound
	}

	users, err := s.userRepo.ListByCodeID(ctx, code.ID)
	if err != nil {
		zap.L().Error("can't list users for code", zap.Int("codeID", code.ID), zap.Error(err))
		return nil, err
	}
	partnersByID, affiliatesByID, _, _, err := s.loadRelations(ctx)
	if err != nil {
		return nil, err
	}

	var totalCents centTotals
	type monthAgg struct {
		bucket MonthBucket
		cents  centTotals
	}
	byMonth := map[string]*monthAgg{}

	for i := range users {
		user := &users[i]
		payout := payoutservice.ForUser(user, s.refsFor(user, partnersByID, affiliatesByID), s.tables)
		totalCents.add(payout)

		monthKey := money.SafeMonthKey(user.CreatedAt)
		month, ok := byMonth[monthKey]
		if !ok {
			month = &monthAgg{bucket: MonthBucket{Month: monthKey}}
			byMonth[monthKey] = month
		}
		month.bucket.Users++
		month.cents.add(payout)
	}

	summary := &CodeSummary{
		Code:          code.Value,
		CodeID:        code.ID,
		Totals:        Bucket{Users: len(users), Payout: totalCents.totals()},
		MonthlySeries: make([]MonthBucket, 0, len(byMonth)),
		PartnerID:     code.PartnerID,
		AffiliateID:   code.AffiliateID,
	}
	for _, agg := range byMonth {
		agg.bucket.Payout = agg.cents.totals()
		summary.MonthlySeries = append(summary.MonthlySeries, agg.bucket)
	}
	sortMonths(summary.MonthlySeries, func(b MonthBucket) string { return b.Month })

	return summary, nil
}

type partnerCents struct {
	direct         centTotals
	fromAffiliates centTotals
}

func (p partnerCents) payouts() PartnerPayouts {
	overall := centTotals{
		partner:   p.direct.partner + p.fromAffiliates.partner,
		affiliate: p.fromAffiliates.affiliate,
	}
	return PartnerPayouts{
		Direct:         p.direct.totals(),
		FromAffiliates: p.fromAffiliates.totals(),
		Overall:        overall.totals(),
	}
}

// SummaryForPartner splits a partner's users into direct and
// affiliate-sourced and reports the three payout views. Roster membership,
// not the resolver heuristic, decides the split.
func (s *Service) SummaryForPartner(ctx context.Context, partnerID string) (*PartnerSummary, error) {
	partner, err := s.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't find partner", zap.String("partnerID", partnerID), zap.Error(err))
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	affiliates, err := s.affiliateRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't list partner affiliates", zap.Error(err))
		return nil, err
	}
	users, err := s.userRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't list partner users", zap.Error(err))
		return nil, err
	}
	partnersByID, affiliatesByID, _, _, err := s.loadRelations(ctx)
	if err != nil {
		return nil, err
	}

	roster := make(map[string]struct{}, len(affiliates))
	for _, affiliate := range affiliates {
		roster[affiliate.ID] = struct{}{}
	}

	counts := PartnerUserCounts{}
	totalsCents := partnerCents{}
	type monthAgg struct {
		counts PartnerUserCounts
		cents  partnerCents
	}
	byMonth := map[string]*monthAgg{}

	for i := range users {
		user := &users[i]
		payout := payoutservice.ForUser(user, s.refsFor(user, partnersByID, affiliatesByID), s.tables)
		affiliateSourced := isRosterMember(user, roster)

		counts.Total++
		if affiliateSourced {
			counts.Affiliates++
			totalsCents.fromAffiliates.add(payout)
		} else {
			counts.Direct++
			totalsCents.direct.add(payout)
		}

		monthKey := money.SafeMonthKey(user.CreatedAt)
		month, ok := byMonth[monthKey]
		if !ok {
			month = &monthAgg{}
			byMonth[monthKey] = month
		}
		month.counts.Total++
		if affiliateSourced {
			month.counts.Affiliates++
			month.cents.fromAffiliates.add(payout)
		} else {
			month.counts.Direct++
			month.cents.direct.add(payout)
		}
	}

	summary := &PartnerSummary{
		Partner:       *partner,
		Users:         counts,
		Payouts:       totalsCents.payouts(),
		MonthlySeries: make([]PartnerMonthBucket, 0, len(byMonth)),
		Affiliates:    affiliates,
	}
	for monthKey, agg := range byMonth {
		summary.MonthlySeries = append(summary.MonthlySeries, PartnerMonthBucket{
			Month:   monthKey,
			Users:   agg.counts,
			Payouts: agg.cents.payouts(),
		})
	}
	sortMonths(summary.MonthlySeries, func(b PartnerMonthBucket) string { return b.Month })

	return summary, nil
}

// PartnerPeriodStats aggregates a partner's users created within one
// billing period.
func (s *Service) PartnerPeriodStats(ctx context.Context, partnerID, period string) (*PartnerPeriodStats, error) {
	affiliates, err := s.affiliateRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't list partner affiliates", zap.Error(err))
		return nil, err
	}
	users, err := s.userRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		zap.L().Error("can't list partner users", zap.Error(err))
		return nil, err
	}
	partnersByID, affiliatesByID, _, _, err := s.loadRelations(ctx)
	if err != nil {
		return nil, err
	}

	roster := make(map[string]struct{}, len(affiliates))
	for _, affiliate := range affiliates {
		roster[affiliate.ID] = struct{}{}
	}

	stats := &PartnerPeriodStats{}
	var direct, fromAffiliatePartner, fromAffiliateAffiliate int64

	for i := range users {
		user := &users[i]
		if money.SafeMonthKey(user.CreatedAt) != period {
			continue
		}
		payout := payoutservice.ForUser(user, s.refsFor(user, partnersByID, affiliatesByID), s.tables)

		if isRosterMember(user, roster) {
			stats.AffiliateUsers++
			fromAffiliatePartner += cents(payout.Partner)
			fromAffiliateAffiliate += cents(payout.Affiliate)
		} else {
			stats.DirectUsers++
			direct += cents(payout.Partner)
		}
	}

	stats.TotalUsers = stats.DirectUsers + stats.AffiliateUsers
	stats.DirectPartnerPayout = float64(direct) / 100
	stats.AffiliatePartnerPayout = float64(fromAffiliatePartner) / 100
	stats.AffiliateAffiliatePayout = float64(fromAffiliateAffiliate) / 100
	stats.Amount = float64(direct+fromAffiliatePartner) / 100

	return stats, nil
}

// isRosterMember applies the authoritative membership test. An affiliate id
// outside the roster is inconsistent data: counted direct and flagged.
func isRosterMember(user *domain.User, roster map[string]struct{}) bool {
	if user.AffiliateID == nil || strings.TrimSpace(*user.AffiliateID) == "" {
		return false
	}
	if _, ok := roster[*user.AffiliateID]; ok {
		return true
	}
	zap.L().Warn("user affiliate id not in partner roster, counting as direct",
		zap.Int("userID", user.ID),
		zap.String("affiliateID", *user.AffiliateID),
		zap.String("partnerID", user.PartnerID),
	)
	return false
}

func sortMonths[T any](series []T, key func(T) string) {
	sort.Slice(series, func(i, j int) bool {
		a, b := key(series[i]), key(series[j])
		if a == "unknown" {
			return false
		}
		if b == "unknown" {
			return true
		}
		return a < b
	})
}
