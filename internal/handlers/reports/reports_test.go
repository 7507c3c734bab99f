package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/summaryservice"
	"partnerhub/pkg/auth"
	"partnerhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func withAuth(req *http.Request, role, partnerScope string) *http.Request {
	ctx := context.WithValue(req.Context(), auth.RoleKey, role)
	ctx = context.WithValue(ctx, auth.PartnerIDKey, partnerScope)
	return req.WithContext(ctx)
}

func TestGlobalHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns metrics", func(t *testing.T) {
		service.EXPECT().GlobalMetrics(gomock.Any()).Return(&summaryservice.GlobalMetrics{
			Totals:        summaryservice.Bucket{Users: 12},
			PartnersCount: 3,
		}, nil)

		req := httptest.NewRequest("GET", "/api/reports/global", nil)
		rr := httptest.NewRecorder()

		handler.Global(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp summaryservice.GlobalMetrics
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 12, resp.Totals.Users)
		assert.Equal(t, 3, resp.PartnersCount)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().GlobalMetrics(gomock.Any()).Return(nil, errors.New("db down"))

		req := httptest.NewRequest("GET", "/api/reports/global", nil)
		rr := httptest.NewRecorder()

		handler.Global(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCodeReportHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Summary by value", func(t *testing.T) {
		service.EXPECT().
			SummaryForCode(gomock.Any(), "PT-ABC12").
			Return(&summaryservice.CodeSummary{Code: "PT-ABC12", CodeID: 1, PartnerID: "PT-001"}, nil)

		req := httptest.NewRequest("GET", "/api/reports/codes/PT-ABC12", nil)
		req = withURLParam(req, "code", "PT-ABC12")
		rr := httptest.NewRecorder()

		handler.Code(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp summaryservice.CodeSummary
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "PT-ABC12", resp.Code)
	})

	t.Run("Unknown code", func(t *testing.T) {
		service.EXPECT().
			SummaryForCode(gomock.Any(), "PT-NOPE1").
			Return(nil, summaryservice.ErrCodeNotFound)

		req := httptest.NewRequest("GET", "/api/reports/codes/PT-NOPE1", nil)
		req = withURLParam(req, "code", "PT-NOPE1")
		rr := httptest.NewRecorder()

		handler.Code(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, summaryservice.ErrCodeNotFound.Error(), resp.Message)
	})
}

func TestPartnerReportHandler(t *testing.T) {
	handler, service := NewMock(t)

	summary := &summaryservice.PartnerSummary{
		Partner: domain.Partner{ID: "PT-001", Name: "Terra Partners", Status: domain.StatusActive},
		Users:   summaryservice.PartnerUserCounts{Direct: 2, Affiliates: 1, Total: 3},
		Affiliates: []domain.Affiliate{
			{ID: "AF-001", PartnerID: "PT-001", Name: "Horizons Media"},
		},
	}

	t.Run("Admin reads any partner", func(t *testing.T) {
		service.EXPECT().SummaryForPartner(gomock.Any(), "PT-001").Return(summary, nil)

		req := httptest.NewRequest("GET", "/api/reports/partners/PT-001", nil)
		req = withURLParam(req, "id", "PT-001")
		req = withAuth(req, domain.RoleAdmin, "")
		rr := httptest.NewRecorder()

		handler.Partner(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PartnerReportDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "PT-001", resp.Partner.ID)
		assert.Equal(t, 3, resp.Users.Total)
		assert.Len(t, resp.Affiliates, 1)
	})

	t.Run("Partner reads own report", func(t *testing.T) {
		service.EXPECT().SummaryForPartner(gomock.Any(), "PT-001").Return(summary, nil)

		req := httptest.NewRequest("GET", "/api/reports/partners/PT-001", nil)
		req = withURLParam(req, "id", "PT-001")
		req = withAuth(req, domain.RolePartner, "PT-001")
		rr := httptest.NewRecorder()

		handler.Partner(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Partner cannot read another partner", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/reports/partners/PT-002", nil)
		req = withURLParam(req, "id", "PT-002")
		req = withAuth(req, domain.RolePartner, "PT-001")
		rr := httptest.NewRecorder()

		handler.Partner(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Unknown partner", func(t *testing.T) {
		service.EXPECT().
			SummaryForPartner(gomock.Any(), "PT-404").
			Return(nil, summaryservice.ErrPartnerNotFound)

		req := httptest.NewRequest("GET", "/api/reports/partners/PT-404", nil)
		req = withURLParam(req, "id", "PT-404")
		req = withAuth(req, domain.RoleAdmin, "")
		rr := httptest.NewRecorder()

		handler.Partner(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
