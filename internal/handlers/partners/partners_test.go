package partners

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/partnerservice"
	"partnerhub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PartnerHandler, *MockService) {
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

func TestCreatePartnerHandler(t *testing.T) {
	handler, service := NewMock(t)

	cut := 0.25
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Terra Partners","region":"Latin America","partner_cut":0.25}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePartner(gomock.Any(), &domain.Partner{Name: "Terra Partners", Region: "Latin America", PartnerCut: &cut}).
					Return(&domain.Partner{ID: "PT-001", Name: "Terra Partners", Region: "Latin America", Status: domain.StatusActive, PartnerCut: &cut}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Missing name",
			body: `{"region":"Europe"}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePartner(gomock.Any(), gomock.Any()).
					Return(nil, partnerservice.ErrNameRequired)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: partnerservice.ErrNameRequired.Error(),
		},
		{
			name: "Id already taken",
			body: `{"id":"PT-001","name":"Terra Partners"}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePartner(gomock.Any(), gomock.Any()).
					Return(nil, partnerservice.ErrPartnerAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: partnerservice.ErrPartnerAlreadyExists.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal error",
			body: `{"name":"Terra Partners"}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePartner(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/partners", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreatePartner(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PartnerDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "PT-001", resp.ID)
			}
		})
	}
}

func TestGetPartnersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPartners(gomock.Any()).Return([]domain.Partner{
		{ID: "PT-001", Name: "Terra Partners", Status: domain.StatusActive},
		{ID: "PT-002", Name: "Nimbus Group", Status: domain.StatusActive},
	}, nil)

	req := httptest.NewRequest("GET", "/api/partners", nil)
	rr := httptest.NewRecorder()

	handler.GetPartners(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.PartnerDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "PT-002", resp[1].ID)
}

func TestGetPartnerHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		partnerID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Found",
			partnerID: "PT-001",
			prepareMock: func() {
				service.EXPECT().
					GetPartner(gomock.Any(), "PT-001").
					Return(&domain.Partner{ID: "PT-001", Name: "Terra Partners"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Not found",
			partnerID: "PT-404",
			prepareMock: func() {
				service.EXPECT().
					GetPartner(gomock.Any(), "PT-404").
					Return(nil, partnerservice.ErrPartnerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: partnerservice.ErrPartnerNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/partners/"+tt.partnerID, nil)
			req = withURLParam(req, "id", tt.partnerID)
			rr := httptest.NewRecorder()

			handler.GetPartner(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCreateAffiliateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Horizons Media","region":"Europe"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateAffiliate(gomock.Any(), &domain.Affiliate{PartnerID: "PT-001", Name: "Horizons Media", Region: "Europe"}).
					Return(&domain.Affiliate{ID: "AF-001", PartnerID: "PT-001", Name: "Horizons Media", Region: "Europe", Status: domain.StatusActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown partner",
			body: `{"name":"Horizons Media"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateAffiliate(gomock.Any(), gomock.Any()).
					Return(nil, partnerservice.ErrPartnerNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: partnerservice.ErrPartnerNotFound.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/partners/PT-001/affiliates", bytes.NewReader([]byte(tt.body)))
			req = withURLParam(req, "id", "PT-001")
			rr := httptest.NewRecorder()

			handler.CreateAffiliate(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.AffiliateDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "AF-001", resp.ID)
				assert.Equal(t, "PT-001", resp.PartnerID)
			}
		})
	}
}

func TestGetAffiliatesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		service.EXPECT().GetAffiliates(gomock.Any(), "PT-001").Return([]domain.Affiliate{
			{ID: "AF-001", PartnerID: "PT-001", Name: "Horizons Media"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/partners/PT-001/affiliates", nil)
		req = withURLParam(req, "id", "PT-001")
		rr := httptest.NewRecorder()

		handler.GetAffiliates(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.AffiliateDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Unknown partner", func(t *testing.T) {
		service.EXPECT().
			GetAffiliates(gomock.Any(), "PT-404").
			Return(nil, partnerservice.ErrPartnerNotFound)

		req := httptest.NewRequest("GET", "/api/partners/PT-404/affiliates", nil)
		req = withURLParam(req, "id", "PT-404")
		rr := httptest.NewRecorder()

		handler.GetAffiliates(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
