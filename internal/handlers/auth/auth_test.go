package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partnerhub/internal/domain"
	"partnerhub/internal/service/authservice"
	"partnerhub/pkg/utils"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	partnerID := "PT-001"
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"finops","password":"password123","role":"finance"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "finops", "password123", "finance", (*string)(nil)).
					Return(&domain.Account{ID: 1, Login: "finops", Role: domain.RoleFinance}, nil)
				service.EXPECT().
					GenerateToken(gomock.Any()).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Partner-scoped registration",
			body: `{"login":"terra","password":"password123","role":"partner","partner_id":"PT-001"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "terra", "password123", "partner", &partnerID).
					Return(&domain.Account{ID: 2, Login: "terra", Role: domain.RolePartner, PartnerID: &partnerID}, nil)
				service.EXPECT().
					GenerateToken(gomock.Any()).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Partner role without partner id",
			body: `{"login":"terra","password":"password123","role":"partner"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "terra", "password123", "partner", (*string)(nil)).
					Return(nil, authservice.ErrPartnerIDRequired)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrPartnerIDRequired.Error(),
		},
		{
			name: "Login already taken",
			body: `{"login":"finops","password":"password123","role":"finance"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "finops", "password123", "finance", (*string)(nil)).
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrLoginTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"finops","password":"password123","role":"finance"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(context.Background(), "finops", "password123", "finance", (*string)(nil)).
					Return(&domain.Account{ID: 1, Login: "finops", Role: domain.RoleFinance}, nil)
				service.EXPECT().
					GenerateToken(gomock.Any()).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"finops","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "finops", "password123").
					Return(&domain.Account{ID: 1, Login: "finops", Role: domain.RoleFinance}, nil)
				service.EXPECT().
					GenerateToken(gomock.Any()).
					Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"finops","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "finops", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"login":"finops","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "finops", "password123").
					Return(&domain.Account{ID: 1, Login: "finops", Role: domain.RoleFinance}, nil)
				service.EXPECT().
					GenerateToken(gomock.Any()).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
