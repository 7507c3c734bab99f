package users

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partnerhub/internal/domain"
	"partnerhub/internal/dto"
	"partnerhub/internal/service/codeservice"
	"partnerhub/pkg/utils"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"code":"PT-ABC12","email":"ana@example.com","first_name":"Ana","region":"Latin America"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(),
						&domain.User{Email: "ana@example.com", FirstName: "Ana", Region: "Latin America"},
						"PT-ABC12").
					Return(&domain.User{
						ID:          7,
						PartnerID:   "PT-001",
						CodeID:      1,
						CodeValue:   "PT-ABC12",
						Email:       "ana@example.com",
						FirstName:   "Ana",
						Region:      "Latin America",
						AccountType: "standard",
						Source:      domain.CodeKindPartner,
						Status:      domain.StatusActive,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Tier alias folds into account type",
			body: `{"code":"PT-ABC12","email":"ana@example.com","tier":"premium"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(),
						&domain.User{Email: "ana@example.com", AccountType: "premium"},
						"PT-ABC12").
					Return(&domain.User{ID: 8, Email: "ana@example.com", AccountType: "premium"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Client-supplied source is ignored",
			body: `{"code":"PT-ABC12","email":"ana@example.com","source":"affiliate"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(),
						&domain.User{Email: "ana@example.com"},
						"PT-ABC12").
					Return(&domain.User{ID: 9, Email: "ana@example.com", Source: domain.CodeKindPartner}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing email",
			body:          `{"code":"PT-ABC12"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "An email is required",
		},
		{
			name: "Unknown code",
			body: `{"code":"PT-NOPE1","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(), gomock.Any(), "PT-NOPE1").
					Return(nil, codeservice.ErrCodeNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: codeservice.ErrCodeNotFound.Error(),
		},
		{
			name: "Inactive code",
			body: `{"code":"PT-ABC12","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(), gomock.Any(), "PT-ABC12").
					Return(nil, codeservice.ErrCodeInactive)
			},
			expectedCode:  http.StatusConflict,
			expectedError: codeservice.ErrCodeInactive.Error(),
		},
		{
			name: "Exhausted code",
			body: `{"code":"PT-ABC12","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(), gomock.Any(), "PT-ABC12").
					Return(nil, codeservice.ErrCodeExhausted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: codeservice.ErrCodeExhausted.Error(),
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
			body: `{"code":"PT-ABC12","email":"ana@example.com"}`,
			prepareMock: func() {
				service.EXPECT().
					RegisterUser(gomock.Any(), gomock.Any(), "PT-ABC12").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/users/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.UserDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotZero(t, resp.ID)
			}
		})
	}
}
