package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "helpugee/internal/errors"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Compare(secret, hash string) bool {
	args := m.Called(secret, hash)
	return args.Bool(0)
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) errs.ErrorResponse {
	t.Helper()
	var res errs.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestLoginHandler_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "smeier", "pw123456").Return("signed.jwt.token", nil)
	h := NewLoginHandler(svc)

	c, rec := newContext(t, http.MethodPost, "/login", `{"username":"smeier","password":"pw123456"}`)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var res LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "signed.jwt.token", res.JWT)
}

func TestLoginHandler_Failures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		loginErr error
		expected string
	}{
		{
			name:     "missing username",
			body:     `{"password":"pw123456"}`,
			expected: "error.service.user.username_is_not_body_property",
		},
		{
			name:     "missing password",
			body:     `{"username":"smeier"}`,
			expected: "error.service.user.password_is_not_body_property",
		},
		{
			name:     "wrong credentials",
			body:     `{"username":"smeier","password":"wrong"}`,
			loginErr: errs.ErrWrongCredentials,
			expected: "error.authentication.wrong_credentials",
		},
		{
			name:     "deactivated account",
			body:     `{"username":"smeier","password":"pw123456"}`,
			loginErr: errs.ErrUserNotActive,
			expected: "error.authentication.user_not_active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			if tt.loginErr != nil {
				svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", tt.loginErr)
			}
			h := NewLoginHandler(svc)

			c, rec := newContext(t, http.MethodPost, "/login", tt.body)
			assert.NoError(t, h.Login(c))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			res := envelope(t, rec)
			assert.Equal(t, tt.expected, res.Translatable)
			assert.Equal(t, http.StatusInternalServerError, res.ErrorCode)
		})
	}
}
