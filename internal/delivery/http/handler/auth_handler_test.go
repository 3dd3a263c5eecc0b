package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-system/config"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/jwt"
	"hospital-management-system/pkg/response"
	"hospital-management-system/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	loginResp *dto.TokenResponse
	loginErr  error
	loginReq  *dto.LoginRequest
	userResp  *dto.UserResponse
	userErr   error
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	s.loginReq = req
	return s.loginResp, s.loginErr
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	return s.userResp, s.userErr
}

func newAuthHandler(stub *stubAuthUsecase) *AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthHandler(stub, validator.NewValidator(), jwtService)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestLoginSuccess(t *testing.T) {
	stub := &stubAuthUsecase{
		loginResp: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpiresIn:    900,
			Role:         "doctor",
		},
	}
	h := newAuthHandler(stub)

	w := postJSON(t, h.Login, "/api/v1/login", dto.LoginRequest{
		Username: "drsmith",
		Password: "s3cretpass",
		UserType: "doctor",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{loginErr: usecase.ErrInvalidCredentials})

	w := postJSON(t, h.Login, "/api/v1/login", dto.LoginRequest{
		Username: "drsmith",
		Password: "wrong",
		UserType: "doctor",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "invalid username or password", resp.Message)
}

func TestLoginDisabledAccount(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{loginErr: usecase.ErrAccountDisabled})

	w := postJSON(t, h.Login, "/api/v1/login", dto.LoginRequest{
		Username: "drsmith",
		Password: "s3cretpass",
		UserType: "doctor",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginPrivilegeMismatch(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{loginErr: usecase.ErrNoDoctorPrivileges})

	w := postJSON(t, h.Login, "/api/v1/login", dto.LoginRequest{
		Username: "visitor",
		Password: "s3cretpass",
		UserType: "doctor",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "this account does not have doctor privileges", resp.Message)
}

func TestLoginRejectsUnknownUserType(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	w := postJSON(t, h.Login, "/api/v1/login", dto.LoginRequest{
		Username: "drsmith",
		Password: "s3cretpass",
		UserType: "superuser",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginAsPinsUserType(t *testing.T) {
	stub := &stubAuthUsecase{
		loginResp: &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", Role: "hospital_admin"},
	}
	h := newAuthHandler(stub)

	// The alias overrides whatever the body claims.
	w := postJSON(t, h.LoginAs("hospital_admin"), "/api/v1/hospital-admin-login", map[string]string{
		"username":  "hadmin",
		"password":  "s3cretpass",
		"user_type": "admin",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.loginReq)
	assert.Equal(t, "hospital_admin", stub.loginReq.UserType)
}

func TestLoginValidationFailure(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	w := postJSON(t, h.Login, "/api/v1/login", map[string]string{"username": "drsmith"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestRefreshTokenResponseOmitsRole(t *testing.T) {
	stub := &stubAuthUsecase{
		loginResp: &dto.TokenResponse{
			AccessToken:  "rotated-access",
			RefreshToken: "rotated-refresh",
			ExpiresIn:    900,
		},
	}
	h := newAuthHandler(stub)

	w := postJSON(t, h.RefreshToken, "/api/v1/auth/refresh-token", dto.RefreshTokenRequest{
		RefreshToken: "old-refresh",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	// The role is derived per request from capability rows, so a rotated
	// token pair must not claim one.
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&envelope))
	assert.Equal(t, "rotated-access", envelope.Data["access_token"])
	assert.NotContains(t, envelope.Data, "role")
}
