package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/models"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(mockService *MockAuthService) *gin.Engine {
	router := setupRouter()
	handler := NewAuthHandler(mockService, 15*time.Minute, false)
	handler.RegisterRoutes(router.Group(""))
	return router
}

func TestRegister_Success(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("Register", mock.Anything, "alice", "password123").
		Return(&models.User{ID: testViewerID, Username: "alice"}, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/signup/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	mockService.AssertExpectations(t)
}

func TestRegister_FormEncoded(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("Register", mock.Anything, "bob", "password123").
		Return(&models.User{ID: otherUserID, Username: "bob"}, nil)

	form := url.Values{"username": {"bob"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/signup/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegister_NameInUse(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("Register", mock.Anything, "alice", "password123").Return(nil, service.ErrNameInUse)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/signup/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ValidationFields(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	req := httptest.NewRequest(http.MethodPost, "/signup/", strings.NewReader(`{"username":"al","password":"short"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "username")
	assert.Contains(t, resp.Fields, "password")
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_SetsCookie(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("Login", mock.Anything, "alice", "password123").
		Return("access", "refresh", &models.User{ID: testViewerID, Username: "alice"}, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=access")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("Login", mock.Anything, "alice", "nope-nope").
		Return("", "", nil, service.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "nope-nope"})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginForm(t *testing.T) {
	router := newAuthRouter(new(MockAuthService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"form":"login"`)
}

func TestRefreshToken(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("RefreshAccessToken", mock.Anything, "old").Return("new-access", "new-refresh", nil)
	mockService.On("RefreshAccessToken", mock.Anything, "revoked").Return("", "", service.ErrInvalidToken)

	req := httptest.NewRequest(http.MethodPost, "/token/refresh/", strings.NewReader(`{"refresh_token":"old"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-refresh")

	req = httptest.NewRequest(http.MethodPost, "/token/refresh/", strings.NewReader(`{"refresh_token":"revoked"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	mockService := new(MockAuthService)
	router := newAuthRouter(mockService)

	mockService.On("RevokeToken", mock.Anything, "refresh").Return(nil)

	t.Run("api client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout/", strings.NewReader(`{"refresh_token":"refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=;")
		mockService.AssertCalled(t, "RevokeToken", mock.Anything, "refresh")
	})

	t.Run("browser is sent back to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout/", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}
