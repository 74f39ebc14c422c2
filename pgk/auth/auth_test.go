package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type tokenInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

func TestGenerateBearerToken_Success(t *testing.T) {
	info := tokenInfo{ID: 1, Login: "admin"}
	token, err := GenerateBearerToken(info, time.Hour, "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, strings.HasPrefix(token, "Bearer "))
}

func TestVerifyJWTBearerToken_Valid(t *testing.T) {
	info := tokenInfo{ID: 1, Login: "admin"}
	tokenStr, err := GenerateBearerToken(info, time.Hour, "secret")
	if err != nil {
		t.Fatal(err)
	}

	verified, err := VerifyJWTBearerToken[tokenInfo](tokenStr, "secret")

	assert.NoError(t, err)
	assert.Equal(t, &info, verified)
}

func TestVerifyJWTBearerToken_InvalidFormat(t *testing.T) {
	testCases := []string{
		"invalid",
		"Bearer",
		"Basic dXNlcjpwYXNz",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			_, err := VerifyJWTBearerToken[tokenInfo](tc, "secret")
			assert.Error(t, err)
		})
	}
}

func TestVerifyJWTBearerToken_WrongSecret(t *testing.T) {
	tokenStr, _ := GenerateBearerToken(tokenInfo{ID: 1}, time.Hour, "secret")

	_, err := VerifyJWTBearerToken[tokenInfo](tokenStr, "wrong-secret")

	assert.Error(t, err)
}

func TestVerifyJWTBearerToken_Expired(t *testing.T) {
	tokenData := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims[tokenInfo]{
		TokenInfo: tokenInfo{ID: 1},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	token, _ := tokenData.SignedString([]byte("secret"))
	fullToken := fmt.Sprintf("Bearer %s", token)

	_, err := VerifyJWTBearerToken[tokenInfo](fullToken, "secret")

	assert.Error(t, err)
}

func TestAuthBearerMiddleware_ValidToken(t *testing.T) {
	info := tokenInfo{ID: 1, Login: "admin"}
	tokenStr, _ := GenerateBearerToken(info, time.Hour, "secret")

	middleware := AuthBearerMiddlewareInit[tokenInfo]("secret")
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, &info, GetTokenInfo[tokenInfo](r))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", tokenStr)
	w := httptest.NewRecorder()

	middleware(nextHandler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthBearerMiddleware_InvalidToken(t *testing.T) {
	middleware := AuthBearerMiddlewareInit[tokenInfo]("secret")
	nextHandler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	testCases := []struct {
		name string
		auth string
	}{
		{"no header", ""},
		{"invalid format", "invalid"},
		{"wrong secret", "Bearer wrongtoken"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.auth)
			w := httptest.NewRecorder()

			middleware(nextHandler).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestGetTokenInfo_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, GetTokenInfo[tokenInfo](req))
}

func TestNewAuthenticatedRequest(t *testing.T) {
	info := tokenInfo{ID: 1, Login: "admin"}

	req := NewAuthenticatedRequest(http.MethodGet, "/", &info, nil)

	assert.Equal(t, &info, GetTokenInfo[tokenInfo](req))
}
