package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crosstop/internal/config"
	"crosstop/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, sub interface{}, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuthOptional(t *testing.T, authz string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.AuthOptional(config.Config{JWTSecret: "test_secret"})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return c
}

func TestAuthOptionalValidToken(t *testing.T) {
	token := signToken(t, "test_secret", 42, time.Now().Add(time.Hour))
	c := runAuthOptional(t, "Bearer "+token)

	assert.Equal(t, true, c.Get(middleware.CtxAuthenticatedKey))
	assert.Equal(t, int64(42), c.Get(middleware.CtxUserIDKey))
}

// ヘッダ無しは匿名として通す
func TestAuthOptionalNoHeader(t *testing.T) {
	c := runAuthOptional(t, "")
	assert.Equal(t, false, c.Get(middleware.CtxAuthenticatedKey))
	assert.Nil(t, c.Get(middleware.CtxUserIDKey))
}

// 署名が合わないトークンも拒否せず匿名に倒す
func TestAuthOptionalBadSignature(t *testing.T) {
	token := signToken(t, "other_secret", 42, time.Now().Add(time.Hour))
	c := runAuthOptional(t, "Bearer "+token)
	assert.Equal(t, false, c.Get(middleware.CtxAuthenticatedKey))
}

func TestAuthOptionalExpiredToken(t *testing.T) {
	token := signToken(t, "test_secret", 42, time.Now().Add(-time.Hour))
	c := runAuthOptional(t, "Bearer "+token)
	assert.Equal(t, false, c.Get(middleware.CtxAuthenticatedKey))
}

func TestAuthOptionalMalformedHeader(t *testing.T) {
	c := runAuthOptional(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, false, c.Get(middleware.CtxAuthenticatedKey))
}
