package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatagen/dogo-akiheyasystem.v2/config"
)

func testAuth(t *testing.T) *StaffAuth {
	t.Helper()
	return NewStaffAuth(&config.Config{
		StaffUser:     "staff",
		StaffPassword: "onsen-secret",
		JWTSecret:     "test-secret",
	})
}

func protectedEcho(a *StaffAuth) *echo.Echo {
	e := echo.New()
	e.GET("/api/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"ok": true})
	}, a.RequireStaff())
	return e
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func signTestToken(t *testing.T, secret, name string, exp time.Time) string {
	t.Helper()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": name,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	})
	s, err := tk.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerifyCredential(t *testing.T) {
	a := testAuth(t)

	assert.True(t, a.Verify("staff", "onsen-secret"))
	assert.False(t, a.Verify("staff", "wrong"))
	assert.False(t, a.Verify("admin", "onsen-secret"))
	assert.False(t, a.Verify("", ""))
}

func TestVerifyAgainstProvidedHash(t *testing.T) {
	// APP_PASSWORD_HASH wins over the plaintext when both are set
	a := NewStaffAuth(&config.Config{
		StaffUser:         "staff",
		StaffPassword:     "ignored",
		StaffPasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password"
		JWTSecret:         "test-secret",
	})
	assert.True(t, a.Verify("staff", "password"))
	assert.False(t, a.Verify("staff", "ignored"))
}

func TestRequireStaffBasic(t *testing.T) {
	a := testAuth(t)
	e := protectedEcho(a)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", basicHeader("staff", "onsen-secret"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStaffRejectsUniformly(t *testing.T) {
	a := testAuth(t)
	e := protectedEcho(a)

	cases := map[string]string{
		"no header":      "",
		"wrong password": basicHeader("staff", "nope"),
		"wrong username": basicHeader("admin", "onsen-secret"),
		"broken base64":  "Basic %%%",
		"no colon":       "Basic " + base64.StdEncoding.EncodeToString([]byte("staffonly")),
		"unknown scheme": "Digest abc",
		"garbage bearer": "Bearer not-a-token",
		"expired bearer": "Bearer " + signTestToken(t, "test-secret", "staff", time.Now().Add(-time.Hour)),
		"foreign bearer": "Bearer " + signTestToken(t, "other-secret", "staff", time.Now().Add(time.Hour)),
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED", name)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic", name)
	}
}

func TestRequireStaffBearer(t *testing.T) {
	a := testAuth(t)
	e := protectedEcho(a)

	token := signTestToken(t, "test-secret", "staff", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
