package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tatagen/dogo-akiheyasystem.v2/middlewares"
)

type AuthHandler struct {
	Auth *middlewares.StaffAuth
}

func NewAuthHandler(auth *middlewares.StaffAuth) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) signJWT(name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.Auth.Secret()))
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
// Trades the shared staff credential for a short-lived bearer token, so
// terminals don't have to keep the password around per request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	if !h.Auth.Verify(username, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(username, 12*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"username": username, "role": "staff"},
	})
}
