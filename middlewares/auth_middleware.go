package middlewares

import (
	"crypto/subtle"
	"encoding/base64"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tatagen/dogo-akiheyasystem.v2/config"
)

// Claims carried by a staff session token (signed in auth_handler.go)
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// StaffAuth holds the single shared staff credential. Every API call
// must carry it, either as HTTP Basic or as a Bearer token previously
// issued by /auth/login. Authentication lives here, not in the engine,
// so the scheme can be swapped without touching allocation logic.
type StaffAuth struct {
	User   string
	hash   []byte // bcrypt hash of the shared password
	secret string
}

func NewStaffAuth(cfg *config.Config) *StaffAuth {
	hash := []byte(cfg.StaffPasswordHash)
	if len(hash) == 0 {
		// dev convenience: hash the plaintext from env once at startup
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("staff password hash failed: %v", err)
		}
		hash = h
	}
	return &StaffAuth{User: cfg.StaffUser, hash: hash, secret: cfg.JWTSecret}
}

// Verify checks the shared credential. Username comparison is constant
// time; the password goes through bcrypt. Both checks always run.
func (a *StaffAuth) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.User)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
	return userOK && passOK
}

func (a *StaffAuth) Secret() string { return a.secret }

func unauthorized(c echo.Context) error {
	c.Response().Header().Set("WWW-Authenticate", `Basic realm="staff"`)
	return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
}

// RequireStaff guards a route group. Rejections are uniform 401s
// regardless of which part of the credential was wrong.
func (a *StaffAuth) RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 {
				return unauthorized(c)
			}

			switch {
			case strings.EqualFold(parts[0], "Basic"):
				raw, err := base64.StdEncoding.DecodeString(parts[1])
				if err != nil {
					return unauthorized(c)
				}
				user, pass, ok := strings.Cut(string(raw), ":")
				if !ok || !a.Verify(user, pass) {
					return unauthorized(c)
				}
				c.Set("staff_name", user)
				return next(c)

			case strings.EqualFold(parts[0], "Bearer"):
				token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (any, error) {
					// pin the alg so a token can't downgrade it
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
					}
					return []byte(a.secret), nil
				})
				if err != nil || !token.Valid {
					return unauthorized(c)
				}
				claims, ok := token.Claims.(*Claims)
				if !ok {
					return unauthorized(c)
				}
				if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
					return unauthorized(c)
				}
				c.Set("staff_name", claims.Name)
				return next(c)
			}
			return unauthorized(c)
		}
	}
}
