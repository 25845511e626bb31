package http

import (
	"net/http"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	callerContextKey = "caller"
	bearerPrefix     = "Bearer "
)

// Claims identify the caller by the token subject.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 bearer tokens whose subject is the
// caller's account.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

func NewAuthenticator(secret string, ttl time.Duration, clock ports.Clock) (*Authenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// IssueToken signs a token for account valid for the configured ttl.
func (a *Authenticator) IssueToken(account kernel.Account) (string, error) {
	if err := account.Validate(); err != nil {
		return "", err
	}
	now := a.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Middleware rejects requests without a valid token and stores the caller in
// the echo context.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header required (Bearer <token>)")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(header, bearerPrefix),
				claims,
				func(*jwt.Token) (any, error) { return a.secret, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithExpirationRequired(),
				jwt.WithTimeFunc(a.clock.Now),
			)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			caller, err := kernel.NewAccount(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token subject is not an account")
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// callerOf returns the authenticated caller, or the zero Account on routes
// without authentication.
func callerOf(c echo.Context) kernel.Account {
	caller, _ := c.Get(callerContextKey).(kernel.Account)
	return caller
}
