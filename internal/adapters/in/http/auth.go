package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var ErrMissingToken = errors.New("missing bearer token")

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens carrying a principal.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  kernel.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock kernel.Clock) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, time.Second, "unbounded")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (t *TokenIssuer) Issue(p identity.Principal) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	now := t.clock.Now()
	claims := tokenClaims{
		Role: p.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *TokenIssuer) Parse(raw string) (identity.Principal, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return identity.Principal{}, err
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return identity.Principal{}, err
	}
	role, err := identity.ParseRole(claims.Role)
	if err != nil {
		return identity.Principal{}, err
	}
	return identity.NewPrincipal(userID, role)
}

// RequireBearer authenticates the request and stores the principal in the echo context.
func (t *TokenIssuer) RequireBearer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return writeError(ctx, http.StatusUnauthorized, ErrMissingToken.Error())
			}

			p, err := t.Parse(strings.TrimSpace(raw))
			if err != nil {
				return writeError(ctx, http.StatusUnauthorized, "invalid bearer token")
			}

			ctx.Set(principalKey, p)
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (identity.Principal, error) {
	p, ok := ctx.Get(principalKey).(identity.Principal)
	if !ok {
		return identity.Principal{}, ErrMissingToken
	}
	return p, nil
}
