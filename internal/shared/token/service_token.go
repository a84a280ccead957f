package token

import (
	"errors"
	"time"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

// Scopes granted to elevated platform calls
const (
	ScopeMembersCreate   = "members.create"
	ScopeAutomationsRun  = "automations.run"
	ServiceTokenAudience = "site-platform"
)

// Claims identify this backend to the hosted platform.
type Claims struct {
	SiteID string `json:"site_id"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// Issuer mints short-lived service tokens for elevated platform calls.
type Issuer interface {
	IssueServiceToken(scope string) (string, error)
}

type JWTIssuer struct {
	secret []byte
	issuer string
	siteID string
	expiry time.Duration
	now    func() time.Time
}

func NewJWTIssuer(cfg *config.Config) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(cfg.Platform.ServiceSecret),
		issuer: cfg.App.Name,
		siteID: cfg.Platform.SiteID,
		expiry: cfg.Platform.TokenExpiry,
		now:    time.Now,
	}
}

func (m *JWTIssuer) IssueServiceToken(scope string) (string, error) {
	now := m.now()

	claims := Claims{
		SiteID: m.siteID,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.issuer,
			Audience:  jwt.ClaimStrings{ServiceTokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseServiceToken validates a token minted by IssueServiceToken.
func (m *JWTIssuer) ParseServiceToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience(ServiceTokenAudience),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
