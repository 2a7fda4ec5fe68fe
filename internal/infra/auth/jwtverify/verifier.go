package jwtverify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"contesthub/internal/config"
	"contesthub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const defaultHTTPTimeout = 5 * time.Second

// Verifier checks access tokens locally: HS256 against the project's shared secret, or
// RS256 against keys published at a JWKS endpoint.
type Verifier struct {
	secret    []byte
	issuer    string
	audience  string
	clockSkew time.Duration
	now       func() time.Time
	jwks      *jwksCache
}

type Option func(*Verifier)

func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		if client != nil && v.jwks != nil {
			v.jwks.httpClient = client
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(v *Verifier) {
		if now != nil {
			v.now = now
			if v.jwks != nil {
				v.jwks.now = now
			}
		}
	}
}

func NewVerifier(cfg config.Config, opts ...Option) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	jwksURL := strings.TrimSpace(cfg.JWTJWKSURL)
	if secret == "" && jwksURL == "" {
		return nil, errors.New("JWT_SECRET or JWT_JWKS_URL is required")
	}
	v := &Verifier{
		secret:    []byte(secret),
		issuer:    strings.TrimSpace(cfg.JWTIssuer),
		audience:  strings.TrimSpace(cfg.JWTAudience),
		clockSkew: cfg.JWTClockSkew(),
		now:       time.Now,
	}
	if jwksURL != "" {
		v.jwks = newJWKSCache(jwksURL, &http.Client{Timeout: defaultHTTPTimeout})
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *Verifier) methods() []string {
	var methods []string
	if len(v.secret) > 0 {
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	if v.jwks != nil {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}
	return methods
}

func (v *Verifier) Verify(ctx context.Context, bearerToken string) (domain.Identity, error) {
	if v == nil {
		return domain.Identity{}, domain.ErrProviderUnavailable
	}
	tokenString := strings.TrimSpace(bearerToken)
	if tokenString == "" {
		return domain.Identity{}, domain.ErrInvalidCredential
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods(v.methods()),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.NewParser(parserOpts...).ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		switch t.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return v.secret, nil
		case *jwt.SigningMethodRSA:
			kid, _ := t.Header["kid"].(string)
			return v.jwks.getKey(ctx, kid)
		default:
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: sub claim required", domain.ErrInvalidCredential)
	}
	identity := domain.Identity{UserID: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
