package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/identity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the token_type returned to clients.
const TokenType = "bearer"

// BearerToken is a signed token as handed to the client.
type BearerToken struct {
	Raw       string
	ExpiresAt time.Time
}

// TokenClaims is the decoded content of a valid bearer token.
type TokenClaims struct {
	Username  string
	AccessKey string
	Scopes    []Scope
	ExpiresAt time.Time
}

type jwtClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens. The subject of a token is
// "<username>|<backend access key>".
type TokenService struct {
	settings Settings
	now      func() time.Time
}

func NewTokenService(settings Settings) *TokenService {
	return &TokenService{settings: settings, now: time.Now}
}

// Issue signs a token for username carrying accessKey and scopes. A ttl of
// zero or less uses the configured default.
func (s *TokenService) Issue(username, accessKey string, scopes []Scope, ttl time.Duration) (BearerToken, error) {
	if s.settings.isZero() {
		return BearerToken{}, ErrImproperlyConfigured
	}
	if err := identity.ValidateUsername(username); err != nil {
		return BearerToken{}, err
	}
	if strings.TrimSpace(accessKey) == "" {
		return BearerToken{}, errors.New("access key is required")
	}
	if ttl <= 0 {
		ttl = s.settings.TokenTTL()
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)
	claims := jwtClaims{
		Scopes: Strings(scopes),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username + identity.SubjectDelimiter + accessKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.settings.secretKey)
	if err != nil {
		return BearerToken{}, fmt.Errorf("sign token: %w", err)
	}
	return BearerToken{Raw: signed, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// Validate verifies the signature and expiry of raw and decodes it. It
// neither checks scopes nor whether the embedded key is still live.
func (s *TokenService) Validate(raw string) (TokenClaims, error) {
	if s.settings.isZero() {
		return TokenClaims{}, ErrImproperlyConfigured
	}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.settings.secretKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenClaims{}, ErrExpiredToken
		}
		return TokenClaims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return TokenClaims{}, ErrMalformedToken
	}

	username, accessKey, err := SplitSubject(claims.Subject)
	if err != nil {
		return TokenClaims{}, err
	}
	return TokenClaims{
		Username:  username,
		AccessKey: accessKey,
		Scopes:    FromStrings(claims.Scopes),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SplitSubject separates a token subject into username and access key.
func SplitSubject(subject string) (username, accessKey string, err error) {
	username, accessKey, found := strings.Cut(subject, identity.SubjectDelimiter)
	if !found || username == "" || accessKey == "" {
		return "", "", fmt.Errorf("%w: subject is not <username>%s<key>", ErrMalformedToken, identity.SubjectDelimiter)
	}
	return username, accessKey, nil
}
