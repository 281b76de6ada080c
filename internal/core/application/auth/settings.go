package auth

import (
	"strings"
	"time"
)

const (
	DefaultTokenTTL    = 240 * time.Minute
	DefaultAPIKeyName  = "dispatch.api"
	DefaultAPIKeyScope = "me_profile,orders:list"
	DefaultAPIKeyGroup = "order_dispatch.dispatch_group_api_driver_user"
)

// Settings is the process-wide auth configuration. It is built once at
// startup and only read afterwards.
type Settings struct {
	secretKey   []byte
	tokenTTL    time.Duration
	apiKeyName  string
	apiKeyScope string
	apiKeyGroup string
}

// NewSettings validates the auth configuration. A blank secret yields
// ErrImproperlyConfigured; every other empty value falls back to its default.
func NewSettings(secretKey string, tokenTTL time.Duration, apiKeyName, apiKeyScope, apiKeyGroup string) (Settings, error) {
	if strings.TrimSpace(secretKey) == "" {
		return Settings{}, ErrImproperlyConfigured
	}
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return Settings{
		secretKey:   []byte(secretKey),
		tokenTTL:    tokenTTL,
		apiKeyName:  withDefault(apiKeyName, DefaultAPIKeyName),
		apiKeyScope: withDefault(apiKeyScope, DefaultAPIKeyScope),
		apiKeyGroup: withDefault(apiKeyGroup, DefaultAPIKeyGroup),
	}, nil
}

func (s Settings) TokenTTL() time.Duration { return s.tokenTTL }

// APIKeyName is the name under which login keys are stored in the backend.
func (s Settings) APIKeyName() string { return s.apiKeyName }

// APIKeyScope is the fixed capability string granted to every login key.
func (s Settings) APIKeyScope() string { return s.apiKeyScope }

// APIKeyGroup is the backend group a user needs to obtain a key.
func (s Settings) APIKeyGroup() string { return s.apiKeyGroup }

func (s Settings) isZero() bool { return len(s.secretKey) == 0 }

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
