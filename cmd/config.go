package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/core/application/auth"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/workerpool"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are read in order; later files override earlier ones.
var DefaultEnvFiles = []string{".env.shared", ".env.secret"}

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// DBAutoMigrate creates the tables this service maps. Meant for local
	// stacks; in production the backend owns the schema.
	DBAutoMigrate bool

	SecretKey   string
	TokenTTL    time.Duration
	APIKeyName  string
	APIKeyScope string
	APIKeyGroup string

	// BotUserID is the backend user that holds unclaimed pickings. Pickings
	// it holds count as vacant.
	BotUserID kernel.ObjectID

	WorkerPoolSize   int
	BackendTxTimeout time.Duration
	TokenRateLimit   float64
	TokenRateBurst   int

	KeyReaperSchedule string
}

// AuthSettings converts the auth part of the configuration.
func (c Config) AuthSettings() (auth.Settings, error) {
	return auth.NewSettings(c.SecretKey, c.TokenTTL, c.APIKeyName, c.APIKeyScope, c.APIKeyGroup)
}

// DSN returns the postgres connection string of the backend store.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the env files that exist, then the process environment,
// each layer overriding the previous one.
func LoadConfig(envFiles ...string) (Config, error) {
	values := make(map[string]string)
	for _, file := range envFiles {
		fileValues, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		maps.Copy(values, fileValues)
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			values[k] = v
		}
	}
	return ParseConfig(values)
}

// ParseConfig builds a Config from raw values, applying defaults. A missing
// SECRET_KEY is auth.ErrImproperlyConfigured.
func ParseConfig(values map[string]string) (Config, error) {
	p := parser{values: values}

	cfg := Config{
		HTTPPort:   p.str("HTTP_PORT", "8000"),
		DBHost:     p.str("DB_HOST", "localhost"),
		DBPort:     p.str("DB_PORT", "5432"),
		DBUser:     p.str("DB_USER", "postgres"),
		DBPassword: p.str("DB_PASSWORD", ""),
		DBName:     p.str("DB_NAME", "odoo"),
		DBSslMode:  p.str("DB_SSLMODE", "disable"),

		DBAutoMigrate: p.boolean("DB_AUTO_MIGRATE", false),

		SecretKey:   p.str("SECRET_KEY", ""),
		TokenTTL:    time.Duration(p.integer("ACCESS_TOKEN_EXPIRE_MINUTES", int(auth.DefaultTokenTTL/time.Minute))) * time.Minute,
		APIKeyName:  p.str("API_KEY_NAME", auth.DefaultAPIKeyName),
		APIKeyScope: p.str("API_KEY_SCOPE", auth.DefaultAPIKeyScope),
		APIKeyGroup: p.str("API_KEY_GROUP", auth.DefaultAPIKeyGroup),

		BotUserID: kernel.ObjectID(p.integer("BOT_USER_ID", 1)),

		WorkerPoolSize:   p.integer("WORKER_POOL_SIZE", workerpool.DefaultSize),
		BackendTxTimeout: time.Duration(p.integer("BACKEND_TX_TIMEOUT_SECONDS", 30)) * time.Second,
		TokenRateLimit:   p.float("TOKEN_RATE_LIMIT", 5),
		TokenRateBurst:   p.integer("TOKEN_RATE_BURST", 10),

		KeyReaperSchedule: p.str("KEY_REAPER_SCHEDULE", jobs.DefaultReaperSchedule),
	}

	var secretErr, botErr, poolErr error
	if strings.TrimSpace(cfg.SecretKey) == "" {
		secretErr = fmt.Errorf("SECRET_KEY: %w", auth.ErrImproperlyConfigured)
	}
	if err := cfg.BotUserID.Validate(); err != nil {
		botErr = fmt.Errorf("BOT_USER_ID: %w", err)
	}
	if cfg.WorkerPoolSize <= 0 {
		poolErr = fmt.Errorf("WORKER_POOL_SIZE: must be positive, got %d", cfg.WorkerPoolSize)
	}
	if err := errors.Join(append(p.errs, secretErr, botErr, poolErr)...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type parser struct {
	values map[string]string
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(p.values[key]); v != "" {
		return v
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *parser) float(key string, def float64) float64 {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return f
}

func (p *parser) boolean(key string, def bool) bool {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}
