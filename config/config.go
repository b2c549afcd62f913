package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	domainerrors "warden/internal/domain/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	minSigningSecretLength    = 32
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Email providers.
const (
	EmailProviderLog     = "log"
	EmailProviderPubSub  = "pubsub"
	EmailProviderAMQP    = "amqp"
	EmailProviderGoCloud = "gocloud"
)

// Token issuer styles, one per credential kind.
const (
	IssuerSigned = "signed"
	IssuerOpaque = "opaque"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicURL is the externally reachable base URL used in emailed links.
		PublicURL    string   `json:"publicUrl" yaml:"publicUrl"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		// Signing is the single symmetric secret for every signed token.
		Signing string `json:"signing" yaml:"signing"`
	} `json:"secretKey" yaml:"secretKey"`

	Tokens TokensConfig `json:"tokens" yaml:"tokens"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Firebase configuration for federated sign-in through Firebase Auth
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Email EmailConfig `json:"email" yaml:"email"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Housekeeping HousekeepingConfig `json:"housekeeping" yaml:"housekeeping"`

	Seed SeedConfig `json:"seed" yaml:"seed"`
}

// StorageConfig selects the credential and account store.
type StorageConfig struct {
	// Driver is "postgres" or "memory".
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate applies embedded goose migrations on start.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SeedConfig lists the bootstrap accounts. Accounts whose email already exists are left untouched.
type SeedConfig struct {
	// OnStartup runs the bootstrap every time the server starts; cmd/seed runs it on demand.
	OnStartup bool         `json:"onStartup" yaml:"onStartup"`
	Admin     *SeedAccount `json:"admin" yaml:"admin"`
	User      *SeedAccount `json:"user" yaml:"user"`
}

type SeedAccount struct {
	Email    string `json:"email" yaml:"email"`
	Name     string `json:"name" yaml:"name"`
	Password string `json:"password" yaml:"password"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// TokensConfig holds per-kind lifetimes and issuer styles.
type TokensConfig struct {
	AccessTTL        time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL       time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	VerifyEmailTTL   time.Duration `json:"verifyEmailTTL" yaml:"verifyEmailTTL"`
	ResetPasswordTTL time.Duration `json:"resetPasswordTTL" yaml:"resetPasswordTTL"`

	// VerifyEmailIssuer and ResetPasswordIssuer are "signed" or "opaque".
	VerifyEmailIssuer   string `json:"verifyEmailIssuer" yaml:"verifyEmailIssuer"`
	ResetPasswordIssuer string `json:"resetPasswordIssuer" yaml:"resetPasswordIssuer"`

	// RotateRefreshOnUse consumes the refresh token on every refresh and returns a new pair.
	RotateRefreshOnUse bool `json:"rotateRefreshOnUse" yaml:"rotateRefreshOnUse"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
	// ClientSecret lets the server refresh stored Google grants. Without it expired grants are rejected.
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost               int  `json:"bcryptCost" yaml:"bcryptCost"`
	RequireEmailConfirmation bool `json:"requireEmailConfirmation" yaml:"requireEmailConfirmation"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase Auth configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// EmailConfig defines where action emails are handed off and which links they carry.
type EmailConfig struct {
	// Provider: "log", "pubsub", "amqp" or "gocloud"
	Provider string `json:"provider" yaml:"provider"`

	// VerifyEmailURL receives ?token=... ; defaults to {http.publicUrl}/auth/verify-email
	VerifyEmailURL string `json:"verifyEmailUrl" yaml:"verifyEmailUrl"`

	// ResetPasswordURL is usually a frontend page that posts the token back
	ResetPasswordURL string `json:"resetPasswordUrl" yaml:"resetPasswordUrl"`

	PubSub  PubSubConfig  `json:"pubsub" yaml:"pubsub"`
	AMQP    AMQPConfig    `json:"amqp" yaml:"amqp"`
	GoCloud GoCloudConfig `json:"gocloud" yaml:"gocloud"`
}

// PubSubConfig defines Google Pub/Sub configuration
type PubSubConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

// AMQPConfig defines RabbitMQ configuration
type AMQPConfig struct {
	URL   string `json:"url" yaml:"url"`
	Queue string `json:"queue" yaml:"queue"`
}

// GoCloudConfig defines a portable gocloud.dev topic, e.g. "mem://emails" or "gcppubsub://projects/p/topics/t"
type GoCloudConfig struct {
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`
}

// RateLimitConfig defines the redis token bucket guarding credential-guessing endpoints.
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
}

// HousekeepingConfig controls the in-process sweeper.
type HousekeepingConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset values with the production defaults.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}

	tokens := &cfg.Tokens
	setDuration(&tokens.AccessTTL, 15*time.Minute)
	setDuration(&tokens.RefreshTTL, 30*24*time.Hour)
	setDuration(&tokens.VerifyEmailTTL, 5*time.Minute)
	setDuration(&tokens.ResetPasswordTTL, 5*time.Minute)
	if tokens.VerifyEmailIssuer == "" {
		tokens.VerifyEmailIssuer = IssuerOpaque
	}
	if tokens.ResetPasswordIssuer == "" {
		tokens.ResetPasswordIssuer = IssuerOpaque
	}

	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}

	strength := &cfg.PasswordStrength
	if strength.MinLength == 0 {
		strength.MinLength = 8
	}
	if strength.MaxLength == 0 {
		// bcrypt ignores input past 72 bytes
		strength.MaxLength = 72
	}

	if cfg.Email.Provider == "" {
		cfg.Email.Provider = EmailProviderLog
	}
	if cfg.Email.VerifyEmailURL == "" {
		cfg.Email.VerifyEmailURL = strings.TrimRight(cfg.HTTP.PublicURL, "/") + "/auth/verify-email"
	}
	if cfg.Email.ResetPasswordURL == "" {
		cfg.Email.ResetPasswordURL = strings.TrimRight(cfg.HTTP.PublicURL, "/") + "/auth/reset-password"
	}

	rl := &cfg.RateLimit
	if rl.Capacity == 0 {
		rl.Capacity = 10
	}
	if rl.RefillTokens == 0 {
		rl.RefillTokens = 1
	}
	setDuration(&rl.RefillInterval, 6*time.Second)
	setDuration(&rl.TTL, 10*time.Minute)
	if rl.Prefix == "" {
		rl.Prefix = "warden:rl"
	}

	setDuration(&cfg.Housekeeping.Interval, time.Hour)
	setDuration(&cfg.Housekeeping.Timeout, time.Minute)
}

// Validate rejects configurations the process cannot run with.
func (cfg *Config) Validate() error {
	if len(cfg.SecretKey.Signing) < minSigningSecretLength {
		return errors.Wrapf(domainerrors.ErrMisconfiguredSecret, "secretKey.signing must be at least %d bytes", minSigningSecretLength)
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres storage driver")
		}
	case StorageDriverMemory:
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	for name, issuer := range map[string]string{
		"tokens.verifyEmailIssuer":   cfg.Tokens.VerifyEmailIssuer,
		"tokens.resetPasswordIssuer": cfg.Tokens.ResetPasswordIssuer,
	} {
		if issuer != IssuerSigned && issuer != IssuerOpaque {
			return errors.Errorf("%s must be %q or %q, got %q", name, IssuerSigned, IssuerOpaque, issuer)
		}
	}

	for name, ttl := range map[string]time.Duration{
		"tokens.accessTTL":        cfg.Tokens.AccessTTL,
		"tokens.refreshTTL":       cfg.Tokens.RefreshTTL,
		"tokens.verifyEmailTTL":   cfg.Tokens.VerifyEmailTTL,
		"tokens.resetPasswordTTL": cfg.Tokens.ResetPasswordTTL,
	} {
		if ttl <= 0 {
			return errors.Errorf("%s must be positive", name)
		}
	}

	switch cfg.Email.Provider {
	case EmailProviderLog, EmailProviderPubSub, EmailProviderAMQP, EmailProviderGoCloud:
	default:
		return errors.Errorf("unknown email provider: %s", cfg.Email.Provider)
	}

	if cfg.RateLimit.Enabled && cfg.Redis == nil {
		return errors.New("rateLimit.enabled requires a redis section")
	}

	for name, account := range map[string]*SeedAccount{"seed.admin": cfg.Seed.Admin, "seed.user": cfg.Seed.User} {
		if account == nil || account.Email == "" {
			continue
		}
		if account.Password == "" {
			return errors.Errorf("%s.password is required when %s.email is set", name, name)
		}
	}

	return nil
}

func setDuration(target *time.Duration, fallback time.Duration) {
	if *target == 0 {
		*target = fallback
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
