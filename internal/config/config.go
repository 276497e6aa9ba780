package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"storytrip-server/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AIProviderOpenAI = "openai"
	AIProviderOllama = "ollama"
)

// Config holds the StoryTrip server settings.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING"`

	Port               string   `envconfig:"PORT" default:"5001"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// DatabaseURL, when set, wins over the DB_* fields.
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string        `envconfig:"DB_PASSWORD"`
	DBName        string        `envconfig:"DB_NAME" default:"storytrip_ai"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int32         `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"5m"`
	DBAutoMigrate bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	AIProvider string        `envconfig:"AI_PROVIDER" default:"openai"`
	AIAPIKey   string        `envconfig:"GEMINI_API_KEY"`
	AIBaseURL  string        `envconfig:"AI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	AIModel    string        `envconfig:"AI_MODEL" default:"gemini-2.0-flash"`
	AITimeout  time.Duration `envconfig:"AI_TIMEOUT" default:"0s"`

	ElevenLabsAPIKey  string        `envconfig:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string        `envconfig:"ELEVENLABS_VOICE_ID"`
	ElevenLabsModelID string        `envconfig:"ELEVENLABS_MODEL_ID" default:"eleven_monolingual_v1"`
	ElevenLabsBaseURL string        `envconfig:"ELEVENLABS_BASE_URL" default:"https://api.elevenlabs.io/v1"`
	TTSTimeout        time.Duration `envconfig:"TTS_TIMEOUT" default:"0s"`
}

// GetDSN returns the PostgreSQL connection string.
func (c *Config) GetDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

// AIEnabled reports whether a real narrative provider is configured.
// Ollama runs locally and needs no key.
func (c *Config) AIEnabled() bool {
	if c.AIProvider == AIProviderOllama {
		return true
	}
	return c.AIAPIKey != ""
}

// LoadConfig reads .env (if present), the environment and Docker secrets.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))
	switch cfg.AIProvider {
	case AIProviderOpenAI, AIProviderOllama:
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}

	var err error
	if cfg.AIAPIKey, err = utils.SecretOrEnv(cfg.AIAPIKey, "gemini_api_key"); err != nil {
		return nil, err
	}
	if cfg.DBPassword, err = utils.SecretOrEnv(cfg.DBPassword, "db_password"); err != nil {
		return nil, err
	}
	if cfg.ElevenLabsAPIKey, err = utils.SecretOrEnv(cfg.ElevenLabsAPIKey, "elevenlabs_api_key"); err != nil {
		return nil, err
	}

	return &cfg, nil
}
