package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	PersistenceTwoPhase = "two_phase"
	PersistenceDeferred = "deferred"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Env         string
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Cache       CacheConfig
	Recommender RecommenderConfig
	Quiz        QuizConfig
	Logger      LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	CORSOrigins  string
}

type DBConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type AuthConfig struct {
	JWT        JWTConfig
	BcryptCost int
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Issuer          string
	Audience        string
}

type CacheConfig struct {
	Backend     string
	QuestionTTL time.Duration
}

type RecommenderConfig struct {
	Provider string
	Timeout  time.Duration
	Gemini   GeminiConfig
	Ollama   OllamaConfig
	OpenAI   OpenAIConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type QuizConfig struct {
	PersistenceMode  string
	AttemptsMaxLimit int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "cognitive_pathways")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt.secret_key", "")
	v.SetDefault("auth.jwt.access_token_ttl", time.Hour)
	v.SetDefault("auth.jwt.refresh_token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.jwt.issuer", "cognitive-pathways-backend")
	v.SetDefault("auth.jwt.audience", "cognitive-pathways-frontend")
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("cache.backend", CacheBackendMemory)
	v.SetDefault("cache.question_ttl", 15*time.Minute)

	v.SetDefault("recommender.provider", "gemini")
	v.SetDefault("recommender.timeout", 20*time.Second)
	v.SetDefault("recommender.gemini.api_key", "")
	v.SetDefault("recommender.gemini.model", "gemini-1.5-flash")
	v.SetDefault("recommender.ollama.server_url", "http://localhost:11434")
	v.SetDefault("recommender.ollama.model", "qwen3:0.6b")
	v.SetDefault("recommender.openai.api_key", "")
	v.SetDefault("recommender.openai.model", "gpt-4o-mini")

	v.SetDefault("quiz.persistence_mode", PersistenceTwoPhase)
	v.SetDefault("quiz.attempts_max_limit", 50)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "")
}

// LoadConfig reads config.yaml when present and overlays environment variables
// (dots become underscores, e.g. AUTH_JWT_SECRET_KEY).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		DB: DBConfig{
			Host:         v.GetString("db.host"),
			Port:         v.GetInt("db.port"),
			User:         v.GetString("db.user"),
			Password:     v.GetString("db.password"),
			DBName:       v.GetString("db.name"),
			SSLMode:      v.GetString("db.sslmode"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
			MaxIdleConns: v.GetInt("db.max_idle_conns"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Auth: AuthConfig{
			JWT: JWTConfig{
				SecretKey:       v.GetString("auth.jwt.secret_key"),
				AccessTokenTTL:  v.GetDuration("auth.jwt.access_token_ttl"),
				RefreshTokenTTL: v.GetDuration("auth.jwt.refresh_token_ttl"),
				Issuer:          v.GetString("auth.jwt.issuer"),
				Audience:        v.GetString("auth.jwt.audience"),
			},
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
		Cache: CacheConfig{
			Backend:     strings.ToLower(v.GetString("cache.backend")),
			QuestionTTL: v.GetDuration("cache.question_ttl"),
		},
		Recommender: RecommenderConfig{
			Provider: strings.ToLower(v.GetString("recommender.provider")),
			Timeout:  v.GetDuration("recommender.timeout"),
			Gemini: GeminiConfig{
				APIKey: v.GetString("recommender.gemini.api_key"),
				Model:  v.GetString("recommender.gemini.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: v.GetString("recommender.ollama.server_url"),
				Model:     v.GetString("recommender.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey: v.GetString("recommender.openai.api_key"),
				Model:  v.GetString("recommender.openai.model"),
			},
		},
		Quiz: QuizConfig{
			PersistenceMode:  strings.ToLower(v.GetString("quiz.persistence_mode")),
			AttemptsMaxLimit: v.GetInt("quiz.attempts_max_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.Env
	}

	switch cfg.Quiz.PersistenceMode {
	case PersistenceTwoPhase, PersistenceDeferred:
	default:
		return nil, fmt.Errorf("invalid quiz.persistence_mode %q: must be %s or %s",
			cfg.Quiz.PersistenceMode, PersistenceTwoPhase, PersistenceDeferred)
	}
	for key, value := range map[string]string{
		"auth.jwt.issuer":   cfg.Auth.JWT.Issuer,
		"auth.jwt.audience": cfg.Auth.JWT.Audience,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid %s: must not be empty", key)
		}
	}
	switch cfg.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return nil, fmt.Errorf("invalid cache.backend %q: must be %s or %s",
			cfg.Cache.Backend, CacheBackendMemory, CacheBackendRedis)
	}
	return cfg, nil
}

// GetDSN returns the Postgres connection URL.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     c.DB.DBName,
		RawQuery: "sslmode=" + c.DB.SSLMode,
	}
	return u.String()
}
