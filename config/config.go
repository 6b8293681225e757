package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	JWT          JWT
	Redis        Redis
	Log          Log
	RateLimit    RateLimit
	Quiz         Quiz
	GeminiApiKey string
	// RegistrationKey guards admin self-registration. Empty disables registration.
	RegistrationKey string
}

type Server struct {
	Port               string
	Mode               string
	CORSAllowedOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWT struct {
	Secret      string
	ExpireAfter time.Duration
	ResetAfter  time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Log struct {
	Level string
	File  string
}

type RateLimit struct {
	MaxRequests int
	Window      time.Duration
}

type Quiz struct {
	// ScoreWeight is applied to both total and max score of every submission.
	ScoreWeight int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	config := fromViper()
	if err := config.validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("db_host", config.Database.Host).
		Str("db_name", config.Database.Name).
		Bool("redis", config.Redis.Addr != "").
		Bool("gemini", config.GeminiApiKey != "").
		Int("score_weight", config.Quiz.ScoreWeight).
		Msg("Config loaded")
	return config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "release")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("JWT_EXPIRE_HOURS", 24)
	viper.SetDefault("JWT_RESET_MINUTES", 15)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 1)
	viper.SetDefault("QUIZ_SCORE_WEIGHT", 1)
}

func fromViper() *Config {
	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("SERVER_MODE")
	config.Server.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.ExpireAfter = time.Duration(viper.GetInt("JWT_EXPIRE_HOURS")) * time.Hour
	config.JWT.ResetAfter = time.Duration(viper.GetInt("JWT_RESET_MINUTES")) * time.Minute

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	config.RateLimit.MaxRequests = viper.GetInt("RATE_LIMIT_MAX_REQUESTS")
	config.RateLimit.Window = time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_MINUTES")) * time.Minute

	config.Quiz.ScoreWeight = viper.GetInt("QUIZ_SCORE_WEIGHT")
	if config.Quiz.ScoreWeight < 1 {
		log.Warn().Int("weight", config.Quiz.ScoreWeight).Msg("QUIZ_SCORE_WEIGHT must be positive, using 1")
		config.Quiz.ScoreWeight = 1
	}

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.RegistrationKey = viper.GetString("ADMIN_REGISTRATION_KEY")

	return &config
}

// ErrMissingJWTSecret is returned by NewConfig when JWT_SECRET is not set.
// Admin tokens would otherwise be signed with an empty key.
var ErrMissingJWTSecret = errors.New(`invalid/missing environment variable: "JWT_SECRET"`)

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
