// Package config настройки ledgerd: флаги, переменные окружения LEDGERD_* и YAML файл.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения сервера
const EnvPrefix = "LEDGERD"

// Ключи настроек
const (
	KeyConfig     = "config"
	KeyListen     = "listen"
	KeyDB         = "db"
	KeyJWTSecret  = "jwt-secret"
	KeySessionTTL = "session-ttl"
	KeyIndexLag   = "index-lag"
	KeyRateLimit  = "rate-limit"
	KeyRateWindow = "rate-window"
	KeyLogLevel   = "log-level"
)

// Значения по умолчанию
const (
	DefaultListen     = ":8080"
	DefaultDB         = "ledger.db"
	DefaultSessionTTL = 24 * time.Hour
	DefaultIndexLag   = 3 * time.Second
	DefaultRateLimit  = 100
	DefaultRateWindow = time.Minute
	DefaultLogLevel   = "info"

	// minSecretLen минимальная длина секрета подписи JWT
	minSecretLen = 32
)

// Config настройки сервера
type Config struct {
	Listen     string
	DBPath     string
	JWTSecret  string
	LogLevel   string
	SessionTTL time.Duration
	IndexLag   time.Duration
	RateWindow time.Duration
	RateLimit  int
}

// RegisterFlags объявляет флаги сервера и связывает их с viper
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.StringP(KeyConfig, "c", "", "path to YAML config file")
	flags.String(KeyListen, DefaultListen, "HTTP listen address")
	flags.String(KeyDB, DefaultDB, "path to SQLite database")
	flags.String(KeyJWTSecret, "", "secret for signing session tokens (required)")
	flags.Duration(KeySessionTTL, DefaultSessionTTL, "session token lifetime")
	flags.Duration(KeyIndexLag, DefaultIndexLag, "delay before commits become visible in the owner index")
	flags.Int(KeyRateLimit, DefaultRateLimit, "requests per client IP per rate window, 0 disables limiting")
	flags.Duration(KeyRateWindow, DefaultRateWindow, "rate limit window")
	flags.String(KeyLogLevel, DefaultLogLevel, "log level (debug|info|warn|error)")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		KeyConfig, KeyListen, KeyDB, KeyJWTSecret, KeySessionTTL,
		KeyIndexLag, KeyRateLimit, KeyRateWindow, KeyLogLevel,
	} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load читает файл конфигурации (если задан) и собирает Config
func Load(v *viper.Viper) (Config, error) {
	if path := strings.TrimSpace(v.GetString(KeyConfig)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	cfg := Config{
		Listen:     strings.TrimSpace(v.GetString(KeyListen)),
		DBPath:     v.GetString(KeyDB),
		JWTSecret:  v.GetString(KeyJWTSecret),
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		SessionTTL: v.GetDuration(KeySessionTTL),
		IndexLag:   v.GetDuration(KeyIndexLag),
		RateWindow: v.GetDuration(KeyRateWindow),
		RateLimit:  v.GetInt(KeyRateLimit),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения настроек
func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%s is required", KeyListen)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%s is required", KeyDB)
	}
	if len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("%s must be at least %d characters", KeyJWTSecret, minSecretLen)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%s must be positive", KeySessionTTL)
	}
	if c.IndexLag < 0 {
		return fmt.Errorf("%s must not be negative", KeyIndexLag)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%s must not be negative", KeyRateLimit)
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return fmt.Errorf("%s must be positive", KeyRateWindow)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level уровень логирования slog
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
