// Package config загрузка настроек vaultctl из флагов, окружения и YAML файла.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/vaultkeeper/internal/client/mutation"
)

// EnvPrefix префикс переменных окружения клиента
const EnvPrefix = "VAULTKEEPER"

// Ключи настроек
const (
	KeyConfig          = "config"
	KeyServer          = "server"
	KeyDB              = "db"
	KeyLogLevel        = "log-level"
	KeyPollBaseDelay   = "poll-base-delay"
	KeyPollMaxAttempts = "poll-max-attempts"
	KeyAutoApprove     = "auto-approve"
	KeyPassphraseFile  = "passphrase-file"
	KeyTimeout         = "timeout"
)

// Значения по умолчанию
const (
	DefaultServer   = "http://localhost:8080"
	DefaultDB       = "vaultkeeper.db"
	DefaultLogLevel = "warn"
	DefaultTimeout  = 2 * time.Minute
)

// Config настройки клиента
type Config struct {
	Server          string
	DBPath          string
	LogLevel        string
	PassphraseFile  string
	ConfigFile      string
	PollBaseDelay   time.Duration
	Timeout         time.Duration
	PollMaxAttempts int
	AutoApprove     bool
}

// Poll параметры поллинга сходимости
func (c Config) Poll() mutation.PollConfig {
	return mutation.PollConfig{BaseDelay: c.PollBaseDelay, MaxAttempts: c.PollMaxAttempts}
}

// RegisterFlags объявляет флаги клиента и связывает их с ключами viper и окружением.
// Переменная окружения ключа poll-base-delay: VAULTKEEPER_POLL_BASE_DELAY.
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	defaults := mutation.DefaultPollConfig()

	flags.StringP(KeyConfig, "c", "", "path to YAML config file")
	flags.String(KeyServer, DefaultServer, "ledger base URL")
	flags.String(KeyDB, DefaultDB, "path to local database")
	flags.String(KeyLogLevel, DefaultLogLevel, "log level (debug|info|warn|error)")
	flags.Duration(KeyPollBaseDelay, defaults.BaseDelay, "first wait of the convergence poll, doubled on every attempt")
	flags.Int(KeyPollMaxAttempts, defaults.MaxAttempts, "convergence poll attempts before a soft timeout")
	flags.Bool(KeyAutoApprove, false, "sign transactions without confirmation")
	flags.String(KeyPassphraseFile, "", "path to file containing the wallet passphrase")
	flags.Duration(KeyTimeout, DefaultTimeout, "overall timeout of one command")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		KeyConfig, KeyServer, KeyDB, KeyLogLevel, KeyPollBaseDelay,
		KeyPollMaxAttempts, KeyAutoApprove, KeyPassphraseFile, KeyTimeout,
	} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load читает файл конфигурации (если задан) и собирает Config
func Load(v *viper.Viper) (Config, error) {
	cfgPath := strings.TrimSpace(v.GetString(KeyConfig))
	if cfgPath != "" {
		expanded, err := expandPath(cfgPath)
		if err != nil {
			return Config{}, fmt.Errorf("expand config path %q: %w", cfgPath, err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", expanded, err)
		}
		cfgPath = expanded
	}

	cfg := Config{
		Server:          strings.TrimRight(strings.TrimSpace(v.GetString(KeyServer)), "/"),
		DBPath:          v.GetString(KeyDB),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		PassphraseFile:  v.GetString(KeyPassphraseFile),
		ConfigFile:      cfgPath,
		PollBaseDelay:   v.GetDuration(KeyPollBaseDelay),
		Timeout:         v.GetDuration(KeyTimeout),
		PollMaxAttempts: v.GetInt(KeyPollMaxAttempts),
		AutoApprove:     v.GetBool(KeyAutoApprove),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения настроек
func (c Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("%s is required", KeyServer)
	}
	if !strings.HasPrefix(c.Server, "http://") && !strings.HasPrefix(c.Server, "https://") {
		return fmt.Errorf("%s must be an http(s) URL, got %q", KeyServer, c.Server)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%s is required", KeyDB)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive", KeyTimeout)
	}
	if err := c.Poll().Validate(); err != nil {
		return fmt.Errorf("invalid poll settings: %w", err)
	}
	return nil
}

// ParseLevel переводит имя уровня в slog.Level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func expandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(p) == 1 {
			p = home
		} else if p[1] == '/' || p[1] == '\\' {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Abs(p)
}
