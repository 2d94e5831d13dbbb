package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".fit"
	envPrefix  = "FIT"

	KeyGatewayBaseURL          = "gateway.base_url"
	KeyGatewayTimeout          = "gateway.timeout"
	KeySessionBackend          = "session.backend"
	KeySessionNamespace        = "session.namespace"
	KeyStorageDir              = "storage.dir"
	KeyStorageTOMLPath         = "storage.toml_path"
	KeyNotificationLifetime    = "notifications.lifetime"
	KeyActivityPageSize        = "activities.page_size"
	KeyRecommendationPageSize  = "recommendations.page_size"
	KeyLogLevel                = "log.level"
	defaultGatewayBaseURL      = "http://localhost:8080"
	defaultGatewayTimeout      = 30 * time.Second
	defaultSessionNamespace    = "fit/session"
	defaultNotificationTimeout = 5 * time.Second
	defaultPageSize            = 5
	defaultLogLevel            = "warn"
)

// Session backends selectable through session.backend.
const (
	BackendChain = "chain"
	BackendPass  = "pass"
	BackendFile  = "file"
	BackendTOML  = "toml"
)

type Config struct {
	Gateway                GatewayConfig
	SessionBackend         string
	SessionNamespace       string
	StorageDir             string
	TOMLPath               string
	NotificationLifetime   time.Duration
	ActivityPageSize       int
	RecommendationPageSize int
	LogLevel               slog.Level
}

type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Options locate the inputs. Zero values mean the user's home directory and
// ".env" in the working directory.
type Options struct {
	Home    string
	EnvFile string
}

// Load layers defaults, ~/.fit/config.toml, the .env file and FIT_*
// environment variables, in increasing precedence.
func Load(v *viper.Viper, opts Options) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	home := opts.Home
	if home == "" {
		resolved, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		home = resolved
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	setDefaults(v, home)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(home, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v, home)
}

func setDefaults(v *viper.Viper, home string) {
	storageDir := filepath.Join(home, configDir)

	v.SetDefault(KeyGatewayBaseURL, defaultGatewayBaseURL)
	v.SetDefault(KeyGatewayTimeout, defaultGatewayTimeout)
	v.SetDefault(KeySessionBackend, BackendChain)
	v.SetDefault(KeySessionNamespace, defaultSessionNamespace)
	v.SetDefault(KeyStorageDir, storageDir)
	v.SetDefault(KeyStorageTOMLPath, filepath.Join(storageDir, "session.toml"))
	v.SetDefault(KeyNotificationLifetime, defaultNotificationTimeout)
	v.SetDefault(KeyActivityPageSize, defaultPageSize)
	v.SetDefault(KeyRecommendationPageSize, defaultPageSize)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
}

func fromViper(v *viper.Viper, home string) (Config, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}

	cfg := Config{
		Gateway: GatewayConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString(KeyGatewayBaseURL)), "/"),
			Timeout: v.GetDuration(KeyGatewayTimeout),
		},
		SessionBackend:         strings.ToLower(strings.TrimSpace(v.GetString(KeySessionBackend))),
		SessionNamespace:       strings.Trim(strings.TrimSpace(v.GetString(KeySessionNamespace)), "/"),
		StorageDir:             expandHome(v.GetString(KeyStorageDir), home),
		TOMLPath:               expandHome(v.GetString(KeyStorageTOMLPath), home),
		NotificationLifetime:   v.GetDuration(KeyNotificationLifetime),
		ActivityPageSize:       v.GetInt(KeyActivityPageSize),
		RecommendationPageSize: v.GetInt(KeyRecommendationPageSize),
		LogLevel:               level,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Gateway.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyGatewayBaseURL))
	}
	if c.Gateway.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyGatewayTimeout))
	}
	switch c.SessionBackend {
	case BackendChain, BackendPass, BackendFile, BackendTOML:
	default:
		errs = append(errs, fmt.Errorf("%s %q is not one of chain, pass, file, toml", KeySessionBackend, c.SessionBackend))
	}
	if c.SessionNamespace == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeySessionNamespace))
	}
	if c.NotificationLifetime <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyNotificationLifetime))
	}
	if c.ActivityPageSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyActivityPageSize))
	}
	if c.RecommendationPageSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", KeyRecommendationPageSize))
	}
	return errors.Join(errs...)
}

func expandHome(path string, home string) string {
	path = strings.TrimSpace(path)
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
