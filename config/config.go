package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath           = "."
	defaultAPIPrefix      = "/api"
	defaultAPITimeout     = 30 * time.Second
	defaultMaxUploadBytes = 5 * 1024 * 1024
	defaultStoragePath    = "engineershub.db"
	defaultQRSize         = 256

	StorageDriverSQLite = "sqlite"
	StorageDriverMemory = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API points the client at the remote backend
	API APIConfig `json:"api" yaml:"api"`

	// Storage configures where the bearer credential survives restarts
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Browser configures how external job links are handed to the user
	Browser *BrowserConfig `json:"browser" yaml:"browser"`
}

// APIConfig defines how the gateway client reaches the backend.
type APIConfig struct {
	BaseURL string        `json:"baseURL" yaml:"baseURL"`
	Prefix  string        `json:"prefix" yaml:"prefix"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxUploadBytes caps resume uploads before any network call
	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// StorageConfig defines the durable credential store.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Path   string `json:"path" yaml:"path"`

	// Passphrase seals the stored credential at rest when set
	Passphrase string `json:"passphrase" yaml:"passphrase"`
}

// BrowserConfig defines the terminal link opener.
type BrowserConfig struct {
	ShowQR               bool   `json:"showQR" yaml:"showQR"`
	QRSize               int    `json:"qrSize" yaml:"qrSize"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: API_BASEURL -> api.baseURL, STORAGE_PASSPHRASE -> storage.passphrase
	// Only keys already present in the YAML can be overridden.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env (if any), then config.yaml with environment overrides.
func New() (*Config, error) {
	// .env is optional; a missing file is the normal case outside development
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset value with its default.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.API.Prefix) == "" {
		cfg.API.Prefix = defaultAPIPrefix
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.API.MaxUploadBytes <= 0 {
		cfg.API.MaxUploadBytes = defaultMaxUploadBytes
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverSQLite
	}
	if cfg.Storage.Driver == StorageDriverSQLite && cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath
	}

	if cfg.Browser == nil {
		cfg.Browser = &BrowserConfig{ShowQR: true}
	}
	if cfg.Browser.QRSize <= 0 {
		cfg.Browser.QRSize = defaultQRSize
	}
	if cfg.Browser.ErrorCorrectionLevel == "" {
		cfg.Browser.ErrorCorrectionLevel = "M"
	}
}

// Validate reports configuration the client cannot start with.
func (cfg *Config) Validate() error {
	if cfg.API.BaseURL == "" {
		return errors.New("api.baseURL is required")
	}

	switch cfg.Storage.Driver {
	case StorageDriverSQLite, StorageDriverMemory:
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	return nil
}

// canonicalizeEnvKey maps an env var onto a leaf key of the loaded YAML.
// Vars that do not name an existing leaf (HOME, PATH, API_TIMEOUT_MS) map to "" and are skipped.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing
	leaf := false

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if leaf {
			return ""
		}

		matched, value, ok := findExistingSegment(current, segment)
		if !ok {
			return ""
		}
		canonical = append(canonical, matched)

		next, isMap := value.(map[string]any)
		current, leaf = next, !isMap
	}

	if !leaf {
		return ""
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, value any, ok bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) == needle {
			return key, value, true
		}
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
