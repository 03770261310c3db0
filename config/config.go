package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var AppConfig *Config

// Cache types accepted by cache.type.
const (
	CacheTypeHeap = "heap"
	CacheTypeNone = "none"
)

// Errors.
var (
	ErrUnknownCacheType = errors.New("cache type must be empty, 'heap' or 'none'")
	ErrEmptyCacheName   = errors.New("cache names cannot contain empty values")
)

type (
	// Config -.
	Config struct {
		App   `yaml:"app"`
		HTTP  `yaml:"http"`
		Log   `yaml:"logger"`
		Cache `yaml:"cache"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level"   env:"LOG_LEVEL"`
	}

	// Cache holds the cache-manager properties.
	// An empty Type lets the heap cache configuration decide on its own.
	Cache struct {
		Type        string    `yaml:"type" env:"CACHE_TYPE"`
		CacheNames  []string  `yaml:"cache_names" env:"CACHE_NAMES"`
		ResourceDir string    `yaml:"resource_dir" env:"CACHE_RESOURCE_DIR"`
		Heap        HeapCache `yaml:"heap"`
	}

	// HeapCache -.
	HeapCache struct {
		// Config is the location of the heap cache configuration file,
		// either a path, a file: URL or a classpath: location.
		Config string `yaml:"config" env:"CACHE_HEAP_CONFIG"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "cacheboot",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8282",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Cache: Cache{
			Type:        "",
			CacheNames:  []string{},
			ResourceDir: "",
			Heap: HeapCache{
				Config: "",
			},
		},
	}
}

// ValidateCacheConfig checks the cache section for values the cache
// configuration cannot act on.
func (c *Config) ValidateCacheConfig() error {
	switch c.Cache.Type {
	case "", CacheTypeHeap, CacheTypeNone:
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownCacheType, c.Cache.Type)
	}

	for _, name := range c.CacheNames {
		if name == "" {
			return ErrEmptyCacheName
		}
	}

	return nil
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		return encoder.Encode(cfg)
	}

	return err
}

// Load reads the config file at configPath (creating it from defaults when
// missing) and applies environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := defaultConfig()

	if err := readOrInitConfig(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	// classpath: locations resolve next to the config file unless told otherwise
	if cfg.ResourceDir == "" {
		cfg.ResourceDir = filepath.Dir(configPath)
	}

	if err := cfg.ValidateCacheConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}

	AppConfig = cfg

	return AppConfig, nil
}
