package heapcache

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/go-xmlfmt/xmlfmt"
	"gopkg.in/yaml.v2"
)

// Failsafe values used when a configuration leaves them out.
const (
	DefaultTimeToLiveSeconds      = 120
	DefaultCleanupIntervalSeconds = 60
	DefaultManagerName            = "__DEFAULT__"
)

// Format is a configuration file encoding.
type Format int

const (
	XML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}

	return "xml"
}

// FormatFor picks the decoder for a file name: .yml and .yaml are YAML,
// everything else is XML.
func FormatFor(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".yml", ".yaml":
		return YAML
	default:
		return XML
	}
}

var (
	errEmptyCacheName     = errors.New("cache name cannot be empty")
	errDuplicateCacheName = errors.New("duplicate cache name")
	errNegativeTTL        = errors.New("timeToLiveSeconds cannot be negative")
	errNegativeCleanup    = errors.New("cleanupIntervalSeconds cannot be negative")
)

// ParseError reports a configuration that could not be decoded or that
// declares invalid caches.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("heapcache: invalid %s configuration: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Configuration describes a Manager and its caches.
type Configuration struct {
	XMLName                xml.Name             `xml:"heapcache" yaml:"-"`
	Name                   string               `xml:"name,attr,omitempty" yaml:"name,omitempty"`
	CleanupIntervalSeconds int64                `xml:"cleanupIntervalSeconds,attr,omitempty" yaml:"cleanup_interval_seconds,omitempty"`
	DefaultCache           *CacheConfiguration  `xml:"defaultCache" yaml:"default_cache,omitempty"`
	Caches                 []CacheConfiguration `xml:"cache" yaml:"caches,omitempty"`
}

// CacheConfiguration describes one cache. A zero TimeToLiveSeconds or
// Eternal set means entries never expire.
type CacheConfiguration struct {
	Name              string `xml:"name,attr,omitempty" yaml:"name,omitempty"`
	TimeToLiveSeconds int64  `xml:"timeToLiveSeconds,attr,omitempty" yaml:"time_to_live_seconds,omitempty"`
	Eternal           bool   `xml:"eternal,attr,omitempty" yaml:"eternal,omitempty"`
}

// TTL returns the entry lifetime, or 0 when entries do not expire.
func (c CacheConfiguration) TTL() time.Duration {
	if c.Eternal {
		return 0
	}

	return time.Duration(c.TimeToLiveSeconds) * time.Second
}

// DefaultConfiguration is used when no configuration file is available.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Name:                   DefaultManagerName,
		CleanupIntervalSeconds: DefaultCleanupIntervalSeconds,
		DefaultCache:           &CacheConfiguration{TimeToLiveSeconds: DefaultTimeToLiveSeconds},
	}
}

// ParseConfiguration decodes r and validates the result. Any failure is a
// *ParseError.
func ParseConfiguration(r io.Reader, f Format) (*Configuration, error) {
	cfg := &Configuration{}

	var err error

	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(cfg)
	default:
		err = xml.NewDecoder(r).Decode(cfg)
	}

	if err != nil {
		return nil, &ParseError{Format: f, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{Format: f, Err: err}
	}

	return cfg, nil
}

// Validate checks cache names and durations.
func (c *Configuration) Validate() error {
	if c.CleanupIntervalSeconds < 0 {
		return errNegativeCleanup
	}

	if c.DefaultCache != nil && c.DefaultCache.TimeToLiveSeconds < 0 {
		return fmt.Errorf("defaultCache: %w", errNegativeTTL)
	}

	seen := make(map[string]struct{}, len(c.Caches))

	for i, cc := range c.Caches {
		if cc.Name == "" {
			return fmt.Errorf("cache #%d: %w", i+1, errEmptyCacheName)
		}

		if _, ok := seen[cc.Name]; ok {
			return fmt.Errorf("%w %q", errDuplicateCacheName, cc.Name)
		}

		seen[cc.Name] = struct{}{}

		if cc.TimeToLiveSeconds < 0 {
			return fmt.Errorf("cache %q: %w", cc.Name, errNegativeTTL)
		}
	}

	return nil
}

// template returns the configuration applied to caches added at runtime.
func (c *Configuration) template(name string) CacheConfiguration {
	tpl := CacheConfiguration{TimeToLiveSeconds: DefaultTimeToLiveSeconds}
	if c.DefaultCache != nil {
		tpl = *c.DefaultCache
	}

	tpl.Name = name

	return tpl
}

func (c *Configuration) cleanupInterval() time.Duration {
	if c.CleanupIntervalSeconds == 0 {
		return DefaultCleanupIntervalSeconds * time.Second
	}

	return time.Duration(c.CleanupIntervalSeconds) * time.Second
}

// PrettyXML renders the configuration as indented XML.
func (c *Configuration) PrettyXML() (string, error) {
	var buf bytes.Buffer

	if err := xml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}

	out := xmlfmt.FormatXML(buf.String(), "", "  ")

	return strings.TrimSpace(strings.ReplaceAll(out, "\r\n", "\n")), nil
}
