package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the esmcp configuration.
type Config struct {
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Transport     string              `yaml:"transport"` // stdio (default) | http
	HTTP          HTTPConfig          `yaml:"http"`
	Auth          AuthConfig          `yaml:"auth"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ElasticsearchConfig holds engine connection settings.
type ElasticsearchConfig struct {
	URLs     []string `yaml:"urls"`
	APIKey   string   `yaml:"api_key"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	CACert   string   `yaml:"ca_cert"` // path to a PEM bundle
}

// BasicAuth reports whether username/password authentication applies.
// An API key takes precedence; a lone username or password is ignored.
func (e ElasticsearchConfig) BasicAuth() bool {
	return e.APIKey == "" && e.Username != "" && e.Password != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds bearer authentication for the HTTP transport.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port           int `yaml:"port"`
	ReadTimeoutSec int `yaml:"read_timeout_sec"`
	ShutdownSec    int `yaml:"shutdown_timeout_sec"`
}

// Options select the config sources and carry CLI overrides. Zero values mean "not set".
type Options struct {
	Env       string
	Path      string // explicit YAML file; otherwise config/<env>.yaml when present
	DotEnvDir string // directory holding .env.local and .env; defaults to "."
	Transport string
	Port      int
	LogLevel  string
	// LookupEnv reads the process environment; defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// envAliases maps each setting to its variable names, preferred first.
var envAliases = map[string][]string{
	"urls":      {"ES_URL", "HOST"},
	"api_key":   {"ES_API_KEY", "API_KEY"},
	"username":  {"ES_USERNAME", "USERNAME"},
	"password":  {"ES_PASSWORD", "PASSWORD"},
	"ca_cert":   {"ES_CA_CERT", "CA_CERT"},
	"transport": {"ESMCP_TRANSPORT"},
	"port":      {"ESMCP_HTTP_PORT"},
	"api_keys":  {"ESMCP_API_KEYS"},
	"log_level": {"LOG_LEVEL"},
}

// Load builds the configuration: defaults, then the YAML file, then dotenv
// files, then the process environment, then opts overrides.
func Load(opts Options) (Config, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	dir := opts.DotEnvDir
	if dir == "" {
		dir = "."
	}
	lookup = withDotEnv(lookup, dir)

	var cfg Config
	path := opts.Path
	if path == "" && opts.Env != "" {
		if p := filepath.Join("config", opts.Env+".yaml"); fileExists(p) {
			path = p
		}
	}
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		data = expandEnvVars(data, lookup)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	cfg.applyOverrides(opts)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Transport == "" {
		c.Transport = TransportStdio
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if len(c.Elasticsearch.URLs) == 0 {
		return errors.New("elasticsearch.urls is required (set ES_URL)")
	}
	for _, raw := range c.Elasticsearch.URLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("elasticsearch.urls: %q is not an absolute http(s) URL", raw)
		}
	}
	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
			return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
		}
	default:
		return fmt.Errorf("transport must be %q or %q, got %q", TransportStdio, TransportHTTP, c.Transport)
	}
	return nil
}

// ReadCACert returns the PEM bundle named by CACert, or nil when unset.
func (c *Config) ReadCACert() ([]byte, error) {
	if c.Elasticsearch.CACert == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Clean(c.Elasticsearch.CACert))
	if err != nil {
		return nil, fmt.Errorf("read CA certificate: %w", err)
	}
	return data, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		for _, name := range envAliases[key] {
			if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v), true
			}
		}
		return "", false
	}

	if v, ok := get("urls"); ok {
		c.Elasticsearch.URLs = splitList(v)
	}
	if v, ok := get("api_key"); ok {
		c.Elasticsearch.APIKey = v
	}
	if v, ok := get("username"); ok {
		c.Elasticsearch.Username = v
	}
	if v, ok := get("password"); ok {
		c.Elasticsearch.Password = v
	}
	if v, ok := get("ca_cert"); ok {
		c.Elasticsearch.CACert = v
	}
	if v, ok := get("transport"); ok {
		c.Transport = strings.ToLower(v)
	}
	if v, ok := get("port"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ESMCP_HTTP_PORT: %w", err)
		}
		c.HTTP.Port = port
	}
	if v, ok := get("api_keys"); ok {
		c.Auth.APIKeys = splitList(v)
	}
	if v, ok := get("log_level"); ok {
		c.Logging.Level = v
	}
	return nil
}

func (c *Config) applyOverrides(opts Options) {
	if opts.Transport != "" {
		c.Transport = strings.ToLower(opts.Transport)
	}
	if opts.Port != 0 {
		c.HTTP.Port = opts.Port
	}
	if opts.LogLevel != "" {
		c.Logging.Level = opts.LogLevel
	}
}

// withDotEnv layers .env.local and .env under the process environment.
func withDotEnv(lookup func(string) (string, bool), dir string) func(string) (string, bool) {
	var layers []map[string]string
	for _, name := range []string{".env.local", ".env"} {
		values, err := godotenv.Read(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		layers = append(layers, values)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		for _, values := range layers {
			if v, ok := values[key]; ok {
				return v, true
			}
		}
		return "", false
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte, lookup func(string) (string, bool)) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val, _ := lookup(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
