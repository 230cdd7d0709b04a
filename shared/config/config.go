package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIBaseURL   = "http://localhost:7777/api"
	DefaultPollInterval = 10 * time.Second
	DefaultTimeout      = 10 * time.Second
	DefaultThreadIcon   = "📌"
	DefaultLogFile      = "forum.log"
	DefaultDevAddr      = ":7777"
)

type Config struct {
	API        API           `yaml:"api"`
	Poll       time.Duration `yaml:"poll_interval"` // thread list refresh period while the forum view is active
	ThreadIcon string        `yaml:"thread_icon"`   // icon sent with every created thread
	Log        Log           `yaml:"log"`
	DevServer  DevServer     `yaml:"devserver"`
}

type API struct {
	BaseURL            string        `yaml:"base_url"`
	Timeout            time.Duration `yaml:"timeout"` // 0 disables the per-request timeout
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

type DevServer struct {
	Addr           string   `yaml:"addr"`
	Users          []string `yaml:"users"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		API: API{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultTimeout,
		},
		Poll:       DefaultPollInterval,
		ThreadIcon: DefaultThreadIcon,
		Log: Log{
			Level: "info",
			File:  DefaultLogFile,
		},
		DevServer: DevServer{
			Addr:           DefaultDevAddr,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the yaml file at configPath on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}
	configFile, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, cfg); err != nil {
		return nil, fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with FORUM_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("FORUM_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("FORUM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("FORUM_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("FORUM_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FORUM_POLL_INTERVAL: %w", err)
		}
		c.Poll = d
	}
	if v := os.Getenv("FORUM_INSECURE_SKIP_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FORUM_INSECURE_SKIP_VERIFY: %w", err)
		}
		c.API.InsecureSkipVerify = b
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.Poll <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.Poll)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout)
	}
	return nil
}
