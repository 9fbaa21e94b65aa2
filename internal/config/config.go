package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	Port            string `yaml:"port"`
	SessionSecret   string `yaml:"session_secret"`
	GinMode         string `yaml:"gin_mode"`
	StoreBackend    string `yaml:"store_backend"`
	LogLevel        string `yaml:"log_level"`
	DefaultLanguage string `yaml:"default_language"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
// 若设置了 CONFIG_FILE，则先读取 YAML 文件，环境变量优先级更高。
func Load() (AppConfig, error) {
	var cfg AppConfig

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return AppConfig{}, err
		}
		cfg = fileCfg
	}

	overrideFromEnv(&cfg.Port, "PORT")
	overrideFromEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	overrideFromEnv(&cfg.SessionSecret, "SESSION_SECRET")
	overrideFromEnv(&cfg.GinMode, "GIN_MODE")
	overrideFromEnv(&cfg.StoreBackend, "STORE_BACKEND")
	overrideFromEnv(&cfg.LogLevel, "LOG_LEVEL")
	overrideFromEnv(&cfg.DefaultLanguage, "DEFAULT_LANGUAGE")

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// LoadFile 读取 YAML 配置文件；文件不存在时返回空配置
func LoadFile(path string) (AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Normalize fills zero values with defaults.
func (c *AppConfig) Normalize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}

	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}

	c.SessionSecret = strings.TrimSpace(c.SessionSecret)
	if c.SessionSecret == "" {
		c.SessionSecret = "habitgrid-dev-secret"
	}

	c.GinMode = strings.TrimSpace(c.GinMode)
	if c.GinMode == "" {
		c.GinMode = "release"
	}

	c.StoreBackend = strings.ToLower(strings.TrimSpace(c.StoreBackend))
	if c.StoreBackend == "" {
		c.StoreBackend = BackendMemory
	}

	c.LogLevel = strings.TrimSpace(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.DefaultLanguage = strings.TrimSpace(c.DefaultLanguage)
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
}

// Validate 校验存储后端取值
func (c AppConfig) Validate() error {
	switch c.StoreBackend {
	case BackendMemory, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported store backend %q", c.StoreBackend)
	}
}

func overrideFromEnv(dst *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*dst = value
	}
}
