package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	// Address 是 HTTP 服务的监听地址
	// 可以通过环境变量 JART_ADDRESS 配置
	Address string `yaml:"address"`

	// DataDir 是 jart 数据目录，默认的 SQLite 数据库放在这里
	// 可以通过环境变量 JART_DATA_DIR 配置
	// 默认：~/.local/share/jart
	DataDir string `yaml:"data_dir"`

	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Tags     TagConfig      `yaml:"tags"`
}

type DatabaseConfig struct {
	// Driver 支持 sqlite（默认）和 postgres
	Driver string `yaml:"driver"`
	// DSN 对 sqlite 是数据库文件路径，对 postgres 是连接串
	// 为空时使用 DataDir 下的 jart.db
	DSN string `yaml:"dsn"`
}

type LogConfig struct {
	// Level: trace, debug, info, warn, error
	Level string `yaml:"level"`
	// Format: json（默认）或 console
	Format string `yaml:"format"`
}

type TagConfig struct {
	// Separator 分隔标签标题的字符串，默认 ","
	Separator string `yaml:"separator"`
	// KeepBlank 为 true 时空白标题也会建成标签并关联
	KeepBlank bool `yaml:"keep_blank"`
}

// New 按 默认值 -> JART_CONFIG 指向的 YAML 文件 -> 环境变量 的顺序构造配置
func New() (*Config, error) {
	return Load(os.Getenv("JART_CONFIG"))
}

// Load 与 New 相同，但显式指定配置文件路径，path 为空时跳过配置文件
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.DSN = filepath.Join(cfg.DataDir, "jart.db")
	}
	if cfg.Tags.Separator == "" {
		cfg.Tags.Separator = ","
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Address: "0.0.0.0:7777",
		DataDir: getDataDir(),
		Database: DatabaseConfig{
			Driver: DriverSQLite,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Tags: TagConfig{
			Separator: ",",
		},
	}
}

func applyEnv(cfg *Config) error {
	if addr := os.Getenv("JART_ADDRESS"); addr != "" {
		cfg.Address = addr
	}
	if dir := os.Getenv("JART_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if driver := os.Getenv("JART_DB_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dsn := os.Getenv("JART_DB_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if level := os.Getenv("JART_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("JART_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if keepBlank := os.Getenv("JART_TAGS_KEEP_BLANK"); keepBlank != "" {
		v, err := strconv.ParseBool(keepBlank)
		if err != nil {
			return fmt.Errorf("parse JART_TAGS_KEEP_BLANK: %w", err)
		}
		cfg.Tags.KeepBlank = v
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database dsn is required for driver %s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	return nil
}

// getDataDir 获取数据目录
func getDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "jart")
	}

	return filepath.Join(".", "data")
}
