package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 用于管理应用配置

const (
	EnvPrefix = "PHOTO_CATALOG"

	// 仅供开发模式使用的默认签名密钥，release 模式下会被拒绝
	insecureDevSecret = "photo_catalog_dev_secret"
)

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Ingest     IngestConfig     `mapstructure:"ingest"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port      string `mapstructure:"port"`
	Mode      string `mapstructure:"mode"`
	MaxBodyMB int    `mapstructure:"max_body_mb"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret                   string `mapstructure:"secret"`
	Issuer                   string `mapstructure:"issuer"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
	RefreshTokenExpireDays   int    `mapstructure:"refresh_token_expire_days"`
}

type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

type IngestConfig struct {
	CSVPath       string `mapstructure:"csv_path"`
	BatchSize     int    `mapstructure:"batch_size"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// InitConfig 加载配置，失败时直接退出进程。
func InitConfig(customConfigDir string) {
	if _, err := Load(customConfigDir); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✅ 配置加载成功")
}

// Load 读取 .env、配置文件与环境变量，校验后原子替换全局配置。
func Load(customConfigDir string) (*Config, error) {
	v, err := initViper(customConfigDir)
	if err != nil {
		return nil, err
	}
	return loadAndStore(v)
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	// .env 仅用于本地开发，不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("⚠️ 读取 .env 失败: %v", err)
	}

	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量覆盖：server.port 对应 PHOTO_CATALOG_SERVER_PORT
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_mb", 2)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/photos.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "photos")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "photo-catalog-server")
	v.SetDefault("jwt.access_token_expire_minutes", 30)
	v.SetDefault("jwt.refresh_token_expire_days", 7)
	v.SetDefault("pagination.default_page_size", 20)
	v.SetDefault("pagination.max_page_size", 100)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "photo_catalog")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("ingest.csv_path", "photos.csv")
	v.SetDefault("ingest.batch_size", 100)
	v.SetDefault("ingest.admin_username", "admin")
	v.SetDefault("ingest.admin_email", "admin@example.com")
	v.SetDefault("ingest.admin_password", "admin123")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// loadAndStore 解析、校验并原子更新配置
func loadAndStore(v *viper.Viper) (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return nil, fmt.Errorf("配置解析失败: %w", err)
	}

	if err := applySecretPolicy(&tempConfig); err != nil {
		return nil, err
	}
	normalize(&tempConfig)

	appConfig.Store(&tempConfig)
	return &tempConfig, nil
}

// applySecretPolicy release 模式下拒绝空密钥或默认密钥，开发模式下回退到默认密钥
func applySecretPolicy(cfg *Config) error {
	if cfg.Server.Mode == "release" {
		if cfg.JWT.Secret == "" || cfg.JWT.Secret == insecureDevSecret {
			return fmt.Errorf("[安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！请设置环境变量 %s_JWT_SECRET 或在配置文件中指定 jwt.secret", EnvPrefix)
		}
		return nil
	}
	if cfg.JWT.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		cfg.JWT.Secret = insecureDevSecret
	}
	return nil
}

func normalize(cfg *Config) {
	if cfg.Pagination.MaxPageSize <= 0 {
		cfg.Pagination.MaxPageSize = 100
	}
	if cfg.Pagination.DefaultPageSize <= 0 || cfg.Pagination.DefaultPageSize > cfg.Pagination.MaxPageSize {
		cfg.Pagination.DefaultPageSize = min(20, cfg.Pagination.MaxPageSize)
	}
	if cfg.Ingest.BatchSize <= 0 {
		cfg.Ingest.BatchSize = 100
	}
}

// Set 直接替换全局配置，供测试与工具使用。
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}
