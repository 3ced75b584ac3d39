package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// placeholder value baked into builds without real credentials
const envPlaceholder = "TODO"

// Config holds all runtime configuration. It is built once at startup
// and passed explicitly into services and handlers.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Contentful ContentfulConfig `yaml:"contentful"`
	Admin      AdminConfig      `yaml:"admin"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Deploy     DeployConfig     `yaml:"deploy"`
	Redis      RedisConfig      `yaml:"redis"`
	Upload     UploadConfig     `yaml:"upload"`
}

// AppConfig server level settings
type AppConfig struct {
	Env          string   `yaml:"env"`
	Port         int      `yaml:"port"`
	BaseURL      string   `yaml:"base_url"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// ContentfulConfig remote content store credentials and hosts
type ContentfulConfig struct {
	SpaceID         string `yaml:"space_id"`
	AccessToken     string `yaml:"access_token"`
	ManagementToken string `yaml:"management_token"`
	Environment     string `yaml:"environment"`
	DeliveryHost    string `yaml:"delivery_host"`
	ManagementHost  string `yaml:"management_host"`
	UploadHost      string `yaml:"upload_host"`
}

// AdminConfig admin panel session gate
type AdminConfig struct {
	Password  string `yaml:"password"`
	JWTSecret string `yaml:"jwt_secret"`
}

// TelegramConfig admin notification bot
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// DeployConfig redeploy webhook
type DeployConfig struct {
	HookURL string `yaml:"hook_url"`
}

// RedisConfig content cache backend
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// UploadConfig local file upload endpoint
type UploadConfig struct {
	Dir      string `yaml:"dir"`
	MaxBytes int64  `yaml:"max_bytes"`
}

// Configured reports whether the delivery credentials are usable.
// The build-time placeholder counts as unconfigured.
func (c ContentfulConfig) Configured() bool {
	return c.SpaceID != "" && c.SpaceID != envPlaceholder &&
		c.AccessToken != "" && c.AccessToken != envPlaceholder
}

// ManagementConfigured reports whether the management token is usable
func (c ContentfulConfig) ManagementConfigured() bool {
	return c.ManagementToken != "" && c.ManagementToken != envPlaceholder
}

// Load reads the yaml config file and applies environment overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		// no config file: env vars only
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Env:          "local",
			Port:         8080,
			BaseURL:      "https://alz5.thesolution.at",
			AllowOrigins: []string{"*"},
		},
		Contentful: ContentfulConfig{
			Environment:    "master",
			DeliveryHost:   "cdn.contentful.com",
			ManagementHost: "api.eu.contentful.com", // EU region space
			UploadHost:     "upload.contentful.com",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		Upload: UploadConfig{
			Dir:      "public/uploads",
			MaxBytes: 5 << 20, // 5MB, matches the admin panel client check
		},
	}
}

// applyEnv lets environment variables override file values.
// OS env always wins so the same binary runs in every environment.
func applyEnv(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setInt(&cfg.App.Port, "PORT")
	setString(&cfg.App.BaseURL, "SITE_BASE_URL")

	setString(&cfg.Contentful.SpaceID, "CONTENTFUL_SPACE_ID")
	setString(&cfg.Contentful.AccessToken, "CONTENTFUL_ACCESS_TOKEN")
	setString(&cfg.Contentful.ManagementToken, "CONTENTFUL_MANAGEMENT_TOKEN")
	setString(&cfg.Contentful.Environment, "CONTENTFUL_ENVIRONMENT")
	setString(&cfg.Contentful.DeliveryHost, "CONTENTFUL_DELIVERY_HOST")
	setString(&cfg.Contentful.ManagementHost, "CONTENTFUL_MANAGEMENT_HOST")
	setString(&cfg.Contentful.UploadHost, "CONTENTFUL_UPLOAD_HOST")

	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")
	setString(&cfg.Admin.JWTSecret, "ADMIN_JWT_SECRET")

	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")

	setString(&cfg.Deploy.HookURL, "VERCEL_DEPLOY_HOOK_URL")

	setBool(&cfg.Redis.Enabled, "REDIS_ENABLED")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")

	setString(&cfg.Upload.Dir, "UPLOAD_DIR")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
