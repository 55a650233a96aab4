package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const EnvDevelopment = "development"

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Upload  UploadConfig
	Admin   AdminConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
}

type AppConfig struct {
	Port        string
	Env         string
	FrontendURL string
	APIBaseURL  string
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

type StorageConfig struct {
	Driver   string
	DataFile string
}

type UploadConfig struct {
	Dir     string
	MaxSize int64
}

type AdminConfig struct {
	Username string
	Password string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads the given env file, if present, and the process environment.
// Environment variables take precedence over the file.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("STORAGE_DRIVER", StorageDriverFile)
	v.SetDefault("DATA_FILE", "data/site.json")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_SIZE", 5*1024*1024)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			FrontendURL: v.GetString("FRONTEND_URL"),
			APIBaseURL:  v.GetString("API_BASE_URL"),
		},
		Storage: StorageConfig{
			Driver:   v.GetString("STORAGE_DRIVER"),
			DataFile: v.GetString("DATA_FILE"),
		},
		Upload: UploadConfig{
			Dir:     v.GetString("UPLOAD_DIR"),
			MaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Storage.Driver != StorageDriverFile && c.Storage.Driver != StorageDriverPostgres {
		return errors.New("STORAGE_DRIVER must be file or postgres")
	}
	if c.JWT.Secret == "" {
		if !c.App.IsDevelopment() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWT.Secret = "development-only-secret"
	}
	return nil
}
