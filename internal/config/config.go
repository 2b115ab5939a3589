package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Storage StorageConfig `mapstructure:"storage"`
	CORS    CORSConfig    `mapstructure:"cors"`
	AppHost string        `mapstructure:"host"`
	Addr    string        `mapstructure:"addr"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// AuthConfig holds the bcrypt hash of the shared desktop password. An empty
// hash lets any password log in.
type AuthConfig struct {
	PasswordHash string `mapstructure:"password_hash"`
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("./configs")
	v.AddConfigPath("/configs")
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("host", "localhost:8080")
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", "./data")
	v.SetDefault("mongo.database", "desktop")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("db.source", "")
	v.SetDefault("mongo.url", "")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret must be set")
	}
	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must be set for the %q backend", BackendFile)
		}
	case BackendPostgres:
		if c.DB.Source == "" {
			return fmt.Errorf("db.source must be set for the %q backend", BackendPostgres)
		}
	case BackendMongo:
		if c.Mongo.URL == "" || c.Mongo.Database == "" {
			return fmt.Errorf("mongo.url and mongo.database must be set for the %q backend", BackendMongo)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}
