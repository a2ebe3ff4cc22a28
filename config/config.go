package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lepetitglacon/moyenne-sub000/pkg/logger"
)

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Auth      AuthConfigs
	Redis     RedisConfigs
	Logger    logger.Configs
	Journal   JournalConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type RedisConfigs struct {
	Addr string
}

type JournalConfigs struct {
	// MaxRating is the upper bound of the daily rating scale. Ratings are
	// integers in [0, MaxRating].
	MaxRating int

	// GuessTolerance is the absolute distance within which a rating guess
	// still counts as correct.
	GuessTolerance int
}

// Load reads a TOML configuration file and applies environment overrides
// for the values that usually come from the deployment, not the file.
func Load(path string) (Configs, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	return cfg, nil
}

func Default() Configs {
	return Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "moyenne",
			User:     "moyenne",
		},
		ApiServer: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Auth: AuthConfigs{
			TokenSecret: "secret",
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Redis:  RedisConfigs{Addr: "localhost:6379"},
		Logger: logger.Configs{Level: "info"},
		Journal: JournalConfigs{
			MaxRating:      20,
			GuessTolerance: 1,
		},
	}
}
