package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"3000"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:5173"`
	}

	Database struct {
		Host     string `env:"DB_HOST" envDefault:"localhost"`
		Port     int    `env:"DB_PORT" envDefault:"3306"`
		User     string `env:"DB_USER" envDefault:"root"`
		Password string `env:"DB_PASSWORD" envDefault:""`
		Name     string `env:"DB_NAME" envDefault:"sneakr"`
	}

	Auth struct {
		JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	}

	SMTP struct {
		Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		User     string `env:"SMTP_USER" envDefault:""`
		Password string `env:"SMTP_PASSWORD" envDefault:""`
		From     string `env:"SMTP_FROM" envDefault:""`
	}

	Uploads struct {
		Dir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	}

	// Redis backs the login rate limiter. Leaving the address empty
	// disables the limiter; nothing else touches Redis.
	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:""`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		LoginLimit  int `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
		LoginWindow int `env:"LOGIN_RATE_WINDOW_SECONDS" envDefault:"60"`
	}
}

// DSN builds the go-sql-driver DSN. parseTime is required so DATETIME
// columns scan into time.Time; clientFoundRows makes UPDATE report
// matched rows, so updating a field to its current value is not
// mistaken for a missing row.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func Load() (*Config, error) {
	// A missing .env file is fine; in production the variables are set
	// directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
