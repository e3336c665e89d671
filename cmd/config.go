package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"cleaning/internal/jobs"
	"cleaning/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	JWTSecret        string
	JWTTTL           time.Duration
	MediaDir         string
	Environment      string
	ReminderLead     time.Duration
	OverdueSweepSpec string
	BcryptCost       int
}

// LoadConfig reads the environment, after merging an optional .env file at envFile.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "cleaning")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("ENVIRONMENT", EnvDevelopment)
	v.SetDefault("REMINDER_LEAD", "1h")
	v.SetDefault("OVERDUE_SWEEP_SPEC", jobs.DefaultOverdueSweepSpec)
	v.SetDefault("BCRYPT_COST", 0)

	config := Config{
		HTTPPort:         v.GetString("HTTP_PORT"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSslMode:        v.GetString("DB_SSLMODE"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTTTL:           v.GetDuration("JWT_TTL"),
		MediaDir:         v.GetString("MEDIA_DIR"),
		Environment:      v.GetString("ENVIRONMENT"),
		ReminderLead:     v.GetDuration("REMINDER_LEAD"),
		OverdueSweepSpec: v.GetString("OVERDUE_SWEEP_SPEC"),
		BcryptCost:       v.GetInt("BCRYPT_COST"),
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var jwtErr, ttlErr, leadErr error
	if c.JWTSecret == "" {
		jwtErr = errs.NewValueIsRequiredError("JWT_SECRET")
	}
	if c.JWTTTL <= 0 {
		ttlErr = errs.NewValueIsOutOfRangeError("JWT_TTL", c.JWTTTL, time.Second, "unbounded")
	}
	if c.ReminderLead < 0 {
		leadErr = errs.NewValueIsOutOfRangeError("REMINDER_LEAD", c.ReminderLead, 0, "unbounded")
	}
	return errors.Join(jwtErr, ttlErr, leadErr)
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
