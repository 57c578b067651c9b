package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// DevJWTSecret is the placeholder secret used when JWT_SECRET is not set.
// It is refused outside development.
const DevJWTSecret = "change-me-in-production"

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Password    PasswordConfig
	Log         LogConfig
	CORS        CORSConfig
	HealthCheck HealthCheckConfig
}

type AppConfig struct {
	Name string `env:"APP_NAME" envDefault:"Task Manager API"`
	Port string `env:"APP_PORT" envDefault:"8000"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}

// DatabaseConfig เลือก driver ได้ระหว่าง postgres (gorm) กับ sqlite (embedded)
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres, sqlite
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME" envDefault:"taskmanager"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
	Path     string `env:"DB_PATH" envDefault:"data/taskmanager.db"` // sqlite only
}

// NATSConfig ว่างไว้ = ปิด task events
type NATSConfig struct {
	URL           string `env:"NATS_URL"`
	SubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"tasks"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET" envDefault:"change-me-in-production"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"30m"`
}

type PasswordConfig struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`     // debug, info, warn, error
	Format     string `env:"LOG_FORMAT" envDefault:"json"`    // json, text
	Output     string `env:"LOG_OUTPUT" envDefault:"stdout"`  // stdout, file, both
	FilePath   string `env:"LOG_FILE" envDefault:"logs/app.log"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`   // MB
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"30"`     // วัน
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
}

type HealthCheckConfig struct {
	Interval time.Duration `env:"HEALTH_CHECK_INTERVAL" envDefault:"1m"`
}

// LoadConfig อ่าน .env (ถ้ามี) แล้ว parse environment variables เข้า struct
func LoadConfig() (*Config, error) {
	// ไม่มี .env ก็ไม่เป็นไร ใช้ environment variables แทน
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ตรวจค่าที่ใช้ไม่ได้ก่อน start server
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	// placeholder ใช้ได้เฉพาะ development เท่านั้น
	if !c.IsDevelopment() && c.JWT.Secret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set outside development")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}

	if c.Password.BcryptCost < bcrypt.MinCost || c.Password.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
