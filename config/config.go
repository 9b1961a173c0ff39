package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/queue"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	DBDriver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT"`
	DBUser            string        `env:"DB_USER"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBName            string        `env:"DB_NAME" envDefault:"fyyur"`
	DBPath            string        `env:"DB_PATH" envDefault:"fyyur.db"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	SessionSecret string `env:"SESSION_SECRET" envDefault:"fyyur-development-secret"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RabbitMQURL string `env:"RABBITMQ_URL"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c.GinMode == "release"
}

func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		port := cfg.DBPort
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, port,
		)
		return postgres.Open(dsn), nil
	case "mysql":
		port := cfg.DBPort
		if port == "" {
			port = "3306"
		}
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath + "?_pragma=foreign_keys(1)"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Genre{}, &models.Venue{}, &models.Artist{}, &models.Show{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := backfillSearchNames(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// backfillSearchNames folds the names of rows stored before search_name
// existed.
func backfillSearchNames(db *gorm.DB) error {
	var venues []models.Venue
	if err := db.Select("id", "name").Where("search_name = '' OR search_name IS NULL").Find(&venues).Error; err != nil {
		return fmt.Errorf("load venues to backfill: %w", err)
	}
	for _, venue := range venues {
		err := db.Model(&models.Venue{}).Where("id = ?", venue.ID).
			UpdateColumn("search_name", models.FoldName(venue.Name)).Error
		if err != nil {
			return fmt.Errorf("backfill venue %d: %w", venue.ID, err)
		}
	}

	var artists []models.Artist
	if err := db.Select("id", "name").Where("search_name = '' OR search_name IS NULL").Find(&artists).Error; err != nil {
		return fmt.Errorf("load artists to backfill: %w", err)
	}
	for _, artist := range artists {
		err := db.Model(&models.Artist{}).Where("id = ?", artist.ID).
			UpdateColumn("search_name", models.FoldName(artist.Name)).Error
		if err != nil {
			return fmt.Errorf("backfill artist %d: %w", artist.ID, err)
		}
	}
	return nil
}

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does
// not answer; callers fall back to cookie-held flashes.
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis: %s unreachable, using cookie flashes: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	return client
}

func NewPublisher(cfg *Config) queue.Publisher {
	if cfg.RabbitMQURL == "" {
		return queue.NopPublisher{}
	}
	return queue.NewAMQPPublisher(cfg.RabbitMQURL)
}
