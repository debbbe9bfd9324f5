package postgres

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type Config struct {
	Host     string `yaml:"host" envconfig:"PG_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"PG_PORT" default:"5432"`
	User     string `yaml:"user" envconfig:"PG_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"PG_PASSWORD" default:"postgres"`
	DBName   string `yaml:"dbname" envconfig:"PG_DATABASE" default:"library"`
	SSLMode  string `yaml:"sslmode" envconfig:"PG_SSLMODE" default:"disable"`
}

func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// NewPostgresDB connects via the pgx stdlib driver and applies the embedded
// goose migrations before returning the handle.
func NewPostgresDB(ctx context.Context, cfg *Config, migrations embed.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "postgres connect")
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return nil, errors.Wrap(err, "goose up")
	}

	return db, nil
}
