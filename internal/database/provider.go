package database

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/saulo-duarte/acervo-api/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

var ErrMissingDSN = errors.New("URL_BD não configurada")

type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Provider lazily opens one *gorm.DB per process and hands the same
// handle to every caller. The handle wraps a database/sql pool and is safe
// for concurrent use.
type Provider struct {
	dsn  string
	pool PoolSettings

	mu sync.Mutex
	db *gorm.DB
}

func NewProvider(dsn string, pool PoolSettings) *Provider {
	return &Provider{dsn: dsn, pool: pool}
}

func NewProviderFromSettings(s *config.Settings) *Provider {
	return NewProvider(s.DatabaseURL, PoolSettings{
		MaxOpenConns:    s.MaxOpenConns,
		MaxIdleConns:    s.MaxIdleConns,
		ConnMaxLifetime: s.ConnMaxLifetime,
	})
}

// DB returns the shared handle, opening it on first use. A failed open is
// not memoized, so the next call tries again.
func (p *Provider) DB() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := p.open()
	if err != nil {
		logrus.WithError(err).Error("Erro ao abrir conexão com o banco de dados")
		return nil, &ConnectionError{Err: err}
	}

	p.db = db
	logrus.Info("Handle do banco de dados criado")
	return db, nil
}

func (p *Provider) open() (*gorm.DB, error) {
	dialector, err := Dialector(p.dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               NewLogger(200*time.Millisecond, logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := registerErrorCallbacks(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(p.pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(p.pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(p.pool.ConnMaxLifetime)

	return db, nil
}

// Query runs a raw parameterized statement and scans the rows into dest.
func (p *Provider) Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	db, err := p.DB()
	if err != nil {
		return err
	}
	return classify(db.WithContext(ctx).Raw(sql, args...).Scan(dest).Error)
}

func (p *Provider) Ping(ctx context.Context) error {
	var one int
	return p.Query(ctx, &one, "SELECT 1")
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.db = nil
	return sqlDB.Close()
}

// Dialector picks the gorm driver from the connection string. Anything
// without a recognised prefix is handed to the Postgres driver, which
// accepts both URLs and key=value strings.
func Dialector(dsn string) (gorm.Dialector, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return nil, ErrMissingDSN
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.New(mysql.Config{
			DSN:                       strings.TrimPrefix(dsn, "mysql://"),
			SkipInitializeWithVersion: true,
		}), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqliteDialector(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return sqliteDialector(dsn), nil
	default:
		return postgres.Open(dsn), nil
	}
}

func sqliteDialector(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	})
}

// Connector is what repositories need from the provider.
type Connector interface {
	DB() (*gorm.DB, error)
}
