package basic

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	core "sqlwrap/data/db"
	"sqlwrap/data/db/dialect"
	"sqlwrap/errors"
	"sqlwrap/logging"
)

const (
	defaultDriver = "sqlite"
	pingTimeout   = 3 * time.Second
)

// DB 基于 database/sql 的最小工厂实现：查询与预编译返回扩展后的 Stmt/Rows/Row
type DB struct {
	db      *sql.DB
	driver  string
	dialect dialect.Dialect
}

var _ core.IDialectNameProvider = (*DB)(nil)

// New 根据 core.DBConfig 创建数据库实例
//
// 约定：
//   - Driver 为空时使用 sqlite；本包已注册 sqlite（modernc）与 postgres（lib/pq）驱动
//   - sqlite 且 Database 为空时，使用以 UUID 命名的私有共享缓存内存库
//   - postgres 连接串未指定 sslmode 时补充 sslmode=disable
func New(config core.DBConfig) (*DB, error) {
	ctx := context.Background()
	driver := config.Driver
	if driver == "" {
		driver = defaultDriver
	}

	driver = driverName(driver)
	dsn, err := buildDSN(driver, config)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.WrapDbError(ctx, err, "open")
	}

	// 连接池配置（可选）
	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetime) * time.Second)
	}
	if config.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(time.Duration(config.ConnMaxIdleTime) * time.Second)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.WrapDbError(ctx, err, "ping")
	}

	logging.GetLogger().Debug(ctx, "数据库已打开", logging.Driver(driver))
	return FromSQL(db, driver), nil
}

// FromSQL 包装已打开的 *sql.DB，driver 仅用于推断方言
func FromSQL(db *sql.DB, driver string) *DB {
	return &DB{db: db, driver: driverName(driver), dialect: dialect.New(driver)}
}

// driverName 将方言别名（pq、postgresql、sqlite3 等）映射为已注册的驱动名；
// 未知方言原样返回
func driverName(driver string) string {
	switch dialect.New(driver).Name() {
	case dialect.NameSQLite:
		return "sqlite"
	case dialect.NamePostgres:
		return "postgres"
	default:
		return driver
	}
}

// Prepare 按方言改写占位符后预编译，返回扩展语句
func (d *DB) Prepare(ctx context.Context, query string) (*Stmt, error) {
	return prepare(ctx, d.db, d.dialect, d.driver, query)
}

type preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

func prepare(ctx context.Context, p preparer, dia dialect.Dialect, driver, query string) (*Stmt, error) {
	query = dia.Rebind(query)
	logging.GetLogger().Debug(ctx, "预编译语句", logging.Driver(driver), logging.SQL(query))
	stmt, err := p.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return NewStmt(stmt)
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (*Rows, error) {
	return wrapRows(d.db.QueryContext(ctx, d.dialect.Rebind(query), args...))
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return wrapRow(d.db.QueryRowContext(ctx, d.dialect.Rebind(query), args...))
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.db.ExecContext(ctx, d.dialect.Rebind(query), args...)
}

func (d *DB) Begin(ctx context.Context) (*Tx, error) {
	return d.BeginTx(ctx, nil)
}

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{db: d.db, tx: tx, driver: d.driver, dialect: dialect.FromHandle(d)}, nil
}

func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }
func (d *DB) Close() error                   { return d.db.Close() }
func (d *DB) Raw() *sql.DB                   { return d.db }

// GetDialectName 实现 core.IDialectNameProvider，返回标准化方言名；未知方言返回 driver 名
func (d *DB) GetDialectName() string {
	if name := d.dialect.Name(); name != dialect.NameUnknown {
		return string(name)
	}
	return d.driver
}

// Dialect 返回当前方言
func (d *DB) Dialect() dialect.Dialect {
	return d.dialect
}

func buildDSN(driver string, config core.DBConfig) (string, error) {
	switch dialect.New(driver).Name() {
	case dialect.NameSQLite:
		if config.DSN != "" {
			return config.DSN, nil
		}
		if config.Database == "" {
			return "file:" + uuid.NewString() + "?mode=memory&cache=shared", nil
		}
		return config.Database, nil
	case dialect.NamePostgres:
		if config.DSN != "" {
			return withSSLModeDisabled(config.DSN), nil
		}
		if config.Host == "" {
			return "", errors.New(errors.ErrCodeInvalidInput, "postgres 配置缺少 DSN 或 Host")
		}
		return postgresURL(config), nil
	default:
		if config.DSN != "" {
			return config.DSN, nil
		}
		if config.Database == "" {
			return "", errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("driver %q 缺少 DSN", driver))
		}
		return config.Database, nil
	}
}

func postgresURL(config core.DBConfig) string {
	host := config.Host
	if config.Port > 0 {
		host = net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + config.Database,
		RawQuery: "sslmode=disable",
	}
	if config.Username != "" {
		if config.Password != "" {
			u.User = url.UserPassword(config.Username, config.Password)
		} else {
			u.User = url.User(config.Username)
		}
	}
	return u.String()
}

// withSSLModeDisabled 同时支持 URL 与 key=value 两种 postgres 连接串
func withSSLModeDisabled(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "sslmode=disable"
	}
	return strings.TrimSpace(dsn) + " sslmode=disable"
}
