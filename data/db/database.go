// Package db 定义对 database/sql 的薄封装所使用的能力接口
//
// 设计目标：
// 1. 以接口形式描述 *sql.Stmt / *sql.Rows / *sql.Row 的完整方法集
// 2. 让驱动提供的原始句柄与测试替身都能被装饰器持有
// 3. 提供统一的数据库与事务入口（工厂层），返回扩展后的语句与结果集
package db

import (
	"context"
	"database/sql"
)

// IStmt 预编译语句能力集，与 *sql.Stmt 的方法集一致
type IStmt interface {
	Exec(args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, args ...any) (sql.Result, error)

	Query(args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, args ...any) (*sql.Rows, error)

	QueryRow(args ...any) *sql.Row
	QueryRowContext(ctx context.Context, args ...any) *sql.Row

	Close() error
}

// IRows 查询结果集能力集，与 *sql.Rows 的方法集一致
type IRows interface {
	// 遍历结果
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
	Close() error
	Err() error

	// 获取列信息
	Columns() ([]string, error)
	ColumnTypes() ([]*sql.ColumnType, error)
}

// IRow 单行结果能力集，与 *sql.Row 的方法集一致
type IRow interface {
	Scan(dest ...any) error
	Err() error
}

// 编译期校验：标准库句柄满足上述能力集
var (
	_ IStmt = (*sql.Stmt)(nil)
	_ IRows = (*sql.Rows)(nil)
	_ IRow  = (*sql.Row)(nil)
)

// IDialectNameProvider 可选接口：提供底层数据库方言名称
//
// 实现方应返回诸如 "sqlite"、"postgres" 等 driver/dialect 名，
// 供 dialect 包推断方言能力（占位符改写、唯一键错误识别等）。
type IDialectNameProvider interface {
	// GetDialectName 返回底层数据库方言名称
	GetDialectName() string
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver   string `mapstructure:"driver"` // sqlite, postgres
	DSN      string `mapstructure:"dsn"`    // 完整连接串，非空时优先使用
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// 连接池配置
	MaxOpenConns    int `mapstructure:"max_open_conns"`
	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // 秒
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // 秒
}
