package basic

import (
	"context"
	"database/sql"

	core "sqlwrap/data/db"
)

// Stmt 包装预编译语句，实现 core.IStmt，并额外提供返回扩展结果集的查询方法
type Stmt struct {
	stmt core.IStmt
}

var _ core.IStmt = (*Stmt)(nil)

// NewStmt 包装底层语句句柄；句柄为 nil 时返回 ErrNilHandle
func NewStmt(stmt core.IStmt) (*Stmt, error) {
	if isNilHandle(stmt) {
		return nil, nilHandle(kindStmt)
	}
	return &Stmt{stmt: stmt}, nil
}

func (s *Stmt) Exec(args ...any) (sql.Result, error) { return s.stmt.Exec(args...) }
func (s *Stmt) ExecContext(ctx context.Context, args ...any) (sql.Result, error) {
	return s.stmt.ExecContext(ctx, args...)
}

func (s *Stmt) Query(args ...any) (*sql.Rows, error) { return s.stmt.Query(args...) }
func (s *Stmt) QueryContext(ctx context.Context, args ...any) (*sql.Rows, error) {
	return s.stmt.QueryContext(ctx, args...)
}

func (s *Stmt) QueryRow(args ...any) *sql.Row { return s.stmt.QueryRow(args...) }
func (s *Stmt) QueryRowContext(ctx context.Context, args ...any) *sql.Row {
	return s.stmt.QueryRowContext(ctx, args...)
}

// Close 转发给底层句柄，每次调用恰好转发一次；幂等性取决于底层实现
func (s *Stmt) Close() error { return s.stmt.Close() }

// Unwrap 返回被包装的底层句柄
func (s *Stmt) Unwrap() core.IStmt { return s.stmt }

// QueryRows 执行查询并返回扩展结果集
func (s *Stmt) QueryRows(args ...any) (*Rows, error) {
	return wrapRows(s.Query(args...))
}

// QueryRowsContext 执行查询并返回扩展结果集
func (s *Stmt) QueryRowsContext(ctx context.Context, args ...any) (*Rows, error) {
	return wrapRows(s.QueryContext(ctx, args...))
}

// QueryOne 查询单行并返回扩展的单行结果；底层返回 nil 时返回 nil
func (s *Stmt) QueryOne(ctx context.Context, args ...any) *Row {
	return wrapRow(s.QueryRowContext(ctx, args...))
}

// wrapRows 底层出错时原样返回错误；结果为 nil 时返回 nil
func wrapRows(rows *sql.Rows, err error) (*Rows, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	return &Rows{rows: rows}, nil
}

func wrapRow(row *sql.Row) *Row {
	if row == nil {
		return nil
	}
	return &Row{row: row}
}
