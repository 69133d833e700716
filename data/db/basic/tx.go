package basic

import (
	"context"
	"database/sql"
	"fmt"

	"sqlwrap/data/db/dialect"
	"sqlwrap/errors"
)

// Tx 事务实现，委托给 *sql.Tx；查询与预编译同样返回扩展后的 Stmt/Rows/Row
type Tx struct {
	db      *sql.DB
	tx      *sql.Tx
	driver  string
	dialect dialect.Dialect
}

func (t *Tx) Prepare(ctx context.Context, query string) (*Stmt, error) {
	return prepare(ctx, t.tx, t.dialect, t.driver, query)
}

// Stmt 将在 DB 上预编译的语句绑定到当前事务
//
// 仅支持底层句柄为 *sql.Stmt 的语句；其他实现返回 ErrUnsupported。
func (t *Tx) Stmt(ctx context.Context, s *Stmt) (*Stmt, error) {
	if s == nil {
		return nil, nilHandle(kindStmt)
	}
	raw, ok := s.Unwrap().(*sql.Stmt)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, fmt.Sprintf("无法将 %T 绑定到事务", s.Unwrap()))
	}
	return NewStmt(t.tx.StmtContext(ctx, raw))
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (*Rows, error) {
	return wrapRows(t.tx.QueryContext(ctx, t.dialect.Rebind(query), args...))
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return wrapRow(t.tx.QueryRowContext(ctx, t.dialect.Rebind(query), args...))
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.dialect.Rebind(query), args...)
}

// 嵌套事务：basic.Tx 明确不支持嵌套事务，调用方应在上层协调事务边界。
func (t *Tx) Begin(ctx context.Context) (*Tx, error) {
	return nil, errors.New(errors.ErrCodeUnsupported, "basic.Tx: nested transactions are not supported")
}

func (t *Tx) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	return t.Begin(ctx)
}

func (t *Tx) Ping(ctx context.Context) error { return t.db.PingContext(ctx) }
func (t *Tx) Raw() *sql.Tx                   { return t.tx }

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// GetDialectName 实现 core.IDialectNameProvider，便于在事务上下文中复用方言能力。
func (t *Tx) GetDialectName() string {
	if name := t.dialect.Name(); name != dialect.NameUnknown {
		return string(name)
	}
	return t.driver
}

// WithTx 在事务中执行 fn：fn 返回 nil 时提交，否则回滚并返回 fn 的错误；fn panic 时回滚后继续 panic
//
// 回滚本身失败时，返回的错误包装 fn 的错误（errors.Is 仍成立）并附带回滚错误信息。
func WithTx(ctx context.Context, d *DB, opts *sql.TxOptions, fn func(tx *Tx) error) error {
	tx, err := d.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
