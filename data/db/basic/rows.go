package basic

import (
	"database/sql"

	core "sqlwrap/data/db"
)

// Rows 包装查询结果集，实现 core.IRows
type Rows struct{ rows core.IRows }

var _ core.IRows = (*Rows)(nil)

// NewRows 包装底层结果集；与 NewStmt 一致，句柄为 nil 时返回 ErrNilHandle
func NewRows(rows core.IRows) (*Rows, error) {
	if isNilHandle(rows) {
		return nil, nilHandle(kindRows)
	}
	return &Rows{rows: rows}, nil
}

func (r *Rows) Next() bool                              { return r.rows.Next() }
func (r *Rows) NextResultSet() bool                     { return r.rows.NextResultSet() }
func (r *Rows) Scan(dest ...any) error                  { return r.rows.Scan(dest...) }
func (r *Rows) Close() error                            { return r.rows.Close() }
func (r *Rows) Err() error                              { return r.rows.Err() }
func (r *Rows) Columns() ([]string, error)              { return r.rows.Columns() }
func (r *Rows) ColumnTypes() ([]*sql.ColumnType, error) { return r.rows.ColumnTypes() }

// Unwrap 返回被包装的底层结果集
func (r *Rows) Unwrap() core.IRows { return r.rows }

// Row 包装单行结果，实现 core.IRow
type Row struct{ row core.IRow }

var _ core.IRow = (*Row)(nil)

// NewRow 包装底层单行结果；句柄为 nil 时返回 ErrNilHandle
func NewRow(row core.IRow) (*Row, error) {
	if isNilHandle(row) {
		return nil, nilHandle(kindRow)
	}
	return &Row{row: row}, nil
}

func (r *Row) Scan(dest ...any) error { return r.row.Scan(dest...) }
func (r *Row) Err() error             { return r.row.Err() }

// Unwrap 返回被包装的底层单行结果
func (r *Row) Unwrap() core.IRow { return r.row }
