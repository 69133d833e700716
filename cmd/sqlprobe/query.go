package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sqlwrap/data/db/basic"
)

func (c *Cmd) getQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql> [args ...]",
		Short: "Runs a query and prints the rows",
		Long: `Prepares the query, runs it with the given positional arguments and
prints the columns and rows tab separated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer d.Close()

			stmt, err := d.Prepare(ctx, args[0])
			if err != nil {
				return err
			}
			defer stmt.Close()

			rows, err := stmt.QueryRowsContext(ctx, toArgs(args[1:])...)
			if err != nil {
				return err
			}
			if rows == nil {
				return nil
			}
			defer rows.Close()
			return printRows(cmd.OutOrStdout(), rows)
		},
		DisableAutoGenTag: true,
	}
}

func (c *Cmd) getExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql> [args ...]",
		Short: "Runs a statement and prints the affected rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer d.Close()

			stmt, err := d.Prepare(ctx, args[0])
			if err != nil {
				return err
			}
			defer stmt.Close()

			res, err := stmt.ExecContext(ctx, toArgs(args[1:])...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if n, err := res.RowsAffected(); err == nil {
				fmt.Fprintf(out, "rows affected: %d\n", n)
			}
			if id, err := res.LastInsertId(); err == nil {
				fmt.Fprintf(out, "last insert id: %d\n", id)
			}
			return nil
		},
		DisableAutoGenTag: true,
	}
}

func printRows(w io.Writer, rows *basic.Rows) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Join(cols, "\t"))

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	cells := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range vals {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return rows.Err()
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
