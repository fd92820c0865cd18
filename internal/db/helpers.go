package db

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// HasTable checks information_schema for table inside the dialect's schema
// (or the current database on MySQL when no schema is configured).
func HasTable(ctx context.Context, q sqlx.QueryerContext, d Dialect, table string) (bool, error) {
	schemaExpr := "current_schema()"
	if d.Driver == DriverMySQL {
		schemaExpr = "DATABASE()"
	}

	b := d.Builder().
		Select("table_name").
		From("information_schema.tables").
		Where(sq.Eq{"table_name": table}).
		Limit(1)
	if d.Schema != "" {
		b = b.Where(sq.Eq{"table_schema": d.Schema})
	} else {
		b = b.Where("table_schema = " + schemaExpr)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return false, err
	}

	var name sql.NullString
	if err := sqlx.GetContext(ctx, q, &name, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return name.Valid && name.String != "", nil
}
