package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
	"eventbackend/internal/query"
)

// table holds the statements shared by every resource repository.
type table[T any] struct {
	db      *sqlx.DB
	dialect intdb.Dialect
	coll    query.Collection
}

func (t table[T]) list(ctx context.Context, req query.Request, opts query.ParseOptions) (domain.PagedResult[T], error) {
	return query.HandlePagedQuery[T](ctx, t.db, t.coll, t.dialect, req, opts)
}

func (t table[T]) count(ctx context.Context) (int, error) {
	stmt, args, err := t.dialect.Builder().
		Select("COUNT(*)").
		From(t.dialect.Table(t.coll.Table)).
		ToSql()
	if err != nil {
		return 0, domain.InternalError{Msg: "build count query", Err: err}
	}

	var total int
	if err := t.db.GetContext(ctx, &total, stmt, args...); err != nil {
		return 0, domain.InternalError{Msg: "failed to count " + t.coll.Name, Err: err}
	}
	return total, nil
}

func (t table[T]) columns() []string {
	cols := t.coll.Selectable()
	for i, c := range cols {
		cols[i] = t.dialect.Quote(c)
	}
	return cols
}

// id validates a raw path id against the primary key column type.
func (t table[T]) id(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ValidationError{Field: "id", Msg: "id is required"}
	}
	pk, ok := t.coll.Column(t.coll.PrimaryKey)
	if !ok {
		return nil, domain.InternalError{Msg: "primary key " + t.coll.PrimaryKey + " not in allow-list"}
	}
	return query.Convert(pk, raw)
}

func (t table[T]) get(ctx context.Context, rawID string) (T, error) {
	var out T
	id, err := t.id(rawID)
	if err != nil {
		return out, err
	}

	stmt, args, err := t.dialect.Builder().
		Select(t.columns()...).
		From(t.dialect.Table(t.coll.Table)).
		Where(sq.Eq{t.dialect.Quote(t.coll.PrimaryKey): id}).
		Limit(1).
		ToSql()
	if err != nil {
		return out, domain.InternalError{Msg: "build select query", Err: err}
	}

	if err := t.db.GetContext(ctx, &out, stmt, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: t.coll.Name, Err: err}
		}
		return out, domain.InternalError{Msg: "failed to load " + t.coll.Name, Err: err}
	}
	return out, nil
}

// update applies the updatable keys of fields, stamps ModifiedDate (and
// ModifiedBy when actor is known) and returns the stored row. Unknown and
// read-only keys are ignored.
func (t table[T]) update(ctx context.Context, rawID string, fields map[string]any, actor string, now time.Time) (T, error) {
	var out T
	if _, err := t.get(ctx, rawID); err != nil {
		return out, err
	}

	set := map[string]any{}
	seen := map[string]string{}
	for key, v := range fields {
		col, ok := t.coll.Updatable(key)
		if !ok {
			continue
		}
		if prev, dup := seen[col.Name]; dup {
			return out, domain.ValidationError{
				Field: col.Name,
				Msg:   fmt.Sprintf("keys %q and %q both set %s", prev, key, col.Name),
			}
		}
		seen[col.Name] = key
		val, err := query.ConvertJSON(col, v)
		if err != nil {
			return out, err
		}
		set[t.dialect.Quote(col.Name)] = val
	}
	set[t.dialect.Quote("ModifiedDate")] = now
	if actor != "" {
		set[t.dialect.Quote("ModifiedBy")] = actor
	}

	id, _ := t.id(rawID)
	stmt, args, err := t.dialect.Builder().
		Update(t.dialect.Table(t.coll.Table)).
		SetMap(set).
		Where(sq.Eq{t.dialect.Quote(t.coll.PrimaryKey): id}).
		ToSql()
	if err != nil {
		return out, domain.InternalError{Msg: "build update query", Err: err}
	}

	if _, err := t.db.ExecContext(ctx, stmt, args...); err != nil {
		if t.dialect.IsDuplicateKey(err) {
			return out, domain.ConflictError{Resource: t.coll.Name, Msg: "unique value already in use", Err: err}
		}
		return out, domain.InternalError{Msg: "failed to update " + t.coll.Name, Err: err}
	}
	return t.get(ctx, rawID)
}
