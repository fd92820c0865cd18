package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
)

type UserRepository struct {
	DB      *sqlx.DB
	Dialect intdb.Dialect
	Filter  query.ParseOptions
}

func (r UserRepository) table() table[models.User] {
	return table[models.User]{db: r.DB, dialect: r.Dialect, coll: UsersCollection}
}

// List returns one page of users matching the request's filters and sort.
func (r UserRepository) List(ctx context.Context, req query.Request) (domain.PagedResult[models.User], error) {
	return r.table().list(ctx, req, r.Filter)
}

func (r UserRepository) Count(ctx context.Context) (int, error) {
	return r.table().count(ctx)
}

func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.table().get(ctx, id)
}

func (r UserRepository) Update(ctx context.Context, id string, fields map[string]any, actor string, now time.Time) (models.User, error) {
	return r.table().update(ctx, id, fields, actor, now)
}

// FindCredentials loads the sign-in projection of the user with userName.
func (r UserRepository) FindCredentials(ctx context.Context, userName string) (models.Credentials, error) {
	var cred models.Credentials
	q := r.Dialect
	stmt, args, err := q.Builder().
		Select(q.Quote("Id"), q.Quote("UserName"), q.Quote("PasswordHash"), q.Quote("EmailConfirmed"), q.Quote("Role")).
		From(q.Table(UsersCollection.Table)).
		Where(sq.Eq{q.Quote("UserName"): userName}).
		Limit(1).
		ToSql()
	if err != nil {
		return cred, domain.InternalError{Msg: "build credentials query", Err: err}
	}

	if err := r.DB.GetContext(ctx, &cred, stmt, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cred, domain.NotFoundError{Resource: "User", Err: err}
		}
		return cred, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return cred, nil
}
