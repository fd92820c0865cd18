package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
)

type UserEventRepository struct {
	DB      *sqlx.DB
	Dialect intdb.Dialect
}

func (r UserEventRepository) table() table[models.UserEvent] {
	return table[models.UserEvent]{db: r.DB, dialect: r.Dialect, coll: UserEventsCollection}
}

// List pages through user events ordered by id. Filters and sort are not
// supported on this resource and are dropped.
func (r UserEventRepository) List(ctx context.Context, page query.PageRequest) (domain.PagedResult[models.UserEvent], error) {
	return query.Execute[models.UserEvent](ctx, r.DB, UserEventsCollection, r.Dialect, nil, nil, page)
}

func (r UserEventRepository) Count(ctx context.Context) (int, error) {
	return r.table().count(ctx)
}

func (r UserEventRepository) GetByID(ctx context.Context, id string) (models.UserEvent, error) {
	return r.table().get(ctx, id)
}

func (r UserEventRepository) Update(ctx context.Context, id string, fields map[string]any, actor string, now time.Time) (models.UserEvent, error) {
	return r.table().update(ctx, id, fields, actor, now)
}
