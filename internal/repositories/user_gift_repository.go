package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	intdb "eventbackend/internal/db"
	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
)

type UserGiftRepository struct {
	DB      *sqlx.DB
	Dialect intdb.Dialect
	Filter  query.ParseOptions
}

func (r UserGiftRepository) table() table[models.UserGift] {
	return table[models.UserGift]{db: r.DB, dialect: r.Dialect, coll: UserGiftsCollection}
}

func (r UserGiftRepository) List(ctx context.Context, req query.Request) (domain.PagedResult[models.UserGift], error) {
	return r.table().list(ctx, req, r.Filter)
}

func (r UserGiftRepository) Count(ctx context.Context) (int, error) {
	return r.table().count(ctx)
}
