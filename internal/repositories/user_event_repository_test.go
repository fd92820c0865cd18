package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"eventbackend/internal/domain"
	"eventbackend/internal/query"
)

func TestUserEventRepositoryGetByID_InvalidID(t *testing.T) {
	db, mock := newMock(t)
	repo := UserEventRepository{DB: db, Dialect: testDialect}

	for _, id := range []string{"", "abc", "1.5"} {
		if _, err := repo.GetByID(context.Background(), id); !domain.IsValidation(err) {
			t.Fatalf("id %q: expected validation error, got %v", id, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected queries: %v", err)
	}
}

func TestUserEventRepositoryList_OrdersByID(t *testing.T) {
	db, mock := newMock(t)
	repo := UserEventRepository{DB: db, Dialect: testDialect}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM "RandomName"."UserEvents"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "RandomName"."UserEvents" ORDER BY "Id" ASC LIMIT 10 OFFSET 10`)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "UserId", "TotalReferral"}).
			AddRow(int64(11), "u-1", int64(3)).
			AddRow(int64(12), "u-2", int64(0)))

	res, err := repo.List(context.Background(), query.PageRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(res.Items) != 2 || res.TotalCount != 12 || res.TotalPages != 2 || res.CurrentPage != 2 {
		t.Fatalf("unexpected page: %+v", res)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserEventRepositoryUpdate(t *testing.T) {
	db, mock := newMock(t)
	repo := UserEventRepository{DB: db, Dialect: testDialect}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "RandomName"."UserEvents" WHERE "Id" = $1 LIMIT 1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "IsFinishedEvent"}).AddRow(int64(5), false))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "RandomName"."UserEvents" SET "IsFinishedEvent" = $1, "ModifiedDate" = $2, "ReferralCode" = $3 WHERE "Id" = $4`)).
		WithArgs(true, now, nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "RandomName"."UserEvents" WHERE "Id" = $1 LIMIT 1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "IsFinishedEvent"}).AddRow(int64(5), true))

	ev, err := repo.Update(context.Background(), "5", map[string]any{"IsFinishedEvent": true, "ReferralCode": nil}, "", now)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !ev.IsFinishedEvent {
		t.Fatalf("expected IsFinishedEvent to be true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
