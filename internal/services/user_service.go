package services

import (
	"context"
	"time"

	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
	"eventbackend/internal/repositories"
)

type UserService struct {
	Users repositories.UserRepository
	Now   func() time.Time
}

func (s UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns a page of users. Filters are only honoured when the caller
// passes them; getAllUsers strips them before calling.
func (s UserService) List(ctx context.Context, req query.Request) (domain.PagedResult[models.User], error) {
	return s.Users.List(ctx, req)
}

func (s UserService) Count(ctx context.Context) (domain.CountResult, error) {
	n, err := s.Users.Count(ctx)
	if err != nil {
		return domain.CountResult{}, err
	}
	return domain.CountResult{TotalCount: n}, nil
}

func (s UserService) Get(ctx context.Context, id string) (models.User, error) {
	return s.Users.GetByID(ctx, id)
}

// Update applies a partial update on behalf of actor.
func (s UserService) Update(ctx context.Context, id string, fields map[string]any, actor string) (models.User, error) {
	if fields == nil {
		return models.User{}, domain.ValidationError{Field: "body", Msg: "update body must be a JSON object"}
	}
	return s.Users.Update(ctx, id, fields, actor, s.now())
}
