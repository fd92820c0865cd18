package services

import (
	"context"
	"time"

	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
	"eventbackend/internal/repositories"
)

type UserEventService struct {
	Events repositories.UserEventRepository
	Now    func() time.Time
}

func (s UserEventService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s UserEventService) List(ctx context.Context, rawPage, rawLimit string) (domain.PagedResult[models.UserEvent], error) {
	return s.Events.List(ctx, query.ParsePage(rawPage, rawLimit))
}

func (s UserEventService) Count(ctx context.Context) (domain.CountResult, error) {
	n, err := s.Events.Count(ctx)
	if err != nil {
		return domain.CountResult{}, err
	}
	return domain.CountResult{TotalCount: n}, nil
}

func (s UserEventService) Update(ctx context.Context, id string, fields map[string]any, actor string) (models.UserEvent, error) {
	if fields == nil {
		return models.UserEvent{}, domain.ValidationError{Field: "body", Msg: "update body must be a JSON object"}
	}
	return s.Events.Update(ctx, id, fields, actor, s.now())
}
