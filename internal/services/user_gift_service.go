package services

import (
	"context"

	"eventbackend/internal/domain"
	"eventbackend/internal/domain/models"
	"eventbackend/internal/query"
	"eventbackend/internal/repositories"
)

type UserGiftService struct {
	Gifts repositories.UserGiftRepository
}

func (s UserGiftService) List(ctx context.Context, req query.Request) (domain.PagedResult[models.UserGift], error) {
	return s.Gifts.List(ctx, req)
}

func (s UserGiftService) Count(ctx context.Context) (domain.CountResult, error) {
	n, err := s.Gifts.Count(ctx)
	if err != nil {
		return domain.CountResult{}, err
	}
	return domain.CountResult{TotalCount: n}, nil
}
