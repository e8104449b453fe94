package analytics

import (
	"context"
	"fmt"

	"varsity/internal/shared/constants"
	"varsity/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	GetFixtureAnalytics(ctx context.Context, fixtureID uuid.UUID) (*FixtureAnalytics, error)
	GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetFixtureAnalytics(ctx context.Context, fixtureID uuid.UUID) (*FixtureAnalytics, error) {
	cacheKey := fmt.Sprintf("%s:analytics:fixture:%s", constants.CACHE_PREFIX, fixtureID)

	if s.cacheService != nil {
		var cached FixtureAnalytics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	result, err := s.repo.GetFixtureAnalytics(ctx, fixtureID)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, result, constants.TTL_DYNAMIC_MEDIUM)
	}

	return result, nil
}

func (s *service) GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error) {
	cacheKey := constants.CACHE_PREFIX + ":analytics:global"

	if s.cacheService != nil {
		var cached GlobalAnalytics
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	result, err := s.repo.GetGlobalAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, result, constants.TTL_DYNAMIC_MEDIUM)
	}

	return result, nil
}
