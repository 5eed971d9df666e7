package items

import (
	"context"
	"errors"
	"time"

	"marketplace/pkg/cache"
	"marketplace/pkg/logger"
)

const listCacheKey = "items:all"

type Service interface {
	// SetCacheService injects the optional Redis cache dependency
	SetCacheService(cacheService cache.Service, ttl time.Duration)
	ListItems(ctx context.Context) (*ItemListResponse, error)
	GetItem(ctx context.Context, id uint) (*ItemResponse, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error)
	UpdateItem(ctx context.Context, id uint, req UpdateItemRequest) (*ItemResponse, error)
	DeleteItem(ctx context.Context, id uint) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
	log          *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

// ListItems serves the catalog listing cache-aside: the cached copy wins,
// a miss falls through to the database and repopulates the cache.
func (s *service) ListItems(ctx context.Context) (*ItemListResponse, error) {
	if s.cacheService != nil {
		var cached ItemListResponse
		err := s.cacheService.Get(ctx, listCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WithError(err).Warn("items cache read failed")
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ItemListResponse{Items: make([]ItemResponse, 0, len(list))}
	for i := range list {
		resp.Items = append(resp.Items, list[i].ToResponse())
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, listCacheKey, resp, s.cacheTTL); err != nil {
			s.log.WithError(err).Warn("items cache write failed")
		}
	}

	return resp, nil
}

func (s *service) GetItem(ctx context.Context, id uint) (*ItemResponse, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := item.ToResponse()
	return &resp, nil
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item := &Item{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	resp := item.ToResponse()
	return &resp, nil
}

func (s *service) UpdateItem(ctx context.Context, id uint, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	resp := item.ToResponse()
	return &resp, nil
}

func (s *service) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, listCacheKey); err != nil {
		s.log.WithError(err).Warn("items cache invalidation failed")
	}
}
