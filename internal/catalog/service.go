// Package catalog serves the storefront's menu reads. Reads go through a
// short-lived cache with stampede protection; backend calls sit behind a
// circuit breaker so a struggling backend degrades to fast failures
// instead of piling up requests.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

const listKey = "products:all"

// ProductAPI is the slice of the backend product client the catalog needs.
type ProductAPI interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

type Service struct {
	products ProductAPI
	cache    Cache
	breaker  *gobreaker.CircuitBreaker[[]domain.Product]
	sfg      singleflight.Group // prevents cache stampede
	logger   *zap.Logger
}

func NewService(products ProductAPI, cache Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	breaker := gobreaker.NewCircuitBreaker[[]domain.Product](gobreaker.Settings{
		Name:    "catalog-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &Service{products: products, cache: cache, breaker: breaker, logger: logger}
}

// List returns the full menu, from cache when fresh.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(listKey, func() (interface{}, error) {
		if s.cache != nil {
			products, err := s.cache.GetProducts(ctx, listKey)
			if err == nil {
				return products, nil
			}
			if !errors.Is(err, ErrCacheMiss) {
				s.logger.Warn("cache get error", zap.Error(err))
			}
		}

		products, err := s.fetchList(ctx)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			go func() {
				cctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := s.cache.SetProducts(cctx, listKey, products); err != nil {
					s.logger.Warn("cache set error", zap.Error(err))
				}
			}()
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Get returns one product. Served from the cached menu when possible.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProducts(ctx, listKey); err == nil {
			for i := range products {
				if products[i].ID == id {
					return &products[i], nil
				}
			}
		}
	}
	return s.products.Get(ctx, id)
}

// Search always goes to the backend; queries are too varied to cache.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.products.Search(ctx, query)
}

// Invalidate drops the cached menu. Called after admin menu mutations.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listKey); err != nil {
		s.logger.Warn("cache invalidate error", zap.Error(err))
	}
}

func (s *Service) fetchList(ctx context.Context) ([]domain.Product, error) {
	products, err := s.breaker.Execute(func() ([]domain.Product, error) {
		return s.products.List(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, backend.E(backend.KindTransient, "catalog.list", fmt.Errorf("backend unavailable: %w", err))
		}
		return nil, err
	}
	return products, nil
}
