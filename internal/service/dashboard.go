package service

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"
	"github.com/vndshop/dashboard-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const (
	topCustomersLimit     = 5
	recentOrdersLimit     = 5
	trendingProductsLimit = 10
)

type DashboardRepo interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	CountUnconfirmedOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)

	TopCustomers(ctx context.Context, limit int) ([]entities.CustomerStat, error)
	RecentOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error)

	OrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error)
	PendingOrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error)

	TrendingProducts(ctx context.Context, since time.Time, limit int) ([]entities.ProductTrend, error)
	TrendingCategories(ctx context.Context, since time.Time) ([]entities.CategoryTrend, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type dashboardService struct {
	logger       *slog.Logger
	repo         DashboardRepo
	cache        Cache
	queryTimeout time.Duration
}

func NewDashboardService(logger *slog.Logger, repo DashboardRepo, cache Cache, queryTimeout time.Duration) *dashboardService {
	return &dashboardService{
		logger:       logger.With(slog.String("service", "dashboard")),
		repo:         repo,
		cache:        cache,
		queryTimeout: queryTimeout,
	}
}

// SummaryCards собирает четыре карточки сводки. Запросы независимы
// и выполняются параллельно, единый снапшот данных не гарантируется.
func (s *dashboardService) SummaryCards(ctx context.Context) ([]entities.Card, error) {
	return cached(ctx, s, "cards", "cards", func(ctx context.Context) ([]entities.Card, error) {
		var (
			products    int64
			orders      int64
			unconfirmed int64
			revenue     float64
		)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			products, err = s.repo.CountProducts(ctx)
			return err
		})
		g.Go(func() (err error) {
			orders, err = s.repo.CountOrders(ctx)
			return err
		})
		g.Go(func() (err error) {
			unconfirmed, err = s.repo.CountUnconfirmedOrders(ctx)
			return err
		})
		g.Go(func() (err error) {
			revenue, err = s.repo.TotalRevenue(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("failed to collect summary cards: %w", err)
		}

		return []entities.Card{
			{Icon: "bx bx-shopping-bag", Title: "Total sales", Count: products},
			{Icon: "bx bx-cart", Title: "New orders", Count: unconfirmed},
			{Icon: "bx bx-dollar-circle", Title: "Total turnover", CountText: formatVND(revenue)},
			{Icon: "bx bx-receipt", Title: "Total orders", Count: orders},
		}, nil
	})
}

func (s *dashboardService) TopCustomers(ctx context.Context) ([]entities.CustomerStat, error) {
	return cached(ctx, s, "top-customers", "top-customers", func(ctx context.Context) ([]entities.CustomerStat, error) {
		return s.repo.TopCustomers(ctx, topCustomersLimit)
	})
}

func (s *dashboardService) RecentOrders(ctx context.Context) ([]entities.OrderSummary, error) {
	return cached(ctx, s, "recent-orders", "recent-orders", func(ctx context.Context) ([]entities.OrderSummary, error) {
		return s.repo.RecentOrders(ctx, recentOrdersLimit)
	})
}

func (s *dashboardService) MonthlyAnalytics(ctx context.Context) (entities.Analytics, error) {
	return cached(ctx, s, "analytics", "analytics", func(ctx context.Context) (entities.Analytics, error) {
		var analytics entities.Analytics

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			analytics.Orders, err = s.repo.OrdersPerMonth(ctx)
			return err
		})
		g.Go(func() (err error) {
			analytics.Cancellations, err = s.repo.PendingOrdersPerMonth(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return entities.Analytics{}, fmt.Errorf("failed to collect monthly analytics: %w", err)
		}
		return analytics, nil
	})
}

func (s *dashboardService) TrendingProducts(ctx context.Context, days int) ([]entities.ProductTrend, error) {
	if days < 0 {
		return nil, entities.ErrInvalidLookback
	}
	key := fmt.Sprintf("trending-products:%d", days)
	since := lookbackCutoff(days)

	return cached(ctx, s, "trending-products", key, func(ctx context.Context) ([]entities.ProductTrend, error) {
		return s.repo.TrendingProducts(ctx, since, trendingProductsLimit)
	})
}

func (s *dashboardService) TrendingCategories(ctx context.Context, days int) ([]entities.CategoryTrend, error) {
	if days < 0 {
		return nil, entities.ErrInvalidLookback
	}
	key := fmt.Sprintf("trending-categories:%d", days)
	since := lookbackCutoff(days)

	return cached(ctx, s, "trending-categories", key, func(ctx context.Context) ([]entities.CategoryTrend, error) {
		return s.repo.TrendingCategories(ctx, since)
	})
}

func lookbackCutoff(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

// cached достаёт отчёт из кеша, а при промахе выполняет fetch
// с таймаутом и повторами и кладёт результат обратно.
func cached[T any](ctx context.Context, s *dashboardService, report, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok := s.cache.Get(key); ok {
		var value T
		if err := decode(data, &value); err == nil {
			cacheHits.WithLabelValues(report).Inc()
			return value, nil
		}
		// повреждённую запись просто перечитываем из базы
		s.logger.Warn("failed to decode cached report", slog.String("key", key))
	}
	cacheMisses.WithLabelValues(report).Inc()

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	var value T
	fn := func() (err error) {
		value, err = fetch(ctx)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, context.Canceled, context.DeadlineExceeded); err != nil {
		return zero, err
	}

	if data, err := encode(value); err == nil {
		s.cache.Set(key, data)
	} else {
		s.logger.Warn("failed to encode report for cache", slog.String("key", key), slog.Any("error", err))
	}
	return value, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
