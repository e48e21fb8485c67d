package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"
	"github.com/vndshop/dashboard-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) CountOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) CountUnconfirmedOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockRepo) TopCustomers(ctx context.Context, limit int) ([]entities.CustomerStat, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.CustomerStat), args.Error(1)
}

func (m *mockRepo) RecentOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entities.OrderSummary), args.Error(1)
}

func (m *mockRepo) OrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.MonthlyBucket), args.Error(1)
}

func (m *mockRepo) PendingOrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.MonthlyBucket), args.Error(1)
}

func (m *mockRepo) TrendingProducts(ctx context.Context, since time.Time, limit int) ([]entities.ProductTrend, error) {
	args := m.Called(ctx, since, limit)
	return args.Get(0).([]entities.ProductTrend), args.Error(1)
}

func (m *mockRepo) TrendingCategories(ctx context.Context, since time.Time) ([]entities.CategoryTrend, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]entities.CategoryTrend), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(key string) ([]byte, bool) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Bool(1)
}

func (m *mockCache) Set(key string, value []byte) {
	m.Called(key, value)
}

func newService(t *testing.T) (*mockRepo, *mockCache, *slog.Logger) {
	t.Helper()
	repo := &mockRepo{}
	cache := &mockCache{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return repo, cache, logger
}

func TestDashboardService_SummaryCards(t *testing.T) {
	t.Run("empty store yields zero cards, not an error", func(t *testing.T) {
		repo, cache, logger := newService(t)
		cache.On("Get", "cards").Return(nil, false).Once()
		cache.On("Set", "cards", mock.Anything).Return().Once()

		repo.On("CountProducts", mock.Anything).Return(int64(0), nil).Once()
		repo.On("CountOrders", mock.Anything).Return(int64(0), nil).Once()
		repo.On("CountUnconfirmedOrders", mock.Anything).Return(int64(0), nil).Once()
		repo.On("TotalRevenue", mock.Anything).Return(float64(0), nil).Once()

		svc := service.NewDashboardService(logger, repo, cache, 0)
		cards, err := svc.SummaryCards(context.Background())

		require.NoError(t, err)
		require.Len(t, cards, 4)
		assert.Equal(t, "Total turnover", cards[2].Title)
		assert.Contains(t, cards[2].CountText, "0")
		assert.Equal(t, int64(0), cards[3].Count)
	})

	t.Run("three confirmed orders", func(t *testing.T) {
		repo, cache, logger := newService(t)
		cache.On("Get", "cards").Return(nil, false).Once()
		cache.On("Set", "cards", mock.Anything).Return().Once()

		repo.On("CountProducts", mock.Anything).Return(int64(12), nil).Once()
		repo.On("CountOrders", mock.Anything).Return(int64(3), nil).Once()
		repo.On("CountUnconfirmedOrders", mock.Anything).Return(int64(0), nil).Once()
		repo.On("TotalRevenue", mock.Anything).Return(float64(600), nil).Once()

		svc := service.NewDashboardService(logger, repo, cache, 0)
		cards, err := svc.SummaryCards(context.Background())

		require.NoError(t, err)
		require.Len(t, cards, 4)

		assert.Equal(t, "Total sales", cards[0].Title)
		assert.Equal(t, int64(12), cards[0].Count)
		assert.Equal(t, "New orders", cards[1].Title)
		assert.Equal(t, int64(0), cards[1].Count)
		assert.Contains(t, cards[2].CountText, "600")
		assert.Equal(t, "Total orders", cards[3].Title)
		assert.Equal(t, int64(3), cards[3].Count)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo, cache, logger := newService(t)
		dbErr := errors.New("db down")

		cache.On("Get", "cards").Return(nil, false).Once()
		repo.On("CountProducts", mock.Anything).Return(int64(0), dbErr)
		repo.On("CountOrders", mock.Anything).Return(int64(0), nil).Maybe()
		repo.On("CountUnconfirmedOrders", mock.Anything).Return(int64(0), nil).Maybe()
		repo.On("TotalRevenue", mock.Anything).Return(float64(0), nil).Maybe()

		svc := service.NewDashboardService(logger, repo, cache, 0)
		_, err := svc.SummaryCards(context.Background())

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("served from cache without touching the store", func(t *testing.T) {
		repo, cache, logger := newService(t)

		svc := service.NewDashboardService(logger, repo, cache, 0)

		// прогреваем кеш первым запросом
		cache.On("Get", "cards").Return(nil, false).Once()
		repo.On("CountProducts", mock.Anything).Return(int64(1), nil).Once()
		repo.On("CountOrders", mock.Anything).Return(int64(2), nil).Once()
		repo.On("CountUnconfirmedOrders", mock.Anything).Return(int64(0), nil).Once()
		repo.On("TotalRevenue", mock.Anything).Return(float64(100), nil).Once()

		var cachedData []byte
		cache.On("Set", "cards", mock.Anything).Run(func(args mock.Arguments) {
			cachedData = args.Get(1).([]byte)
		}).Return().Once()

		first, err := svc.SummaryCards(context.Background())
		require.NoError(t, err)

		cache.On("Get", "cards").Return(cachedData, true).Once()

		second, err := svc.SummaryCards(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertExpectations(t)
	})
}

func TestDashboardService_TopCustomers(t *testing.T) {
	repo, cache, logger := newService(t)

	stats := []entities.CustomerStat{
		{Customer: entities.Customer{UserID: 1, Name: "An"}, OrderCount: 9, TotalSpent: 900},
		{Customer: entities.Customer{UserID: 2, Name: "Binh"}, OrderCount: 4, TotalSpent: 1200},
	}

	cache.On("Get", "top-customers").Return(nil, false).Once()
	cache.On("Set", "top-customers", mock.Anything).Return().Once()
	repo.On("TopCustomers", mock.Anything, 5).Return(stats, nil).Once()

	svc := service.NewDashboardService(logger, repo, cache, 0)
	got, err := svc.TopCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
	repo.AssertExpectations(t)
}

func TestDashboardService_MonthlyAnalytics(t *testing.T) {
	repo, cache, logger := newService(t)

	orders := []entities.MonthlyBucket{
		{Year: 2026, Month: 7, OrderCount: 10},
		{Year: 2026, Month: 8, OrderCount: 12},
	}
	pending := []entities.MonthlyBucket{
		{Year: 2026, Month: 8, OrderCount: 2},
	}

	cache.On("Get", "analytics").Return(nil, false).Once()
	cache.On("Set", "analytics", mock.Anything).Return().Once()
	repo.On("OrdersPerMonth", mock.Anything).Return(orders, nil).Once()
	repo.On("PendingOrdersPerMonth", mock.Anything).Return(pending, nil).Once()

	svc := service.NewDashboardService(logger, repo, cache, 0)
	got, err := svc.MonthlyAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, orders, got.Orders)
	assert.Equal(t, pending, got.Cancellations)

	// серия отмен — подмножество общей серии
	totals := make(map[[2]int]int64)
	for _, b := range got.Orders {
		totals[[2]int{b.Year, b.Month}] = b.OrderCount
	}
	for _, b := range got.Cancellations {
		assert.LessOrEqual(t, b.OrderCount, totals[[2]int{b.Year, b.Month}])
	}
}

func TestDashboardService_TrendingProducts(t *testing.T) {
	t.Run("negative window is rejected before any query", func(t *testing.T) {
		repo, cache, logger := newService(t)

		svc := service.NewDashboardService(logger, repo, cache, 0)
		_, err := svc.TrendingProducts(context.Background(), -1)

		assert.ErrorIs(t, err, entities.ErrInvalidLookback)
		repo.AssertNotCalled(t, "TrendingProducts", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cutoff is now minus the window", func(t *testing.T) {
		repo, cache, logger := newService(t)

		trends := []entities.ProductTrend{{ProductName: "Pho bo", OrderCount: 1, Revenue: 50}}

		cache.On("Get", "trending-products:50").Return(nil, false).Once()
		cache.On("Set", "trending-products:50", mock.Anything).Return().Once()

		wantSince := time.Now().AddDate(0, 0, -50)
		repo.On("TrendingProducts", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
			return since.Sub(wantSince).Abs() < time.Minute
		}), 10).Return(trends, nil).Once()

		svc := service.NewDashboardService(logger, repo, cache, 0)
		got, err := svc.TrendingProducts(context.Background(), 50)

		require.NoError(t, err)
		assert.Equal(t, trends, got)
		repo.AssertExpectations(t)
	})
}

func TestDashboardService_TrendingCategories(t *testing.T) {
	t.Run("negative window is rejected", func(t *testing.T) {
		repo, cache, logger := newService(t)

		svc := service.NewDashboardService(logger, repo, cache, 0)
		_, err := svc.TrendingCategories(context.Background(), -7)

		assert.ErrorIs(t, err, entities.ErrInvalidLookback)
	})

	t.Run("returns all categories unbounded", func(t *testing.T) {
		repo, cache, logger := newService(t)

		trends := []entities.CategoryTrend{
			{CategoryName: "Noodles", OrderCount: 7},
			{CategoryName: "Drinks", OrderCount: 3},
			{CategoryName: "Desserts", OrderCount: 1},
		}

		cache.On("Get", "trending-categories:30").Return(nil, false).Once()
		cache.On("Set", "trending-categories:30", mock.Anything).Return().Once()
		repo.On("TrendingCategories", mock.Anything, mock.Anything).Return(trends, nil).Once()

		svc := service.NewDashboardService(logger, repo, cache, 0)
		got, err := svc.TrendingCategories(context.Background(), 30)

		require.NoError(t, err)
		assert.Equal(t, trends, got)

		seen := make(map[string]bool)
		for _, trend := range got {
			assert.False(t, seen[trend.CategoryName], "duplicate category %q", trend.CategoryName)
			seen[trend.CategoryName] = true
		}
	})
}

func TestDashboardService_RecentOrders(t *testing.T) {
	repo, cache, logger := newService(t)

	orders := []entities.OrderSummary{
		{OrderID: 3, TotalPrice: 300, CreatedAt: time.Now()},
		{OrderID: 2, TotalPrice: 200, CreatedAt: time.Now().Add(-time.Hour)},
	}

	cache.On("Get", "recent-orders").Return(nil, false).Once()
	cache.On("Set", "recent-orders", mock.Anything).Return().Once()
	repo.On("RecentOrders", mock.Anything, 5).Return(orders, nil).Once()

	svc := service.NewDashboardService(logger, repo, cache, 0)
	got, err := svc.RecentOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
