package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CountProducts(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("products").MustSql()

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").From("orders").MustSql()

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CountUnconfirmedOrders(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"is_confirm": false}).
		MustSql()

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count unconfirmed orders: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) TotalRevenue(ctx context.Context) (float64, error) {
	// COALESCE, чтобы при пустой таблице сумма была 0, а не NULL
	query, args := r.qb.Select("COALESCE(SUM(total_price), 0)").From("orders").MustSql()

	var sum float64
	if err := r.db.GetContext(ctx, &sum, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	return sum, nil
}

func (r *postgresRepo) TopCustomers(ctx context.Context, limit int) ([]entities.CustomerStat, error) {
	query, args := r.qb.Select(
		"o.user_id",
		"u.name",
		"u.email",
		"COUNT(*) AS count_order",
		"COALESCE(SUM(o.total_price), 0) AS sum_total_price",
	).
		From("orders o").
		Join("users u ON u.user_id = o.user_id").
		GroupBy("o.user_id", "u.name", "u.email").
		OrderBy("count_order DESC", "sum_total_price DESC", "o.user_id ASC").
		Limit(uint64(limit)).
		MustSql()

	var stats []CustomerStat
	if err := r.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select top customers: %w", err)
	}

	result := make([]entities.CustomerStat, 0, len(stats))
	for _, s := range stats {
		result = append(result, CustomerStatToEntity(s))
	}
	return result, nil
}

func (r *postgresRepo) RecentOrders(ctx context.Context, limit int) ([]entities.OrderSummary, error) {
	query, args := r.qb.Select(
		"o.order_id", "o.total_price", "o.is_confirm", "o.is_paid", "o.is_delivered",
		"o.status_now", "o.created_at",
		"o.user_id", "u.name AS user_name", "u.email AS user_email",
	).
		From("orders o").
		Join("users u ON u.user_id = o.user_id").
		OrderBy("o.created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []OrderSummary
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select recent orders: %w", err)
	}

	result := make([]entities.OrderSummary, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderSummaryToEntity(o))
	}
	return result, nil
}

func (r *postgresRepo) OrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error) {
	return r.ordersPerMonth(ctx, r.monthlyBuckets())
}

// PendingOrdersPerMonth считает только заказы со статусом 'pending'.
// Сравнение строгое, с учётом регистра.
func (r *postgresRepo) PendingOrdersPerMonth(ctx context.Context) ([]entities.MonthlyBucket, error) {
	return r.ordersPerMonth(ctx, r.monthlyBuckets().Where(sq.Eq{"status_now": "pending"}))
}

func (r *postgresRepo) monthlyBuckets() sq.SelectBuilder {
	return r.qb.Select(
		"EXTRACT(YEAR FROM created_at)::int AS year",
		"EXTRACT(MONTH FROM created_at)::int AS month",
		"COUNT(*) AS count_order",
	).
		From("orders").
		GroupBy("1", "2")
}

func (r *postgresRepo) ordersPerMonth(ctx context.Context, builder sq.SelectBuilder) ([]entities.MonthlyBucket, error) {
	query, args := builder.MustSql()

	var buckets []MonthlyBucket
	if err := r.db.SelectContext(ctx, &buckets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select monthly buckets: %w", err)
	}

	result := make([]entities.MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, MonthlyBucketToEntity(b))
	}
	return result, nil
}

func (r *postgresRepo) TrendingProducts(ctx context.Context, since time.Time, limit int) ([]entities.ProductTrend, error) {
	// LEFT JOIN: позиция заказа с удалённым товаром попадает в группу с пустым именем
	query, args := r.qb.Select(
		"p.name AS product_name",
		"COUNT(*) AS count_order",
		"COALESCE(SUM(oi.price), 0) AS sum_revenue",
	).
		From("order_items oi").
		Join("orders o ON o.order_id = oi.order_id").
		LeftJoin("products p ON p.product_id = oi.product_id").
		Where(sq.GtOrEq{"o.created_at": since}).
		GroupBy("p.name").
		OrderBy("count_order DESC").
		Limit(uint64(limit)).
		MustSql()

	var trends []ProductTrend
	if err := r.db.SelectContext(ctx, &trends, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select trending products: %w", err)
	}

	result := make([]entities.ProductTrend, 0, len(trends))
	for _, t := range trends {
		result = append(result, ProductTrendToEntity(t))
	}
	return result, nil
}

func (r *postgresRepo) TrendingCategories(ctx context.Context, since time.Time) ([]entities.CategoryTrend, error) {
	query, args := r.qb.Select(
		"c.name AS category_name",
		"COUNT(*) AS count_order",
	).
		From("order_items oi").
		Join("orders o ON o.order_id = oi.order_id").
		LeftJoin("products p ON p.product_id = oi.product_id").
		LeftJoin("sub_categories sc ON sc.sub_category_id = p.sub_category_id").
		LeftJoin("categories c ON c.category_id = sc.category_id").
		Where(sq.GtOrEq{"o.created_at": since}).
		GroupBy("c.name").
		OrderBy("count_order DESC").
		MustSql()

	var trends []CategoryTrend
	if err := r.db.SelectContext(ctx, &trends, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select trending categories: %w", err)
	}

	result := make([]entities.CategoryTrend, 0, len(trends))
	for _, t := range trends {
		result = append(result, CategoryTrendToEntity(t))
	}
	return result, nil
}
