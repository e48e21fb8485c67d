package repo

import (
	"database/sql"
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"
)

type CustomerStat struct {
	UserID        int64          `db:"user_id"`
	Name          sql.NullString `db:"name"`
	Email         sql.NullString `db:"email"`
	CountOrder    int64          `db:"count_order"`
	SumTotalPrice float64        `db:"sum_total_price"`
}

type OrderSummary struct {
	OrderID     int64          `db:"order_id"`
	TotalPrice  float64        `db:"total_price"`
	IsConfirm   bool           `db:"is_confirm"`
	IsPaid      bool           `db:"is_paid"`
	IsDelivered bool           `db:"is_delivered"`
	StatusNow   sql.NullString `db:"status_now"`
	CreatedAt   time.Time      `db:"created_at"`
	UserID      int64          `db:"user_id"`
	UserName    sql.NullString `db:"user_name"`
	UserEmail   sql.NullString `db:"user_email"`
}

type MonthlyBucket struct {
	Year       int   `db:"year"`
	Month      int   `db:"month"`
	CountOrder int64 `db:"count_order"`
}

type ProductTrend struct {
	ProductName sql.NullString `db:"product_name"`
	CountOrder  int64          `db:"count_order"`
	SumRevenue  float64        `db:"sum_revenue"`
}

type CategoryTrend struct {
	CategoryName sql.NullString `db:"category_name"`
	CountOrder   int64          `db:"count_order"`
}

func CustomerStatToEntity(s CustomerStat) entities.CustomerStat {
	return entities.CustomerStat{
		Customer: entities.Customer{
			UserID: s.UserID,
			Name:   nullStringToString(s.Name),
			Email:  nullStringToString(s.Email),
		},
		OrderCount: s.CountOrder,
		TotalSpent: s.SumTotalPrice,
	}
}

func OrderSummaryToEntity(o OrderSummary) entities.OrderSummary {
	return entities.OrderSummary{
		OrderID:     o.OrderID,
		TotalPrice:  o.TotalPrice,
		IsConfirm:   o.IsConfirm,
		IsPaid:      o.IsPaid,
		IsDelivered: o.IsDelivered,
		Status:      nullStringToString(o.StatusNow),
		CreatedAt:   o.CreatedAt,
		User: entities.Customer{
			UserID: o.UserID,
			Name:   nullStringToString(o.UserName),
			Email:  nullStringToString(o.UserEmail),
		},
	}
}

func MonthlyBucketToEntity(b MonthlyBucket) entities.MonthlyBucket {
	return entities.MonthlyBucket{
		Year:       b.Year,
		Month:      b.Month,
		OrderCount: b.CountOrder,
	}
}

func ProductTrendToEntity(p ProductTrend) entities.ProductTrend {
	return entities.ProductTrend{
		ProductName: nullStringToString(p.ProductName),
		OrderCount:  p.CountOrder,
		Revenue:     p.SumRevenue,
	}
}

func CategoryTrendToEntity(c CategoryTrend) entities.CategoryTrend {
	return entities.CategoryTrend{
		CategoryName: nullStringToString(c.CategoryName),
		OrderCount:   c.CountOrder,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
