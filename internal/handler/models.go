package handler

import (
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"
)

// Card карточка сводки. Count — число, кроме денежных карточек,
// где витрина ждёт отформатированную строку.
type Card struct {
	Icon  string `json:"icon"`
	Count any    `json:"count"`
	Title string `json:"title"`
}

type CustomerRef struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// TopCustomer элемент списка лучших покупателей
type TopCustomer struct {
	ID            CustomerRef `json:"_id"`
	CountOrder    int64       `json:"countOrder"`
	SumTotalPrice float64     `json:"sumTotalPrice"`
}

// RecentOrder заказ из списка последних вместе с покупателем
type RecentOrder struct {
	OrderID     int64       `json:"order_id"`
	TotalPrice  float64     `json:"total_price"`
	IsConfirm   bool        `json:"is_confirm"`
	IsPaid      bool        `json:"is_paid"`
	IsDelivered bool        `json:"is_delivered"`
	Status      string      `json:"status,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	User        CustomerRef `json:"user"`
}

type MonthBucketID struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthBucket struct {
	ID         MonthBucketID `json:"_id"`
	CountOrder int64         `json:"countOrder"`
}

// Analytics две помесячные серии: все заказы и заказы в статусе pending
type Analytics struct {
	OrderAnalytics       []MonthBucket `json:"orderAnalytics"`
	OrderCancelAnalytics []MonthBucket `json:"orderCancelAnalytics"`
}

type ProductTrend struct {
	ID         string  `json:"_id"`
	CountOrder int64   `json:"countOrder"`
	SumRevenue float64 `json:"sumRevenue"`
}

type CategoryTrend struct {
	ID         string `json:"_id"`
	CountOrder int64  `json:"countOrder"`
}

func CardEntityToJSON(c entities.Card) Card {
	card := Card{Icon: c.Icon, Title: c.Title}
	if c.CountText != "" {
		card.Count = c.CountText
	} else {
		card.Count = c.Count
	}
	return card
}

func CardsEntityToJSON(cards []entities.Card) []Card {
	result := make([]Card, 0, len(cards))
	for _, c := range cards {
		result = append(result, CardEntityToJSON(c))
	}
	return result
}

func CustomerEntityToJSON(c entities.Customer) CustomerRef {
	return CustomerRef{
		UserID: c.UserID,
		Name:   c.Name,
		Email:  c.Email,
	}
}

func TopCustomersEntityToJSON(stats []entities.CustomerStat) []TopCustomer {
	result := make([]TopCustomer, 0, len(stats))
	for _, s := range stats {
		result = append(result, TopCustomer{
			ID:            CustomerEntityToJSON(s.Customer),
			CountOrder:    s.OrderCount,
			SumTotalPrice: s.TotalSpent,
		})
	}
	return result
}

func RecentOrdersEntityToJSON(orders []entities.OrderSummary) []RecentOrder {
	result := make([]RecentOrder, 0, len(orders))
	for _, o := range orders {
		result = append(result, RecentOrder{
			OrderID:     o.OrderID,
			TotalPrice:  o.TotalPrice,
			IsConfirm:   o.IsConfirm,
			IsPaid:      o.IsPaid,
			IsDelivered: o.IsDelivered,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			User:        CustomerEntityToJSON(o.User),
		})
	}
	return result
}

func monthBucketsEntityToJSON(buckets []entities.MonthlyBucket) []MonthBucket {
	result := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, MonthBucket{
			ID:         MonthBucketID{Year: b.Year, Month: b.Month},
			CountOrder: b.OrderCount,
		})
	}
	return result
}

func AnalyticsEntityToJSON(a entities.Analytics) Analytics {
	return Analytics{
		OrderAnalytics:       monthBucketsEntityToJSON(a.Orders),
		OrderCancelAnalytics: monthBucketsEntityToJSON(a.Cancellations),
	}
}

func ProductTrendsEntityToJSON(trends []entities.ProductTrend) []ProductTrend {
	result := make([]ProductTrend, 0, len(trends))
	for _, t := range trends {
		result = append(result, ProductTrend{
			ID:         t.ProductName,
			CountOrder: t.OrderCount,
			SumRevenue: t.Revenue,
		})
	}
	return result
}

func CategoryTrendsEntityToJSON(trends []entities.CategoryTrend) []CategoryTrend {
	result := make([]CategoryTrend, 0, len(trends))
	for _, t := range trends {
		result = append(result, CategoryTrend{
			ID:         t.CategoryName,
			CountOrder: t.OrderCount,
		})
	}
	return result
}
