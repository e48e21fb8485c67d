package entities

import (
	"errors"
	"time"
)

// Card — одна карточка сводки на главной странице админки.
// CountText заполняется только для денежных карточек, где значение
// выводится как отформатированная строка, а не число.
type Card struct {
	Icon      string
	Title     string
	Count     int64
	CountText string
}

type Customer struct {
	UserID int64
	Name   string
	Email  string
}

// CustomerStat — агрегат заказов одного покупателя.
type CustomerStat struct {
	Customer   Customer
	OrderCount int64
	TotalSpent float64
}

// OrderSummary — заказ вместе с покупателем для списка последних заказов.
type OrderSummary struct {
	OrderID     int64
	TotalPrice  float64
	IsConfirm   bool
	IsPaid      bool
	IsDelivered bool
	Status      string
	CreatedAt   time.Time
	User        Customer
}

// MonthlyBucket — количество заказов за один календарный месяц.
type MonthlyBucket struct {
	Year       int
	Month      int
	OrderCount int64
}

type Analytics struct {
	Orders        []MonthlyBucket
	Cancellations []MonthlyBucket
}

type ProductTrend struct {
	ProductName string
	OrderCount  int64
	Revenue     float64
}

type CategoryTrend struct {
	CategoryName string
	OrderCount   int64
}

var (
	ErrInvalidLookback = errors.New("lookback window must be a non-negative number of days")
)
