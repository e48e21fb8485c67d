package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vndshop/dashboard-service/internal/entities"
	"github.com/vndshop/dashboard-service/pkg/httperr"
	"github.com/vndshop/dashboard-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DashboardService interface {
	SummaryCards(ctx context.Context) ([]entities.Card, error)
	TopCustomers(ctx context.Context) ([]entities.CustomerStat, error)
	RecentOrders(ctx context.Context) ([]entities.OrderSummary, error)
	MonthlyAnalytics(ctx context.Context) (entities.Analytics, error)
	TrendingProducts(ctx context.Context, days int) ([]entities.ProductTrend, error)
	TrendingCategories(ctx context.Context, days int) ([]entities.CategoryTrend, error)
}

type HTTPHandler struct {
	logger            *slog.Logger
	validate          *validator.Validate
	responder         *httperr.Responder
	svc               DashboardService
	defaultWindowDays int
}

func NewHTTPHandler(logger *slog.Logger, responder *httperr.Responder, svc DashboardService, defaultWindowDays int) *HTTPHandler {
	return &HTTPHandler{
		logger:            logger.With(slog.String("handler", "http")),
		validate:          validator.New(),
		responder:         responder,
		svc:               svc,
		defaultWindowDays: defaultWindowDays,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/cards", h.responder.Handle(h.getCards))
		r.Get("/customers/top", h.responder.Handle(h.getTopCustomers))
		r.Get("/orders/recent", h.responder.Handle(h.getRecentOrders))
		r.Get("/analytics", h.responder.Handle(h.getAnalytics))
		r.Get("/products/trending", h.responder.Handle(h.getTrendingProducts))
		r.Get("/categories/trending", h.responder.Handle(h.getTrendingCategories))
	})
}

// getCards возвращает карточки сводки.
// @Summary      Summary cards
// @Description  Количество товаров, новых заказов, общая выручка и число заказов
// @Tags         dashboard
// @Success      200  {array}   Card
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/cards [get]
func (h *HTTPHandler) getCards(w http.ResponseWriter, r *http.Request) error {
	defer observe("cards", time.Now())

	cards, err := h.svc.SummaryCards(r.Context())
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to build summary cards")
	}
	return utils.WriteJSON(w, CardsEntityToJSON(cards), http.StatusOK)
}

// getTopCustomers возвращает покупателей с наибольшим числом заказов.
// @Summary      Top customers
// @Tags         dashboard
// @Success      200  {array}   TopCustomer
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/customers/top [get]
func (h *HTTPHandler) getTopCustomers(w http.ResponseWriter, r *http.Request) error {
	defer observe("top-customers", time.Now())

	stats, err := h.svc.TopCustomers(r.Context())
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to get top customers")
	}
	return utils.WriteJSON(w, TopCustomersEntityToJSON(stats), http.StatusOK)
}

// getRecentOrders возвращает последние заказы вместе с покупателями.
// @Summary      Recent orders
// @Tags         dashboard
// @Success      200  {array}   RecentOrder
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/orders/recent [get]
func (h *HTTPHandler) getRecentOrders(w http.ResponseWriter, r *http.Request) error {
	defer observe("recent-orders", time.Now())

	orders, err := h.svc.RecentOrders(r.Context())
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to get recent orders")
	}
	return utils.WriteJSON(w, RecentOrdersEntityToJSON(orders), http.StatusOK)
}

// getAnalytics возвращает помесячные серии заказов.
// @Summary      Monthly analytics
// @Tags         dashboard
// @Success      200  {object}  Analytics
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/analytics [get]
func (h *HTTPHandler) getAnalytics(w http.ResponseWriter, r *http.Request) error {
	defer observe("analytics", time.Now())

	analytics, err := h.svc.MonthlyAnalytics(r.Context())
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to get monthly analytics")
	}
	return utils.WriteJSON(w, AnalyticsEntityToJSON(analytics), http.StatusOK)
}

// getTrendingProducts возвращает популярные товары за окно lastDate дней.
// @Summary      Trending products
// @Tags         dashboard
// @Param        lastDate  query     int  false  "Окно в днях, по умолчанию 30"
// @Success      200  {array}   ProductTrend
// @Failure      400  {object}  httperr.ErrorPayload
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/products/trending [get]
func (h *HTTPHandler) getTrendingProducts(w http.ResponseWriter, r *http.Request) error {
	defer observe("trending-products", time.Now())

	days, err := h.lookbackDays(r)
	if err != nil {
		return err
	}

	trends, err := h.svc.TrendingProducts(r.Context(), days)
	if errors.Is(err, entities.ErrInvalidLookback) {
		return httperr.Wrap(err, http.StatusBadRequest, "invalid lookback window")
	}
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to get trending products")
	}
	return utils.WriteJSON(w, ProductTrendsEntityToJSON(trends), http.StatusOK)
}

// getTrendingCategories возвращает популярные категории за окно lastDate дней.
// @Summary      Trending categories
// @Tags         dashboard
// @Param        lastDate  query     int  false  "Окно в днях, по умолчанию 30"
// @Success      200  {array}   CategoryTrend
// @Failure      400  {object}  httperr.ErrorPayload
// @Failure      500  {object}  httperr.ErrorPayload
// @Router       /dashboard/categories/trending [get]
func (h *HTTPHandler) getTrendingCategories(w http.ResponseWriter, r *http.Request) error {
	defer observe("trending-categories", time.Now())

	days, err := h.lookbackDays(r)
	if err != nil {
		return err
	}

	trends, err := h.svc.TrendingCategories(r.Context(), days)
	if errors.Is(err, entities.ErrInvalidLookback) {
		return httperr.Wrap(err, http.StatusBadRequest, "invalid lookback window")
	}
	if err != nil {
		return httperr.Wrap(err, http.StatusInternalServerError, "failed to get trending categories")
	}
	return utils.WriteJSON(w, CategoryTrendsEntityToJSON(trends), http.StatusOK)
}

// lookbackDays разбирает query-параметр lastDate.
// Отсутствующий параметр — окно по умолчанию, мусор и отрицательные значения — 400.
func (h *HTTPHandler) lookbackDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("lastDate")
	if raw == "" {
		return h.defaultWindowDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.Wrap(err, http.StatusBadRequest, "lastDate must be an integer number of days")
	}
	if err := h.validate.Var(days, "gte=0"); err != nil {
		return 0, httperr.Wrap(err, http.StatusBadRequest, "lastDate must not be negative")
	}
	return days, nil
}
