package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vndshop/dashboard-service/internal/app"
	"github.com/vndshop/dashboard-service/internal/config"
	"github.com/vndshop/dashboard-service/internal/handler"
	"github.com/vndshop/dashboard-service/internal/postgres"
	"github.com/vndshop/dashboard-service/internal/repo"
	"github.com/vndshop/dashboard-service/internal/service"
	"github.com/vndshop/dashboard-service/pkg/cache"
	"github.com/vndshop/dashboard-service/pkg/httperr"

	_ "github.com/vndshop/dashboard-service/docs"

	"github.com/joho/godotenv"
)

// @title           Dashboard Service API
// @version         1.0
// @description     Аналитика заказов для админки магазина
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	dashboardRepo := repo.NewPostgresRepo(db)
	reportCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	dashboardService := service.NewDashboardService(logger, dashboardRepo, reportCache, conf.Dashboard.QueryTimeout)

	// стек и детали ошибок уходят клиенту только вне production
	responder := httperr.NewResponder(logger, conf.Env != "production")

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, reportCache)
	httpHandler := handler.NewHTTPHandler(logger, responder, dashboardService, conf.Dashboard.DefaultWindowDays)

	app := app.New(logger, conf, responder)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(janitorAdapter{cache: reportCache})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type janitorAdapter struct {
	cache *cache.LRUCache
}

func (a janitorAdapter) Start(ctx context.Context) {
	a.cache.StartJanitor(ctx)
}
