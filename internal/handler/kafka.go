package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vndshop/dashboard-service/internal/config"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// OrderEvent — событие жизненного цикла заказа из общего топика.
// Для дашборда важен сам факт изменения, детали не используются.
type OrderEvent struct {
	OrderID int64  `json:"order_id" validate:"required"`
	Event   string `json:"event" validate:"required"`
}

type CacheInvalidator interface {
	Purge()
}

type kafkaHandler struct {
	reader      *kafka.Reader
	logger      *slog.Logger
	validate    *validator.Validate
	invalidator CacheInvalidator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, invalidator CacheInvalidator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		validate:    validator.New(),
		invalidator: invalidator,
	}
}

// Consume сбрасывает закешированные отчёты при каждом событии заказа.
// Некорректные события коммитятся и пропускаются: терять здесь нечего,
// отчёты в худшем случае обновятся по TTL.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleOrderEvent(m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle order event", slog.Any("error", err))
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderEvent(m kafka.Message) error {
	var event OrderEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid order event: %w", err)
	}

	h.invalidator.Purge()
	invalidationsTotal.Inc()
	h.logger.Debug("dashboard cache invalidated",
		slog.Int64("order_id", event.OrderID),
		slog.String("event", event.Event),
	)
	return nil
}

func (h *kafkaHandler) Close() error {
	return h.reader.Close()
}
