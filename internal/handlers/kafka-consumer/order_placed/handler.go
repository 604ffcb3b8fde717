package order_placed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courier-ledger/internal/service/delivery"
	orderservice "courier-ledger/internal/service/order"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/tx"

	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	return &Handler{
		orderService:             orderService,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.placed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.placed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита офсета:
// сообщение будет прочитано заново. Так обрабатываются таймауты, конфликты сериализации и сбои базы.
// Битые и невалидные события коммитятся и пропускаются.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event placedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.Error("order.placed handler received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	created, isNew, err := h.orderService.ProcessOrderPlaced(ctx, event.toPlacement())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded),
			errors.Is(err, tx.ErrSerializationFailure):
			msgLog.Warn("order.placed handler interrupted, message will be reprocessed",
				logger.NewField("error", err))
			return true
		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidTotalAmount),
			errors.Is(err, orderservice.ErrInvalidEstimate),
			errors.Is(err, delivery.ErrInvalidOrderID):
			msgLog.Warn("order.placed handler skipped invalid event", logger.NewField("error", err))
		default:
			// создание доставки идемпотентно, повтор после сбоя базы безопасен
			msgLog.Error("order.placed handler failed to process order, message will be reprocessed",
				logger.NewField("error", err))
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	if isNew {
		msgLog.Info("order.placed: delivery created", logger.NewField("delivery", created.ID))
	} else {
		msgLog.Info("order.placed: duplicate event, delivery already exists", logger.NewField("delivery", created.ID))
	}
	sess.MarkMessage(message, "")
	return false
}
