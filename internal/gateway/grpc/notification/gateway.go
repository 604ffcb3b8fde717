package notification

import (
	"context"
	"fmt"
	"time"

	"courier-ledger/internal/entities"
	retrierconfig "courier-ledger/pkg/retrier"
	"courier-ledger/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	serviceName  = "notification-service"
	notifyMethod = "/notification.v1.NotificationService/Notify"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type NotificationGateway struct {
	client      invoker
	retrier     retrier
	callTimeout time.Duration
}

// New: callTimeout ограничивает одну попытку, весь вызов с ретраями ограничен maxElapsedTime.
func New(client invoker, callTimeout time.Duration) *NotificationGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &NotificationGateway{
		client:      client,
		retrier:     backoff_adapter.New(retryConfig),
		callTimeout: callTimeout,
	}
}

func (g *NotificationGateway) Notify(ctx context.Context, notification entities.Notification) error {
	req, err := toProto(notification)
	if err != nil {
		return fmt.Errorf("gateway notification, notify: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Notify", func(ctx context.Context) error {
		if g.callTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.callTimeout)
			defer cancel()
		}
		return g.client.Invoke(ctx, notifyMethod, req, &emptypb.Empty{})
	})
	if err != nil {
		return fmt.Errorf("gateway notification, notify %s: %w", notification.Audience, err)
	}
	return nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// Порядок: latency metric -> attempts metric -> retrier -> вызов.
func (g *NotificationGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
