package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	// OnRetry вызывается перед каждой повторной попыткой, удобно для метрик и логов.
	OnRetry func(err error, wait time.Duration)
}

// ConnectConfig - стандартная политика для подключения к инфраструктуре на старте (postgres, kafka, grpc).
func ConnectConfig() Config {
	return Config{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		Randomization:   0.5,
		Multiplier:      2.0,
	}
}
