//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_placed_test
package order_placed

import (
	"context"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessOrderPlaced(ctx context.Context, placement entities.OrderPlacement) (*entities.Delivery, bool, error)
}
