//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_accept_put_test
package delivery_accept_put

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
	Accept(ctx context.Context, id int64, userID string) (*entities.Delivery, error)
}
