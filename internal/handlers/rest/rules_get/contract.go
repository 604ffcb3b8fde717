//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rules_get_test
package rules_get

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
	GetCurrentRules(ctx context.Context) (entities.CourierRules, error)
}
