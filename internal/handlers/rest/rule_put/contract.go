//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rule_put_test
package rule_put

import (
	"context"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"

	"github.com/shopspring/decimal"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetRule(ctx context.Context, key entities.RuleKey, value decimal.Decimal, adminID string) (*entities.RuleRecord, error)
}
