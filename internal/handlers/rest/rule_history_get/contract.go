//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rule_history_get_test
package rule_history_get

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
	History(ctx context.Context, key entities.RuleKey) ([]entities.RuleRecord, error)
}
