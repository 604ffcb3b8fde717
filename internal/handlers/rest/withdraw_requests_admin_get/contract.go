//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdraw_requests_admin_get_test
package withdraw_requests_admin_get

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
	ListWithdrawals(
		ctx context.Context,
		actor entities.Actor,
		filter entities.WithdrawalFilter,
	) ([]entities.WithdrawalRequest, error)
}
