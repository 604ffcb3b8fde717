//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdraw_request_review_put_test
package withdraw_request_review_put

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
	ReviewWithdrawal(
		ctx context.Context,
		actor entities.Actor,
		review entities.WithdrawalReview,
	) (*entities.WithdrawalRequest, error)
}
