//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdraw_request_post_test
package withdraw_request_post

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
	RequestWithdrawal(ctx context.Context, userID string, draft entities.WithdrawalDraft) (*entities.WithdrawalRequest, error)
}
