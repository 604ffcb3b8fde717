//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawal_test
package withdrawal

import (
	"context"
	"time"

	"courier-ledger/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, request entities.WithdrawalRequest) (*entities.WithdrawalRequest, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.WithdrawalRequest, error)
	UpdateReview(ctx context.Context, from entities.WithdrawalStatus, review entities.WithdrawalReview, reviewedAt time.Time) (*entities.WithdrawalRequest, error)
	List(ctx context.Context, filter entities.WithdrawalFilter) ([]entities.WithdrawalRequest, error)
}

type BalanceProvider interface {
	AvailableBalance(ctx context.Context, courierID int64, rules entities.CourierRules) (decimal.Decimal, error)
}

type RulesProvider interface {
	GetCurrentRules(ctx context.Context) (entities.CourierRules, error)
}

type CourierProvider interface {
	GetApprovedCourier(ctx context.Context, userID string) (*entities.Courier, error)
	GetCourierByUserID(ctx context.Context, userID string) (*entities.Courier, error)
	GetCourierByID(ctx context.Context, id int64) (*entities.Courier, error)
	LockCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, events []entities.OutboxEvent) error
}

type AuditLog interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
