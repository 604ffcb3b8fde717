//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=earnings_test
package earnings

import (
	"context"

	"courier-ledger/internal/entities"
)

type Repository interface {
	DeliveredJobs(ctx context.Context, courierID int64) ([]entities.DeliveredJob, error)
	JobStats(ctx context.Context, courierID int64) (entities.CourierJobStats, error)
}

type WithdrawalRepository interface {
	Totals(ctx context.Context, courierID int64) (entities.WithdrawalTotals, error)
}

type RulesProvider interface {
	GetCurrentRules(ctx context.Context) (entities.CourierRules, error)
}

type CourierProvider interface {
	GetCourierByUserID(ctx context.Context, userID string) (*entities.Courier, error)
}
