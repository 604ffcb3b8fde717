//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"courier-ledger/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetByUserID(ctx context.Context, userID string) (*entities.Courier, error)
	LockByID(ctx context.Context, id int64) (*entities.Courier, error)
}
