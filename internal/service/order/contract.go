//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"courier-ledger/internal/entities"
)

type DeliveryService interface {
	CreateForOrder(ctx context.Context, placement entities.OrderPlacement) (*entities.Delivery, bool, error)
}
