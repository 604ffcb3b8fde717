//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	GetView(ctx context.Context, id int64) (*entities.DeliveryView, error)
	ListAvailable(ctx context.Context) ([]entities.DeliveryView, error)
	ListByCourier(ctx context.Context, courierID int64) ([]entities.DeliveryView, error)
	Accept(ctx context.Context, id int64, courierID int64, acceptedAt time.Time) (*entities.Delivery, error)
	AdvanceStatus(ctx context.Context, id int64, from entities.DeliveryStatus, to entities.DeliveryStatus, at time.Time) (*entities.Delivery, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order entities.Order) error
	GetSummary(ctx context.Context, orderID string) (*entities.OrderSummary, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, events []entities.OutboxEvent) error
}

type CourierProvider interface {
	GetCourierByUserID(ctx context.Context, userID string) (*entities.Courier, error)
	GetApprovedCourier(ctx context.Context, userID string) (*entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
