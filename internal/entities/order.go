package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatusType string

const (
	OrderPlaced     OrderStatusType = "PLACED"
	OrderInDelivery OrderStatusType = "IN_DELIVERY"
	OrderDelivered  OrderStatusType = "DELIVERED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderStatusFor отображает статус доставки на статус родительского заказа.
// Промежуточные шаги (PICKED_UP, ON_ROUTE) заказ не меняют.
func OrderStatusFor(status DeliveryStatus) (OrderStatusType, bool) {
	switch status {
	case DeliveryAccepted:
		return OrderInDelivery, true
	case DeliveryDelivered:
		return OrderDelivered, true
	default:
		return "", false
	}
}

type Order struct {
	ID           string
	ClientID     string
	RestaurantID string
	TotalAmount  decimal.Decimal
	Status       OrderStatusType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderSummary struct {
	ID           string
	ClientID     string
	RestaurantID string
	TotalAmount  decimal.Decimal
	Status       OrderStatusType
}

// OrderPlacement - событие о новом заказе от внешнего модуля заказов.
type OrderPlacement struct {
	OrderID          string
	ClientID         string
	RestaurantID     string
	TotalAmount      decimal.Decimal
	PickupAddress    string
	DeliveryAddress  string
	EstimatedMinutes int
}

func (p OrderPlacement) Order() Order {
	return Order{
		ID:           p.OrderID,
		ClientID:     p.ClientID,
		RestaurantID: p.RestaurantID,
		TotalAmount:  p.TotalAmount,
		Status:       OrderPlaced,
	}
}

func (p OrderPlacement) Delivery() Delivery {
	return Delivery{
		OrderID:          p.OrderID,
		Status:           DeliveryWaiting,
		PickupAddress:    p.PickupAddress,
		DeliveryAddress:  p.DeliveryAddress,
		EstimatedMinutes: p.EstimatedMinutes,
	}
}
