package order_placed

import (
	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

// placedEvent - сообщение топика order.placed от модуля заказов.
type placedEvent struct {
	OrderID          string          `json:"order_id"`
	ClientID         string          `json:"client_id"`
	RestaurantID     string          `json:"restaurant_id"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PickupAddress    string          `json:"pickup_address"`
	DeliveryAddress  string          `json:"delivery_address"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}

func (e placedEvent) toPlacement() entities.OrderPlacement {
	return entities.OrderPlacement{
		OrderID:          e.OrderID,
		ClientID:         e.ClientID,
		RestaurantID:     e.RestaurantID,
		TotalAmount:      e.TotalAmount,
		PickupAddress:    e.PickupAddress,
		DeliveryAddress:  e.DeliveryAddress,
		EstimatedMinutes: e.EstimatedMinutes,
	}
}
