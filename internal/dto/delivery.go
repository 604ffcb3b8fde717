package dto

import (
	"time"

	"courier-ledger/internal/entities"
)

type OrderSummary struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	RestaurantID string `json:"restaurant_id"`
	TotalAmount  string `json:"total_amount"`
	Status       string `json:"status"`
}

type Delivery struct {
	ID               int64      `json:"id"`
	OrderID          string     `json:"order_id"`
	Status           string     `json:"status"`
	PickupAddress    string     `json:"pickup_address"`
	DeliveryAddress  string     `json:"delivery_address"`
	CourierID        *int64     `json:"courier_id"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type DeliveryView struct {
	Delivery
	Order OrderSummary `json:"order"`
}

type DeliveryStatusUpdateRequest struct {
	Status string `json:"status"`
}

func FromDelivery(d entities.Delivery) Delivery {
	return Delivery{
		ID:               d.ID,
		OrderID:          d.OrderID,
		Status:           d.Status.String(),
		PickupAddress:    d.PickupAddress,
		DeliveryAddress:  d.DeliveryAddress,
		CourierID:        d.CourierID,
		EstimatedMinutes: d.EstimatedMinutes,
		AcceptedAt:       d.AcceptedAt,
		CompletedAt:      d.CompletedAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func FromDeliveryView(v entities.DeliveryView) DeliveryView {
	return DeliveryView{
		Delivery: FromDelivery(v.Delivery),
		Order: OrderSummary{
			ID:           v.Order.ID,
			ClientID:     v.Order.ClientID,
			RestaurantID: v.Order.RestaurantID,
			TotalAmount:  v.Order.TotalAmount.StringFixed(2),
			Status:       v.Order.Status.String(),
		},
	}
}

func FromDeliveryViews(views []entities.DeliveryView) []DeliveryView {
	result := make([]DeliveryView, 0, len(views))
	for _, v := range views {
		result = append(result, FromDeliveryView(v))
	}
	return result
}
