package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryDB struct {
	ID               int64
	OrderID          string
	Status           string
	PickupAddress    string
	DeliveryAddress  string
	CourierID        *int64
	EstimatedMinutes int
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderSummaryDB struct {
	ID           string
	ClientID     string
	RestaurantID string
	TotalAmount  decimal.Decimal
	Status       string
}

type DeliveryViewDB struct {
	DeliveryDB
	Order OrderSummaryDB
}

type DeliveredJobDB struct {
	DeliveryID  int64
	OrderID     string
	OrderTotal  decimal.Decimal
	CompletedAt time.Time
}
