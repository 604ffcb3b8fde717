package order

import (
	"github.com/shopspring/decimal"
)

type OrderSummaryDB struct {
	ID           string
	ClientID     string
	RestaurantID string
	TotalAmount  decimal.Decimal
	Status       string
}
