package order

import "courier-ledger/internal/entities"

func ToSummaryDomain(o *OrderSummaryDB) *entities.OrderSummary {
	if o == nil {
		return nil
	}
	return &entities.OrderSummary{
		ID:           o.ID,
		ClientID:     o.ClientID,
		RestaurantID: o.RestaurantID,
		TotalAmount:  o.TotalAmount,
		Status:       entities.OrderStatusType(o.Status),
	}
}
