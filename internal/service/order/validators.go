package order

import (
	"strings"

	"courier-ledger/internal/entities"
)

func hasRequiredFields(p entities.OrderPlacement) bool {
	for _, field := range []string{p.OrderID, p.ClientID, p.RestaurantID, p.PickupAddress, p.DeliveryAddress} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
