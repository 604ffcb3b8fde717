package delivery

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidDeliveryID(id int64) bool {
	return id > 0
}
