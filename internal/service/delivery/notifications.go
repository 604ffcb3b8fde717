package delivery

import (
	"fmt"
	"strconv"

	"courier-ledger/internal/entities"
)

var clientMessages = map[entities.DeliveryStatus]struct{ title, body string }{
	entities.DeliveryAccepted:  {"Courier assigned", "A courier accepted your order %s"},
	entities.DeliveryPickedUp:  {"Order picked up", "The courier picked up your order %s"},
	entities.DeliveryOnRoute:   {"Courier on the way", "Your order %s is on the way"},
	entities.DeliveryDelivered: {"Order delivered", "Your order %s has been delivered"},
}

// transitionEvents собирает события outbox для смены статуса: трансляцию статуса
// и уведомления клиенту (и ресторану при доставке).
func transitionEvents(t entities.DeliveryTransition) ([]entities.OutboxEvent, error) {
	statusEvent, err := entities.NewStatusChangedOutbox(t)
	if err != nil {
		return nil, err
	}
	events := []entities.OutboxEvent{statusEvent}

	data := map[string]string{
		"delivery_id": strconv.FormatInt(t.Delivery.ID, 10),
		"order_id":    t.Delivery.OrderID,
		"status":      t.Delivery.Status.String(),
	}

	if msg, ok := clientMessages[t.Delivery.Status]; ok && t.ClientID != "" {
		event, err := entities.NewNotificationOutbox(entities.Notification{
			Audience:    entities.AudienceClient,
			RecipientID: t.ClientID,
			Title:       msg.title,
			Body:        fmt.Sprintf(msg.body, t.Delivery.OrderID),
			Data:        data,
		})
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if t.Delivery.Status == entities.DeliveryDelivered && t.RestaurantID != "" {
		event, err := entities.NewNotificationOutbox(entities.Notification{
			Audience:    entities.AudienceRestaurant,
			RecipientID: t.RestaurantID,
			Title:       "Order delivered",
			Body:        fmt.Sprintf("Order %s has been delivered to the client", t.Delivery.OrderID),
			Data:        data,
		})
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
