package entities

import "time"

type DeliveryStatus string

const (
	DeliveryWaiting   DeliveryStatus = "WAITING"
	DeliveryAccepted  DeliveryStatus = "ACCEPTED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryOnRoute   DeliveryStatus = "ON_ROUTE"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

// линейная цепочка статусов, назад переходов нет
var deliveryProgression = []DeliveryStatus{
	DeliveryWaiting,
	DeliveryAccepted,
	DeliveryPickedUp,
	DeliveryOnRoute,
	DeliveryDelivered,
}

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	return s.index() >= 0
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered
}

// Next возвращает непосредственного преемника статуса. false для терминального и неизвестного.
func (s DeliveryStatus) Next() (DeliveryStatus, bool) {
	i := s.index()
	if i < 0 || i == len(deliveryProgression)-1 {
		return "", false
	}
	return deliveryProgression[i+1], true
}

// CanAdvanceTo разрешает только шаг ровно на одну позицию вперед.
func (s DeliveryStatus) CanAdvanceTo(next DeliveryStatus) bool {
	expected, ok := s.Next()
	return ok && expected == next
}

func (s DeliveryStatus) index() int {
	for i, st := range deliveryProgression {
		if st == s {
			return i
		}
	}
	return -1
}

type Delivery struct {
	ID               int64
	OrderID          string
	Status           DeliveryStatus
	PickupAddress    string
	DeliveryAddress  string
	CourierID        *int64
	EstimatedMinutes int
	AcceptedAt       *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (d Delivery) IsAvailable() bool {
	return d.Status == DeliveryWaiting && d.CourierID == nil
}

func (d Delivery) IsAssignedTo(courierID int64) bool {
	return d.CourierID != nil && *d.CourierID == courierID
}

// DeliveryView - доставка вместе с кратким описанием заказа, так ее видит курьер.
type DeliveryView struct {
	Delivery
	Order OrderSummary
}

// DeliveryTransition фиксирует смену статуса для побочных эффектов (уведомления, трансляция).
type DeliveryTransition struct {
	Delivery Delivery
	Previous DeliveryStatus
	ClientID string
	// RestaurantID заполняется только когда он нужен получателям уведомлений.
	RestaurantID string
	OccurredAt   time.Time
}
