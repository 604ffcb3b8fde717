package order

import (
	"context"
	"fmt"

	"courier-ledger/internal/entities"
)

// Service принимает события о новых заказах от внешнего модуля заказов.
type Service struct {
	deliveryService DeliveryService
}

func New(deliveryService DeliveryService) *Service {
	return &Service{
		deliveryService: deliveryService,
	}
}

// ProcessOrderPlaced превращает размещенный заказ в ожидающую доставку.
// Повторная доставка одного и того же события безопасна.
func (s *Service) ProcessOrderPlaced(
	ctx context.Context,
	placement entities.OrderPlacement,
) (delivery *entities.Delivery, created bool, err error) {
	if !hasRequiredFields(placement) {
		return nil, false, ErrMissingRequiredFields
	}
	if placement.TotalAmount.IsNegative() {
		return nil, false, ErrInvalidTotalAmount
	}
	if placement.EstimatedMinutes < 0 {
		return nil, false, ErrInvalidEstimate
	}

	delivery, created, err = s.deliveryService.CreateForOrder(ctx, placement)
	if err != nil {
		return nil, false, fmt.Errorf("create delivery for order %s: %w", placement.OrderID, err)
	}
	return delivery, created, nil
}
