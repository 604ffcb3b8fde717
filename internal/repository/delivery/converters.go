package delivery

import "courier-ledger/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:               d.ID,
		OrderID:          d.OrderID,
		Status:           entities.DeliveryStatus(d.Status),
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

func ToViewDomain(v *DeliveryViewDB) *entities.DeliveryView {
	if v == nil {
		return nil
	}
	return &entities.DeliveryView{
		Delivery: *ToDomain(&v.DeliveryDB),
		Order: entities.OrderSummary{
			ID:           v.Order.ID,
			ClientID:     v.Order.ClientID,
			RestaurantID: v.Order.RestaurantID,
			TotalAmount:  v.Order.TotalAmount,
			Status:       entities.OrderStatusType(v.Order.Status),
		},
	}
}

func ToViewDomainList(views []DeliveryViewDB) []entities.DeliveryView {
	if len(views) == 0 {
		return []entities.DeliveryView{}
	}

	result := make([]entities.DeliveryView, len(views))
	for i := range views {
		result[i] = *ToViewDomain(&views[i])
	}
	return result
}

func ToDeliveredJobDomainList(jobs []DeliveredJobDB) []entities.DeliveredJob {
	result := make([]entities.DeliveredJob, len(jobs))
	for i, job := range jobs {
		result[i] = entities.DeliveredJob{
			DeliveryID:  job.DeliveryID,
			OrderID:     job.OrderID,
			OrderTotal:  job.OrderTotal,
			CompletedAt: job.CompletedAt,
		}
	}
	return result
}
