package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"
)

type Delivery struct {
	repository Repository
	orders     OrderRepository
	outbox     OutboxRepository
	couriers   CourierProvider
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	orders OrderRepository,
	outbox OutboxRepository,
	couriers CourierProvider,
	txManager TxManager,
	log serviceLogger,
) *Delivery {
	return &Delivery{
		repository: repository,
		orders:     orders,
		outbox:     outbox,
		couriers:   couriers,
		txManager:  txManager,
		log:        log,
	}
}

func (d *Delivery) ListAvailable(ctx context.Context) ([]entities.DeliveryView, error) {
	views, err := d.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available deliveries: %w", err)
	}
	return views, nil
}

// ListMine - все доставки курьера пользователя, новые первыми.
func (d *Delivery) ListMine(ctx context.Context, userID string) ([]entities.DeliveryView, error) {
	courier, err := d.couriers.GetCourierByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}

	views, err := d.repository.ListByCourier(ctx, courier.ID)
	if err != nil {
		return nil, fmt.Errorf("list courier deliveries: %w", err)
	}
	return views, nil
}

// Get отдает доставку администратору всегда, курьеру - только свою или еще свободную.
func (d *Delivery) Get(ctx context.Context, id int64, actor entities.Actor) (*entities.DeliveryView, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	view, err := d.repository.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if actor.IsAdmin() || view.IsAvailable() {
		return view, nil
	}

	courier, err := d.couriers.GetCourierByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}
	if !view.IsAssignedTo(courier.ID) {
		return nil, ErrForbidden
	}
	return view, nil
}

// Accept назначает свободную доставку курьеру одной условной записью.
// Из нескольких одновременных попыток выигрывает ровно одна, остальные получают ErrDeliveryNotAvailable.
func (d *Delivery) Accept(ctx context.Context, id int64, userID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	courier, err := d.couriers.GetApprovedCourier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}

	var accepted *entities.Delivery
	err = d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()

		accepted, err = d.repository.Accept(ctx, id, courier.ID, now)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotAvailable) {
				return d.explainNotAccepted(ctx, id)
			}
			return fmt.Errorf("accept delivery: %w", err)
		}

		return d.enqueueTransition(ctx, *accepted, entities.DeliveryWaiting, now)
	})
	if err != nil {
		return nil, err
	}

	d.mirrorOrderStatus(ctx, accepted.OrderID, accepted.Status)
	return accepted, nil
}

// UpdateStatus продвигает доставку ровно на один шаг вперед.
// Повтор текущего статуса, прыжок через шаг и откат назад дают ErrInvalidTransition.
func (d *Delivery) UpdateStatus(
	ctx context.Context,
	id int64,
	userID string,
	newStatus entities.DeliveryStatus,
) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	courier, err := d.couriers.GetApprovedCourier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}

	var updated *entities.Delivery
	err = d.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery for update: %w", err)
		}

		if !current.IsAssignedTo(courier.ID) {
			return ErrNotAssignedCourier
		}
		if !current.Status.CanAdvanceTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		now := time.Now().UTC()
		updated, err = d.repository.AdvanceStatus(ctx, id, current.Status, newStatus, now)
		if err != nil {
			return fmt.Errorf("advance delivery status: %w", err)
		}

		return d.enqueueTransition(ctx, *updated, current.Status, now)
	})
	if err != nil {
		return nil, err
	}

	d.mirrorOrderStatus(ctx, updated.OrderID, updated.Status)
	return updated, nil
}

// CreateForOrder заводит строку заказа и WAITING доставку. Повторное событие
// для того же заказа ничего не меняет и возвращает уже существующую доставку (created = false).
func (d *Delivery) CreateForOrder(
	ctx context.Context,
	placement entities.OrderPlacement,
) (delivery *entities.Delivery, created bool, err error) {
	if !isValidOrderID(placement.OrderID) {
		return nil, false, ErrInvalidOrderID
	}

	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := d.repository.GetLatestByOrderID(ctx, placement.OrderID)
		switch {
		case err == nil:
			delivery = existing
			return nil
		case !errors.Is(err, ErrDeliveryNotFound):
			return fmt.Errorf("get delivery by order: %w", err)
		}

		if err := d.orders.Create(ctx, placement.Order()); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		delivery, err = d.repository.Create(ctx, placement.Delivery())
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return delivery, created, nil
}

// explainNotAccepted различает несуществующую доставку и уже занятую.
func (d *Delivery) explainNotAccepted(ctx context.Context, id int64) error {
	_, err := d.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			return ErrDeliveryNotFound
		}
		return fmt.Errorf("get delivery: %w", err)
	}
	return ErrDeliveryNotAvailable
}

func (d *Delivery) enqueueTransition(
	ctx context.Context,
	delivery entities.Delivery,
	previous entities.DeliveryStatus,
	at time.Time,
) error {
	transition := entities.DeliveryTransition{
		Delivery:   delivery,
		Previous:   previous,
		OccurredAt: at,
	}

	summary, err := d.orders.GetSummary(ctx, delivery.OrderID)
	switch {
	case err == nil:
		transition.ClientID = summary.ClientID
		transition.RestaurantID = summary.RestaurantID
	case errors.Is(err, ErrOrderNotFound):
		d.log.Warn("order summary missing, notifications skipped",
			logger.NewField("order_id", delivery.OrderID),
			logger.NewField("delivery_id", delivery.ID),
		)
	default:
		return fmt.Errorf("get order summary: %w", err)
	}

	events, err := transitionEvents(transition)
	if err != nil {
		return fmt.Errorf("build outbox events: %w", err)
	}

	if err := d.outbox.Enqueue(ctx, events); err != nil {
		return fmt.Errorf("enqueue outbox events: %w", err)
	}
	return nil
}

// mirrorOrderStatus выполняется после коммита. Ошибка только логируется: переход уже состоялся.
func (d *Delivery) mirrorOrderStatus(ctx context.Context, orderID string, status entities.DeliveryStatus) {
	orderStatus, ok := entities.OrderStatusFor(status)
	if !ok {
		return
	}

	if err := d.orders.UpdateStatus(ctx, orderID, orderStatus); err != nil {
		d.log.Warn("failed to mirror order status",
			logger.NewField("order_id", orderID),
			logger.NewField("status", orderStatus.String()),
			logger.NewField("error", err),
		)
	}
}
