package order

import (
	"context"
	"errors"
	"fmt"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/service/delivery"

	"github.com/jackc/pgx/v5"
)

// Repository ведет локальную копию заказов: сумму для расчета заработка и получателей уведомлений.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create не трогает уже существующий заказ.
func (r *Repository) Create(ctx context.Context, order entities.Order) error {
	query := `
		INSERT INTO orders (id, client_id, restaurant_id, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.querier.Exec(
		ctx,
		query,
		order.ID,
		order.ClientID,
		order.RestaurantID,
		order.TotalAmount,
		order.Status.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetSummary(ctx context.Context, orderID string) (*entities.OrderSummary, error) {
	query := `SELECT id, client_id, restaurant_id, total_amount, status
		FROM orders
		WHERE id = $1`

	var summary OrderSummaryDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&summary.ID,
			&summary.ClientID,
			&summary.RestaurantID,
			&summary.TotalAmount,
			&summary.Status,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getsummary error: %w", err)
	}

	return ToSummaryDomain(&summary), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrOrderNotFound
	}
	return nil
}
