package courier

import (
	"context"
	"errors"
	"fmt"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/service/courier"

	"github.com/jackc/pgx/v5"
)

const selectCourier = `SELECT id, user_id, name, phone, approved, available, created_at, updated_at
	FROM couriers`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getOne(ctx, "getbyid", selectCourier+` WHERE id = $1`, id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.Courier, error) {
	return r.getOne(ctx, "getbyuserid", selectCourier+` WHERE user_id = $1`, userID)
}

// LockByID берет строку курьера FOR UPDATE до конца текущей транзакции.
func (r *Repository) LockByID(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getOne(ctx, "lockbyid", selectCourier+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) getOne(ctx context.Context, op string, query string, args ...any) (*entities.Courier, error) {
	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.UserID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Approved,
			&courierModel.Available,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository %s error: %w", op, err)
	}

	return ToDomain(&courierModel), nil
}
