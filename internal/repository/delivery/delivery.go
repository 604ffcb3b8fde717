package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/repository"
	"courier-ledger/internal/service/delivery"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, order_id, status, pickup_address, delivery_address, courier_id,
	estimated_minutes, accepted_at, completed_at, created_at, updated_at`

var viewColumns = []string{
	"d.id", "d.order_id", "d.status", "d.pickup_address", "d.delivery_address", "d.courier_id",
	"d.estimated_minutes", "d.accepted_at", "d.completed_at", "d.created_at", "d.updated_at",
	"o.id", "o.client_id", "o.restaurant_id", "o.total_amount", "o.status",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, d entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, status, pickup_address, delivery_address, estimated_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + deliveryColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		d.OrderID,
		d.Status.String(),
		d.PickupAddress,
		d.DeliveryAddress,
		d.EstimatedMinutes,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrDeliveryExists
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`
	return r.getOne(ctx, "getbyid", query, id)
}

// GetByIDForUpdate блокирует строку доставки до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, "getbyidforupdate", query, id)
}

// GetLatestByOrderID - последняя доставка заказа в любом статусе.
func (r *Repository) GetLatestByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1
		ORDER BY id DESC
		LIMIT 1`
	return r.getOne(ctx, "getlatestbyorderid", query, orderID)
}

func (r *Repository) GetView(ctx context.Context, id int64) (*entities.DeliveryView, error) {
	query, args, err := viewQuery().Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getview error: %w", err)
	}

	view, err := scanView(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getview error: %w", err)
	}
	return ToViewDomain(view), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.DeliveryView, error) {
	builder := viewQuery().
		Where(sq.Eq{"d.status": entities.DeliveryWaiting.String()}).
		Where(sq.Eq{"d.courier_id": nil}).
		OrderBy("d.created_at", "d.id")
	return r.listViews(ctx, "listavailable", builder)
}

func (r *Repository) ListByCourier(ctx context.Context, courierID int64) ([]entities.DeliveryView, error) {
	builder := viewQuery().
		Where(sq.Eq{"d.courier_id": courierID}).
		OrderBy("d.created_at DESC", "d.id DESC")
	return r.listViews(ctx, "listbycourier", builder)
}

// Accept - единственная условная запись: доставку получает только тот, чей UPDATE увидел ее свободной.
func (r *Repository) Accept(
	ctx context.Context,
	id int64,
	courierID int64,
	acceptedAt time.Time,
) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = $2, courier_id = $3, accepted_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'WAITING' AND courier_id IS NULL
		RETURNING ` + deliveryColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		id,
		entities.DeliveryAccepted.String(),
		courierID,
		acceptedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotAvailable
		}
		return nil, fmt.Errorf("unexpected delivery repository accept error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// AdvanceStatus меняет статус только если в базе все еще from.
func (r *Repository) AdvanceStatus(
	ctx context.Context,
	id int64,
	from entities.DeliveryStatus,
	to entities.DeliveryStatus,
	at time.Time,
) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries").
		Set("status", to.String()).
		Set("updated_at", at)

	if to.IsTerminal() {
		builder = builder.Set("completed_at", at)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "status": from.String()}).
		Suffix("RETURNING " + deliveryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository advancestatus error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected delivery repository advancestatus error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// DeliveredJobs - все доставленные заказы курьера с суммой заказа для пересчета заработка.
func (r *Repository) DeliveredJobs(ctx context.Context, courierID int64) ([]entities.DeliveredJob, error) {
	query := `
		SELECT d.id, d.order_id, o.total_amount, d.completed_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.courier_id = $1 AND d.status = 'DELIVERED'
		ORDER BY d.completed_at, d.id`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository deliveredjobs error: %w", err)
	}
	defer rows.Close()

	jobs := make([]DeliveredJobDB, 0, 16)
	for rows.Next() {
		var job DeliveredJobDB
		if err := rows.Scan(&job.DeliveryID, &job.OrderID, &job.OrderTotal, &job.CompletedAt); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository deliveredjobs error: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository deliveredjobs error: %w", err)
	}

	return ToDeliveredJobDomainList(jobs), nil
}

func (r *Repository) JobStats(ctx context.Context, courierID int64) (entities.CourierJobStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'WAITING'),
		       COUNT(*) FILTER (WHERE status = 'DELIVERED'),
		       COALESCE(AVG(estimated_minutes), 0)::float8
		FROM deliveries
		WHERE courier_id = $1`

	var stats entities.CourierJobStats
	err := r.querier.QueryRow(ctx, query, courierID).
		Scan(&stats.Total, &stats.Waiting, &stats.Delivered, &stats.AvgEstimatedMinutes)
	if err != nil {
		return entities.CourierJobStats{}, fmt.Errorf("unexpected delivery repository jobstats error: %w", err)
	}
	return stats, nil
}

func (r *Repository) getOne(ctx context.Context, op string, query string, args ...any) (*entities.Delivery, error) {
	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}
	return ToDomain(deliveryDB), nil
}

func (r *Repository) listViews(ctx context.Context, op string, builder sq.SelectBuilder) ([]entities.DeliveryView, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}
	defer rows.Close()

	views := make([]DeliveryViewDB, 0, 8)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
		}
		views = append(views, *view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository %s error: %w", op, err)
	}

	return ToViewDomainList(views), nil
}

func viewQuery() sq.SelectBuilder {
	return qb.
		Select(viewColumns...).
		From("deliveries d").
		Join("orders o ON o.id = d.order_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row rowScanner) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.OrderID,
		&d.Status,
		&d.PickupAddress,
		&d.DeliveryAddress,
		&d.CourierID,
		&d.EstimatedMinutes,
		&d.AcceptedAt,
		&d.CompletedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanView(row rowScanner) (*DeliveryViewDB, error) {
	var v DeliveryViewDB
	err := row.Scan(
		&v.ID,
		&v.OrderID,
		&v.Status,
		&v.PickupAddress,
		&v.DeliveryAddress,
		&v.CourierID,
		&v.EstimatedMinutes,
		&v.AcceptedAt,
		&v.CompletedAt,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.Order.ID,
		&v.Order.ClientID,
		&v.Order.RestaurantID,
		&v.Order.TotalAmount,
		&v.Order.Status,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
