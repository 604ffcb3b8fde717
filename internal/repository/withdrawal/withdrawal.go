package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/repository"
	"courier-ledger/internal/service/withdrawal"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var withdrawalColumns = []string{
	"id", "courier_id", "amount", "method", "account_ref", "status",
	"notes", "created_at", "reviewed_at", "reviewed_by",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.WithdrawalRequest) (*entities.WithdrawalRequest, error) {
	id := request.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := qb.
		Insert("withdrawal_requests").
		Columns("id", "courier_id", "amount", "method", "account_ref", "status", "notes").
		Values(
			id,
			request.CourierID,
			request.Amount,
			request.Method.String(),
			request.AccountRef,
			request.Status.String(),
			request.Notes,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository create error: %w", err)
	}

	row, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, withdrawal.ErrInvalidAmount
		}
		return nil, fmt.Errorf("unexpected withdrawal repository create error: %w", err)
	}

	return ToDomain(row), nil
}

// GetByIDForUpdate блокирует заявку до конца транзакции рассмотрения.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.WithdrawalRequest, error) {
	query, args, err := qb.
		Select(withdrawalColumns...).
		From("withdrawal_requests").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository getbyidforupdate error: %w", err)
	}

	row, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, withdrawal.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("unexpected withdrawal repository getbyidforupdate error: %w", err)
	}

	return ToDomain(row), nil
}

// UpdateReview применяет решение, только если заявка все еще в статусе from.
// Заметки без значения оставляют прежний текст.
func (r *Repository) UpdateReview(
	ctx context.Context,
	from entities.WithdrawalStatus,
	review entities.WithdrawalReview,
	reviewedAt time.Time,
) (*entities.WithdrawalRequest, error) {
	builder := qb.
		Update("withdrawal_requests").
		Set("status", review.Status.String()).
		Set("reviewed_at", reviewedAt).
		Set("reviewed_by", review.ReviewerID)

	if review.Notes != nil {
		builder = builder.Set("notes", *review.Notes)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": review.RequestID, "status": from.String()}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository updatereview error: %w", err)
	}

	row, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, withdrawal.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected withdrawal repository updatereview error: %w", err)
	}

	return ToDomain(row), nil
}

func (r *Repository) List(ctx context.Context, filter entities.WithdrawalFilter) ([]entities.WithdrawalRequest, error) {
	builder := qb.
		Select(withdrawalColumns...).
		From("withdrawal_requests")

	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	builder = builder.OrderBy("created_at DESC", "id")

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository list error: %w", err)
	}
	defer rows.Close()

	requests := make([]WithdrawalRequestDB, 0, 16)
	for rows.Next() {
		row, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected withdrawal repository list error: %w", err)
		}
		requests = append(requests, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected withdrawal repository list error: %w", err)
	}

	return ToDomainList(requests), nil
}

// Totals: pending - только PENDING, paid - только PAID. APPROVED и REJECTED не учитываются.
func (r *Repository) Totals(ctx context.Context, courierID int64) (entities.WithdrawalTotals, error) {
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'PENDING'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'PAID'), 0)
		FROM withdrawal_requests
		WHERE courier_id = $1`

	var pending, paid decimal.Decimal
	if err := r.querier.QueryRow(ctx, query, courierID).Scan(&pending, &paid); err != nil {
		return entities.WithdrawalTotals{}, fmt.Errorf("unexpected withdrawal repository totals error: %w", err)
	}

	return entities.WithdrawalTotals{
		Pending: pending,
		Paid:    paid,
	}, nil
}

func returning() string {
	return "RETURNING id, courier_id, amount, method, account_ref, status, notes, created_at, reviewed_at, reviewed_by"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*WithdrawalRequestDB, error) {
	var w WithdrawalRequestDB
	err := row.Scan(
		&w.ID,
		&w.CourierID,
		&w.Amount,
		&w.Method,
		&w.AccountRef,
		&w.Status,
		&w.Notes,
		&w.CreatedAt,
		&w.ReviewedAt,
		&w.ReviewedBy,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
