package rules

import (
	"context"
	"fmt"

	"courier-ledger/internal/entities"
	"courier-ledger/internal/repository"
	"courier-ledger/internal/service/rules"
)

const ruleColumns = `id, key, value, updated_by, created_at`

// Repository хранит историю настроек. Строки только добавляются, текущее значение - последняя запись по ключу.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Latest(ctx context.Context) ([]entities.RuleRecord, error) {
	query := `
		SELECT DISTINCT ON (key) ` + ruleColumns + `
		FROM courier_rules
		ORDER BY key, id DESC`
	return r.list(ctx, "latest", query)
}

func (r *Repository) Append(ctx context.Context, record entities.RuleRecord) (*entities.RuleRecord, error) {
	query := `
		INSERT INTO courier_rules (key, value, updated_by)
		VALUES ($1, $2, $3)
		RETURNING ` + ruleColumns

	var row RuleRecordDB
	err := r.querier.QueryRow(ctx, query, record.Key.String(), record.Value, record.UpdatedBy).
		Scan(&row.ID, &row.Key, &row.Value, &row.UpdatedBy, &row.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, rules.ErrInvalidRuleValue
		}
		return nil, fmt.Errorf("unexpected rules repository append error: %w", err)
	}

	return ToDomain(&row), nil
}

// History - все значения ключа, новые первыми.
func (r *Repository) History(ctx context.Context, key entities.RuleKey) ([]entities.RuleRecord, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM courier_rules
		WHERE key = $1
		ORDER BY id DESC`
	return r.list(ctx, "history", query, key.String())
}

func (r *Repository) list(ctx context.Context, op string, query string, args ...any) ([]entities.RuleRecord, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rules repository %s error: %w", op, err)
	}
	defer rows.Close()

	records := make([]RuleRecordDB, 0, len(entities.RuleKeys))
	for rows.Next() {
		var row RuleRecordDB
		if err := rows.Scan(&row.ID, &row.Key, &row.Value, &row.UpdatedBy, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected rules repository %s error: %w", op, err)
		}
		records = append(records, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rules repository %s error: %w", op, err)
	}

	return ToDomainList(records), nil
}
