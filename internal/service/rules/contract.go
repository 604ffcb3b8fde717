//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rules_test
package rules

import (
	"context"

	"courier-ledger/internal/entities"
)

type Repository interface {
	Latest(ctx context.Context) ([]entities.RuleRecord, error)
	Append(ctx context.Context, record entities.RuleRecord) (*entities.RuleRecord, error)
	History(ctx context.Context, key entities.RuleKey) ([]entities.RuleRecord, error)
}

type AuditLog interface {
	Record(ctx context.Context, entry entities.AuditEntry) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
