package rules

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleRecordDB struct {
	ID        int64
	Key       string
	Value     decimal.Decimal
	UpdatedBy string
	CreatedAt time.Time
}
