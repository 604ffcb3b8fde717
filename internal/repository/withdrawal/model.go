package withdrawal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalRequestDB struct {
	ID         uuid.UUID
	CourierID  int64
	Amount     decimal.Decimal
	Method     string
	AccountRef string
	Status     string
	Notes      string
	CreatedAt  time.Time
	ReviewedAt *time.Time
	ReviewedBy *string
}
