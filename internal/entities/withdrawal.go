package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "PENDING"
	WithdrawalApproved WithdrawalStatus = "APPROVED"
	WithdrawalRejected WithdrawalStatus = "REJECTED"
	WithdrawalPaid     WithdrawalStatus = "PAID"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:  {WithdrawalApproved, WithdrawalRejected, WithdrawalPaid},
	WithdrawalApproved: {WithdrawalPaid, WithdrawalRejected},
}

func (s WithdrawalStatus) String() string {
	return string(s)
}

func (s WithdrawalStatus) IsValid() bool {
	switch s {
	case WithdrawalPending, WithdrawalApproved, WithdrawalRejected, WithdrawalPaid:
		return true
	default:
		return false
	}
}

func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalRejected || s == WithdrawalPaid
}

func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type WithdrawalMethod string

const (
	WithdrawalBankTransfer WithdrawalMethod = "BANK_TRANSFER"
	WithdrawalMobileMoney  WithdrawalMethod = "MOBILE_MONEY"
)

func (m WithdrawalMethod) String() string {
	return string(m)
}

func (m WithdrawalMethod) IsValid() bool {
	return m == WithdrawalBankTransfer || m == WithdrawalMobileMoney
}

type WithdrawalRequest struct {
	ID         uuid.UUID
	CourierID  int64
	Amount     decimal.Decimal
	Method     WithdrawalMethod
	AccountRef string
	Status     WithdrawalStatus
	Notes      string
	CreatedAt  time.Time
	ReviewedAt *time.Time
	ReviewedBy *string
}

type WithdrawalDraft struct {
	Amount     decimal.Decimal
	Method     WithdrawalMethod
	AccountRef string
}

type WithdrawalReview struct {
	RequestID  uuid.UUID
	Status     WithdrawalStatus
	Notes      *string
	ReviewerID string
}

type WithdrawalFilter struct {
	CourierID *int64
	Status    *WithdrawalStatus
	Limit     uint64
	Offset    uint64
}

// WithdrawalTotals - суммы по заявкам курьера в статусах PENDING и PAID.
type WithdrawalTotals struct {
	Pending decimal.Decimal
	Paid    decimal.Decimal
}

// AvailableBalance = max(0, net - pending - paid).
func AvailableBalance(totalNet decimal.Decimal, totals WithdrawalTotals) decimal.Decimal {
	available := totalNet.Sub(totals.Pending).Sub(totals.Paid)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}
