package dto

import (
	"time"

	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

// WithdrawalCreateRequest: amount принимается и числом, и строкой ("25.50").
type WithdrawalCreateRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	AccountRef string          `json:"accountRef"`
}

type WithdrawalReviewRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

type WithdrawalRequest struct {
	ID         string     `json:"id"`
	CourierID  int64      `json:"courier_id"`
	Amount     string     `json:"amount"`
	Method     string     `json:"method"`
	AccountRef string     `json:"account_ref"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
}

func (r WithdrawalCreateRequest) ToDraft() entities.WithdrawalDraft {
	return entities.WithdrawalDraft{
		Amount:     r.Amount,
		Method:     entities.WithdrawalMethod(r.Method),
		AccountRef: r.AccountRef,
	}
}

func FromWithdrawal(w entities.WithdrawalRequest) WithdrawalRequest {
	return WithdrawalRequest{
		ID:         w.ID.String(),
		CourierID:  w.CourierID,
		Amount:     w.Amount.StringFixed(2),
		Method:     w.Method.String(),
		AccountRef: w.AccountRef,
		Status:     w.Status.String(),
		Notes:      w.Notes,
		CreatedAt:  w.CreatedAt,
		ReviewedAt: w.ReviewedAt,
		ReviewedBy: w.ReviewedBy,
	}
}

func FromWithdrawals(requests []entities.WithdrawalRequest) []WithdrawalRequest {
	result := make([]WithdrawalRequest, 0, len(requests))
	for _, w := range requests {
		result = append(result, FromWithdrawal(w))
	}
	return result
}
