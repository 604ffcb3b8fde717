package dto

import (
	"time"

	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

type CourierRules struct {
	BaseFee                string `json:"base_fee"`
	VariableRate           string `json:"variable_rate"`
	PlatformCommissionRate string `json:"platform_commission_rate"`
	MinWithdrawalAmount    string `json:"min_withdrawal_amount"`
}

type RuleUpdateRequest struct {
	Value decimal.Decimal `json:"value"`
}

type RuleRecord struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCourierRules(r entities.CourierRules) CourierRules {
	return CourierRules{
		BaseFee:                r.BaseFee.String(),
		VariableRate:           r.VariableRate.String(),
		PlatformCommissionRate: r.PlatformCommissionRate.String(),
		MinWithdrawalAmount:    r.MinWithdrawalAmount.String(),
	}
}

func FromRuleRecord(r entities.RuleRecord) RuleRecord {
	return RuleRecord{
		ID:        r.ID,
		Key:       r.Key.String(),
		Value:     r.Value.String(),
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
	}
}

func FromRuleRecords(records []entities.RuleRecord) []RuleRecord {
	result := make([]RuleRecord, 0, len(records))
	for _, r := range records {
		result = append(result, FromRuleRecord(r))
	}
	return result
}
