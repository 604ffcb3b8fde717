package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleKey string

const (
	RuleBaseFee                RuleKey = "base_fee"
	RuleVariableRate           RuleKey = "variable_rate"
	RulePlatformCommissionRate RuleKey = "platform_commission_rate"
	RuleMinWithdrawalAmount    RuleKey = "min_withdrawal_amount"
)

var RuleKeys = []RuleKey{
	RuleBaseFee,
	RuleVariableRate,
	RulePlatformCommissionRate,
	RuleMinWithdrawalAmount,
}

func (k RuleKey) String() string {
	return string(k)
}

func (k RuleKey) IsValid() bool {
	for _, known := range RuleKeys {
		if k == known {
			return true
		}
	}
	return false
}

// IsRate - доли, допустимы значения в [0, 1]. Остальные ключи - денежные суммы.
func (k RuleKey) IsRate() bool {
	return k == RuleVariableRate || k == RulePlatformCommissionRate
}

type CourierRules struct {
	BaseFee                decimal.Decimal
	VariableRate           decimal.Decimal
	PlatformCommissionRate decimal.Decimal
	MinWithdrawalAmount    decimal.Decimal
}

func DefaultCourierRules() CourierRules {
	return CourierRules{
		BaseFee:                decimal.RequireFromString("1.50"),
		VariableRate:           decimal.RequireFromString("0.12"),
		PlatformCommissionRate: decimal.RequireFromString("0.02"),
		MinWithdrawalAmount:    decimal.RequireFromString("10.00"),
	}
}

func (r CourierRules) Get(key RuleKey) (decimal.Decimal, bool) {
	switch key {
	case RuleBaseFee:
		return r.BaseFee, true
	case RuleVariableRate:
		return r.VariableRate, true
	case RulePlatformCommissionRate:
		return r.PlatformCommissionRate, true
	case RuleMinWithdrawalAmount:
		return r.MinWithdrawalAmount, true
	default:
		return decimal.Zero, false
	}
}

// With возвращает копию правил с замененным значением. Неизвестный ключ игнорируется.
func (r CourierRules) With(key RuleKey, value decimal.Decimal) CourierRules {
	switch key {
	case RuleBaseFee:
		r.BaseFee = value
	case RuleVariableRate:
		r.VariableRate = value
	case RulePlatformCommissionRate:
		r.PlatformCommissionRate = value
	case RuleMinWithdrawalAmount:
		r.MinWithdrawalAmount = value
	}
	return r
}

// RuleRecord - одна запись истории конфигурации. Таблица только дописывается.
type RuleRecord struct {
	ID        int64
	Key       RuleKey
	Value     decimal.Decimal
	UpdatedBy string
	CreatedAt time.Time
}
