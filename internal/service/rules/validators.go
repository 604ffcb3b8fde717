package rules

import (
	"strings"

	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

// courier_rules.value NUMERIC(12, 4)
const ruleValueScale = 4

var (
	one          = decimal.NewFromInt(1)
	maxRuleValue = decimal.New(1, 12-ruleValueScale)
)

// isValidRuleValue: доли в [0, 1], денежные суммы неотрицательны, не больше 4 знаков после запятой
// и меньше 10^8.
func isValidRuleValue(key entities.RuleKey, value decimal.Decimal) bool {
	if value.IsNegative() {
		return false
	}
	if !value.Equal(value.Truncate(ruleValueScale)) {
		return false
	}
	if !value.LessThan(maxRuleValue) {
		return false
	}
	if key.IsRate() && value.GreaterThan(one) {
		return false
	}
	return true
}

func isValidAdminID(adminID string) bool {
	return strings.TrimSpace(adminID) != ""
}
