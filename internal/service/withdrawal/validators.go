package withdrawal

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func isValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

func isValidAccountRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref != "" && len(ref) <= 128
}

func normalizeLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
