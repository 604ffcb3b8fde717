package earnings

import (
	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

// Calculate считает выплату за одну доставку:
// gross = baseFee + orderTotal * variableRate, commission = gross * platformCommissionRate,
// net = max(0, gross - commission). Функция чистая, результат зависит только от аргументов.
func Calculate(orderTotal decimal.Decimal, rules entities.CourierRules) entities.Earnings {
	gross := rules.BaseFee.Add(orderTotal.Mul(rules.VariableRate))
	commission := gross.Mul(rules.PlatformCommissionRate)

	net := gross.Sub(commission)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return entities.Earnings{
		Gross:      gross,
		Commission: commission,
		Net:        net,
	}
}

// SumNet пересчитывает все доставленные заказы по переданным правилам.
func SumNet(jobs []entities.DeliveredJob, rules entities.CourierRules) decimal.Decimal {
	total := decimal.Zero
	for _, job := range jobs {
		total = total.Add(Calculate(job.OrderTotal, rules).Net)
	}
	return total
}
