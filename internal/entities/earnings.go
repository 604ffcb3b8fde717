package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Earnings - выплата за одну доставку. Никогда не хранится, всегда пересчитывается по текущим правилам.
type Earnings struct {
	Gross      decimal.Decimal
	Commission decimal.Decimal
	Net        decimal.Decimal
}

type DeliveredJob struct {
	DeliveryID  int64
	OrderID     string
	OrderTotal  decimal.Decimal
	CompletedAt time.Time
}

// CourierJobStats - счетчики по всей истории доставок курьера.
type CourierJobStats struct {
	Total               int64
	Waiting             int64
	Delivered           int64
	AvgEstimatedMinutes float64
}

type CourierMetrics struct {
	EarningsToday       decimal.Decimal
	EarningsThisWeek    decimal.Decimal
	EarningsAllTime     decimal.Decimal
	CompletedDeliveries int64
	AvgEstimatedMinutes float64
	AcceptanceRate      float64
	CancellationRate    float64
	AvailableBalance    decimal.Decimal
	PendingWithdrawals  decimal.Decimal
	PaidWithdrawals     decimal.Decimal
}
