package dto

import "courier-ledger/internal/entities"

// CourierMetrics - суммы строками с двумя знаками, доли числами.
type CourierMetrics struct {
	EarningsToday       string  `json:"earnings_today"`
	EarningsThisWeek    string  `json:"earnings_this_week"`
	EarningsAllTime     string  `json:"earnings_all_time"`
	CompletedDeliveries int64   `json:"completed_deliveries"`
	AvgEstimatedMinutes float64 `json:"avg_estimated_minutes"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
	CancellationRate    float64 `json:"cancellation_rate"`
	AvailableBalance    string  `json:"available_balance"`
	PendingWithdrawals  string  `json:"pending_withdrawals"`
	PaidWithdrawals     string  `json:"paid_withdrawals"`
}

func FromCourierMetrics(m entities.CourierMetrics) CourierMetrics {
	return CourierMetrics{
		EarningsToday:       m.EarningsToday.StringFixed(2),
		EarningsThisWeek:    m.EarningsThisWeek.StringFixed(2),
		EarningsAllTime:     m.EarningsAllTime.StringFixed(2),
		CompletedDeliveries: m.CompletedDeliveries,
		AvgEstimatedMinutes: m.AvgEstimatedMinutes,
		AcceptanceRate:      m.AcceptanceRate,
		CancellationRate:    m.CancellationRate,
		AvailableBalance:    m.AvailableBalance.StringFixed(2),
		PendingWithdrawals:  m.PendingWithdrawals.StringFixed(2),
		PaidWithdrawals:     m.PaidWithdrawals.StringFixed(2),
	}
}
