package earnings

import (
	"context"
	"fmt"
	"time"

	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

type Earnings struct {
	repository  Repository
	withdrawals WithdrawalRepository
	rules       RulesProvider
	couriers    CourierProvider
	location    *time.Location
}

func New(
	repository Repository,
	withdrawals WithdrawalRepository,
	rules RulesProvider,
	couriers CourierProvider,
	location *time.Location,
) *Earnings {
	if location == nil {
		location = time.UTC
	}
	return &Earnings{
		repository:  repository,
		withdrawals: withdrawals,
		rules:       rules,
		couriers:    couriers,
		location:    location,
	}
}

// TotalNet - сумма net по всем доставленным заказам курьера по текущим правилам.
// Изменение правил меняет и прошлые суммы.
func (s *Earnings) TotalNet(ctx context.Context, courierID int64, rules entities.CourierRules) (decimal.Decimal, error) {
	jobs, err := s.repository.DeliveredJobs(ctx, courierID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get delivered jobs: %w", err)
	}
	return SumNet(jobs, rules), nil
}

// AvailableBalance = max(0, totalNet - pending - paid). Внутри транзакции читает через нее.
func (s *Earnings) AvailableBalance(
	ctx context.Context,
	courierID int64,
	rules entities.CourierRules,
) (decimal.Decimal, error) {
	net, err := s.TotalNet(ctx, courierID, rules)
	if err != nil {
		return decimal.Zero, err
	}

	totals, err := s.withdrawals.Totals(ctx, courierID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get withdrawal totals: %w", err)
	}
	return entities.AvailableBalance(net, totals), nil
}

// Metrics собирает сводку заработка курьера на момент now в настроенной временной зоне.
func (s *Earnings) Metrics(ctx context.Context, userID string, now time.Time) (*entities.CourierMetrics, error) {
	courier, err := s.couriers.GetCourierByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}

	rules, err := s.rules.GetCurrentRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	jobs, err := s.repository.DeliveredJobs(ctx, courier.ID)
	if err != nil {
		return nil, fmt.Errorf("get delivered jobs: %w", err)
	}

	stats, err := s.repository.JobStats(ctx, courier.ID)
	if err != nil {
		return nil, fmt.Errorf("get job stats: %w", err)
	}

	totals, err := s.withdrawals.Totals(ctx, courier.ID)
	if err != nil {
		return nil, fmt.Errorf("get withdrawal totals: %w", err)
	}

	dayStart := StartOfDay(now, s.location)
	weekStart := StartOfWeek(now, s.location)

	metrics := &entities.CourierMetrics{
		EarningsToday:       decimal.Zero,
		EarningsThisWeek:    decimal.Zero,
		EarningsAllTime:     decimal.Zero,
		CompletedDeliveries: stats.Delivered,
		AvgEstimatedMinutes: stats.AvgEstimatedMinutes,
		PendingWithdrawals:  totals.Pending,
		PaidWithdrawals:     totals.Paid,
	}

	for _, job := range jobs {
		net := Calculate(job.OrderTotal, rules).Net
		metrics.EarningsAllTime = metrics.EarningsAllTime.Add(net)
		if !job.CompletedAt.Before(weekStart) {
			metrics.EarningsThisWeek = metrics.EarningsThisWeek.Add(net)
		}
		if !job.CompletedAt.Before(dayStart) {
			metrics.EarningsToday = metrics.EarningsToday.Add(net)
		}
	}

	if stats.Total > 0 {
		metrics.AcceptanceRate = float64(stats.Total-stats.Waiting) / float64(stats.Total)
		metrics.CancellationRate = float64(stats.Waiting) / float64(stats.Total)
	}

	metrics.AvailableBalance = entities.AvailableBalance(metrics.EarningsAllTime, totals)
	return metrics, nil
}
