package app

import (
	"context"
	"fmt"

	"courier-ledger/internal/gateway/grpc/notification"
	"courier-ledger/internal/gateway/kafka/broadcaster"
	"courier-ledger/internal/gateway/telegram/alerter"
	"courier-ledger/internal/handlers/tasks/outbox_relay"
	"courier-ledger/internal/pkg/config"

	auditRepo "courier-ledger/internal/repository/audit"
	courierRepo "courier-ledger/internal/repository/courier"
	deliveryRepo "courier-ledger/internal/repository/delivery"
	orderRepo "courier-ledger/internal/repository/order"
	outboxRepo "courier-ledger/internal/repository/outbox"
	rulesRepo "courier-ledger/internal/repository/rules"
	withdrawalRepo "courier-ledger/internal/repository/withdrawal"
	courierService "courier-ledger/internal/service/courier"
	deliveryService "courier-ledger/internal/service/delivery"
	dispatchService "courier-ledger/internal/service/dispatch"
	earningsService "courier-ledger/internal/service/earnings"
	orderService "courier-ledger/internal/service/order"
	rulesService "courier-ledger/internal/service/rules"
	withdrawalService "courier-ledger/internal/service/withdrawal"

	"courier-ledger/pkg/background"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/querier"
	"courier-ledger/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideRulesRepository(querier *querier.Querier) *rulesRepo.Repository {
	return rulesRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideWithdrawalRepository(querier *querier.Querier) *withdrawalRepo.Repository {
	return withdrawalRepo.New(querier)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	orders deliveryService.OrderRepository,
	outbox deliveryService.OutboxRepository,
	couriers deliveryService.CourierProvider,
	txManager deliveryService.TxManager,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		orders,
		outbox,
		couriers,
		txManager,
		log,
	)
}

func provideServiceRules(
	repository rulesService.Repository,
	auditLog rulesService.AuditLog,
	txManager rulesService.TxManager,
	cfg *config.Config,
) *rulesService.Rules {
	return rulesService.New(repository, auditLog, txManager, cfg.Ledger.RulesCacheTTL)
}

func provideServiceEarnings(
	repository earningsService.Repository,
	withdrawals earningsService.WithdrawalRepository,
	rules earningsService.RulesProvider,
	couriers earningsService.CourierProvider,
	cfg *config.Config,
) *earningsService.Earnings {
	return earningsService.New(repository, withdrawals, rules, couriers, cfg.Ledger.Location)
}

func provideServiceWithdrawal(
	repository withdrawalService.Repository,
	balance withdrawalService.BalanceProvider,
	rules withdrawalService.RulesProvider,
	couriers withdrawalService.CourierProvider,
	outbox withdrawalService.OutboxRepository,
	auditLog withdrawalService.AuditLog,
	txManager withdrawalService.TxManager,
) *withdrawalService.Withdrawal {
	return withdrawalService.New(
		repository,
		balance,
		rules,
		couriers,
		outbox,
		auditLog,
		txManager,
	)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(deliveryService orderService.DeliveryService) *orderService.Service {
	return orderService.New(deliveryService)
}

func provideBroadcaster(producer sarama.SyncProducer, cfg *config.Config) *broadcaster.Broadcaster {
	return broadcaster.New(producer, cfg.Kafka.StatusChangedTopic)
}

func provideNotificationGateway(conn *grpc.ClientConn, cfg *config.Config) *notification.NotificationGateway {
	return notification.New(conn, cfg.NotificationService.CallTimeout)
}

// provideAdminAlerter возвращает nil, если Telegram не настроен: тогда уведомления администраторам
// уходят через notification-service.
func provideAdminAlerter(log logger.Logger, cfg *config.Config) (dispatchService.AdminAlerter, error) {
	if !cfg.Telegram.Enabled() {
		log.Info("telegram admin alerts disabled")
		return nil, nil
	}

	bot, err := alerter.NewBot(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return alerter.New(bot, cfg.Telegram.AdminChatID), nil
}

func provideDispatcherConfig(cfg *config.Config) dispatchService.Config {
	return dispatchService.Config{
		BatchSize:   cfg.Tasks.OutboxBatchSize,
		MaxAttempts: cfg.Tasks.OutboxMaxAttempts,
		Lease:       cfg.Tasks.OutboxLease,
	}
}

func provideDispatcher(
	repository dispatchService.Repository,
	broadcaster dispatchService.Broadcaster,
	notifier dispatchService.Notifier,
	alerter dispatchService.AdminAlerter,
	log logger.Logger,
	cfg dispatchService.Config,
) *dispatchService.Dispatcher {
	return dispatchService.New(repository, broadcaster, notifier, alerter, log, cfg)
}

func provideOutboxRelayTask(
	log logger.Logger,
	dispatcher outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, dispatcher, cfg.Tasks.OutboxRelayInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
