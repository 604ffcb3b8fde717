//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"courier-ledger/internal/gateway/grpc/notification"
	"courier-ledger/internal/gateway/kafka/broadcaster"
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

	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideCourierRepository,
	provideDeliveryRepository,
	provideOrderRepository,
	provideOutboxRepository,
	provideRulesRepository,
	provideAuditRepository,
	provideWithdrawalRepository,
)

var deliverySet = wire.NewSet(
	provideServiceCourier,
	provideServiceDelivery,

	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
	wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(deliveryService.OutboxRepository), new(*outboxRepo.Repository)),
	wire.Bind(new(deliveryService.CourierProvider), new(*courierService.Courier)),
	wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		deliverySet,

		provideServiceRules,
		provideServiceEarnings,
		provideServiceWithdrawal,

		provideBroadcaster,
		provideNotificationGateway,
		provideAdminAlerter,
		provideDispatcherConfig,
		provideDispatcher,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceEarnings), new(*earningsService.Earnings)),
		wire.Bind(new(ServiceWithdrawal), new(*withdrawalService.Withdrawal)),
		wire.Bind(new(ServiceRules), new(*rulesService.Rules)),

		wire.Bind(new(rulesService.Repository), new(*rulesRepo.Repository)),
		wire.Bind(new(rulesService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(rulesService.TxManager), new(*tx.Manager)),

		wire.Bind(new(earningsService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(earningsService.WithdrawalRepository), new(*withdrawalRepo.Repository)),
		wire.Bind(new(earningsService.RulesProvider), new(*rulesService.Rules)),
		wire.Bind(new(earningsService.CourierProvider), new(*courierService.Courier)),

		wire.Bind(new(withdrawalService.Repository), new(*withdrawalRepo.Repository)),
		wire.Bind(new(withdrawalService.BalanceProvider), new(*earningsService.Earnings)),
		wire.Bind(new(withdrawalService.RulesProvider), new(*rulesService.Rules)),
		wire.Bind(new(withdrawalService.CourierProvider), new(*courierService.Courier)),
		wire.Bind(new(withdrawalService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(withdrawalService.AuditLog), new(*auditRepo.Repository)),
		wire.Bind(new(withdrawalService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(dispatchService.Broadcaster), new(*broadcaster.Broadcaster)),
		wire.Bind(new(dispatchService.Notifier), new(*notification.NotificationGateway)),

		wire.Bind(new(outbox_relay.Service), new(*dispatchService.Dispatcher)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-placed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		deliverySet,

		provideOrderService,

		wire.Bind(new(orderService.DeliveryService), new(*deliveryService.Delivery)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
