package app

import (
	"courier-ledger/internal/handlers/rest/deliveries_available_get"
	"courier-ledger/internal/handlers/rest/deliveries_me_get"
	"courier-ledger/internal/handlers/rest/deliveries_me_metrics_get"
	"courier-ledger/internal/handlers/rest/delivery_accept_put"
	"courier-ledger/internal/handlers/rest/delivery_get"
	"courier-ledger/internal/handlers/rest/delivery_status_put"
	"courier-ledger/internal/handlers/rest/rule_history_get"
	"courier-ledger/internal/handlers/rest/rule_put"
	"courier-ledger/internal/handlers/rest/rules_get"
	"courier-ledger/internal/handlers/rest/withdraw_request_post"
	"courier-ledger/internal/handlers/rest/withdraw_request_review_put"
	"courier-ledger/internal/handlers/rest/withdraw_requests_admin_get"
	"courier-ledger/internal/handlers/rest/withdraw_requests_me_get"
	orderService "courier-ledger/internal/service/order"
	"courier-ledger/pkg/background"
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceEarnings   ServiceEarnings
	ServiceWithdrawal ServiceWithdrawal
	ServiceRules      ServiceRules
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_available_get.Service
	deliveries_me_get.Service
	delivery_get.Service
	delivery_accept_put.Service
	delivery_status_put.Service
}

type ServiceEarnings interface {
	deliveries_me_metrics_get.Service
}

type ServiceWithdrawal interface {
	withdraw_request_post.Service
	withdraw_requests_me_get.Service
	withdraw_requests_admin_get.Service
	withdraw_request_review_put.Service
}

type ServiceRules interface {
	rules_get.Service
	rule_put.Service
	rule_history_get.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
