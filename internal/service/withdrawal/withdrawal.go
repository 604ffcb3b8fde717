package withdrawal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"courier-ledger/internal/entities"

	"github.com/google/uuid"
)

const auditEntity = "withdrawal_request"

type Withdrawal struct {
	repository Repository
	balance    BalanceProvider
	rules      RulesProvider
	couriers   CourierProvider
	outbox     OutboxRepository
	auditLog   AuditLog
	txManager  TxManager
}

func New(
	repository Repository,
	balance BalanceProvider,
	rules RulesProvider,
	couriers CourierProvider,
	outbox OutboxRepository,
	auditLog AuditLog,
	txManager TxManager,
) *Withdrawal {
	return &Withdrawal{
		repository: repository,
		balance:    balance,
		rules:      rules,
		couriers:   couriers,
		outbox:     outbox,
		auditLog:   auditLog,
		txManager:  txManager,
	}
}

// RequestWithdrawal проверяет по порядку: допуск курьера, положительную сумму, минимум, доступный баланс.
// Баланс считается и заявка пишется под блокировкой строки курьера, поэтому две одновременные
// заявки одного курьера не могут вместе превысить баланс.
func (s *Withdrawal) RequestWithdrawal(
	ctx context.Context,
	userID string,
	draft entities.WithdrawalDraft,
) (*entities.WithdrawalRequest, error) {
	courier, err := s.couriers.GetApprovedCourier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve courier: %w", err)
	}

	if !isValidAmount(draft.Amount) {
		return nil, ErrInvalidAmount
	}

	rules, err := s.rules.GetCurrentRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}
	if draft.Amount.LessThan(rules.MinWithdrawalAmount) {
		return nil, fmt.Errorf("%w: minimum is %s", ErrBelowMinimum, rules.MinWithdrawalAmount.StringFixed(2))
	}

	if !draft.Method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if !isValidAccountRef(draft.AccountRef) {
		return nil, ErrInvalidAccountRef
	}

	var created *entities.WithdrawalRequest
	err = s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		if _, err := s.couriers.LockCourier(ctx, courier.ID); err != nil {
			return fmt.Errorf("lock courier: %w", err)
		}

		available, err := s.balance.AvailableBalance(ctx, courier.ID, rules)
		if err != nil {
			return fmt.Errorf("get available balance: %w", err)
		}
		if draft.Amount.GreaterThan(available) {
			return fmt.Errorf("%w: available %s", ErrInsufficientBalance, available.StringFixed(2))
		}

		created, err = s.repository.Create(ctx, entities.WithdrawalRequest{
			ID:         uuid.New(),
			CourierID:  courier.ID,
			Amount:     draft.Amount,
			Method:     draft.Method,
			AccountRef: strings.TrimSpace(draft.AccountRef),
			Status:     entities.WithdrawalPending,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create withdrawal request: %w", err)
		}

		if err := s.audit(ctx, userID, entities.AuditWithdrawalRequested, *created); err != nil {
			return err
		}

		event, err := entities.NewNotificationOutbox(entities.Notification{
			Audience: entities.AudienceAdmins,
			Title:    "New withdrawal request",
			Body: fmt.Sprintf("Courier %d requested %s via %s",
				courier.ID, created.Amount.StringFixed(2), created.Method),
			Data: map[string]string{
				"request_id": created.ID.String(),
				"courier_id": strconv.FormatInt(courier.ID, 10),
				"amount":     created.Amount.StringFixed(2),
			},
		})
		if err != nil {
			return fmt.Errorf("build admin notification: %w", err)
		}
		if err := s.outbox.Enqueue(ctx, []entities.OutboxEvent{event}); err != nil {
			return fmt.Errorf("enqueue admin notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReviewWithdrawal переводит заявку по разрешенному ребру. Баланс повторно не проверяется.
func (s *Withdrawal) ReviewWithdrawal(
	ctx context.Context,
	actor entities.Actor,
	review entities.WithdrawalReview,
) (*entities.WithdrawalRequest, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if review.RequestID == uuid.Nil {
		return nil, ErrInvalidRequestID
	}
	if !review.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	review.ReviewerID = actor.UserID

	var reviewed *entities.WithdrawalRequest
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, review.RequestID)
		if err != nil {
			return fmt.Errorf("get withdrawal request: %w", err)
		}

		if !current.Status.CanTransitionTo(review.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, review.Status)
		}

		reviewed, err = s.repository.UpdateReview(ctx, current.Status, review, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("update withdrawal request: %w", err)
		}

		if err := s.audit(ctx, actor.UserID, entities.AuditWithdrawalReviewed, *reviewed); err != nil {
			return err
		}

		courier, err := s.couriers.GetCourierByID(ctx, reviewed.CourierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		event, err := entities.NewNotificationOutbox(entities.Notification{
			Audience:    entities.AudienceCourier,
			RecipientID: courier.UserID,
			Title:       "Withdrawal " + strings.ToLower(reviewed.Status.String()),
			Body: fmt.Sprintf("Your withdrawal of %s is now %s",
				reviewed.Amount.StringFixed(2), reviewed.Status),
			Data: map[string]string{
				"request_id": reviewed.ID.String(),
				"status":     reviewed.Status.String(),
			},
		})
		if err != nil {
			return fmt.Errorf("build courier notification: %w", err)
		}
		if err := s.outbox.Enqueue(ctx, []entities.OutboxEvent{event}); err != nil {
			return fmt.Errorf("enqueue courier notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

// ListWithdrawals: курьер видит только свои заявки, администратор - все, с необязательным фильтром по статусу.
func (s *Withdrawal) ListWithdrawals(
	ctx context.Context,
	actor entities.Actor,
	filter entities.WithdrawalFilter,
) ([]entities.WithdrawalRequest, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	filter.Limit = normalizeLimit(filter.Limit)

	if actor.IsAdmin() {
		filter.CourierID = nil
	} else {
		courier, err := s.couriers.GetCourierByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve courier: %w", err)
		}
		filter.CourierID = &courier.ID
	}

	requests, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal requests: %w", err)
	}
	return requests, nil
}

func (s *Withdrawal) audit(
	ctx context.Context,
	actorID string,
	action entities.AuditAction,
	request entities.WithdrawalRequest,
) error {
	payload, err := json.Marshal(map[string]string{
		"courier_id": strconv.FormatInt(request.CourierID, 10),
		"amount":     request.Amount.StringFixed(2),
		"method":     request.Method.String(),
		"status":     request.Status.String(),
		"notes":      request.Notes,
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	if err := s.auditLog.Record(ctx, entities.AuditEntry{
		ActorID:  actorID,
		Action:   action,
		Entity:   auditEntity,
		EntityID: request.ID.String(),
		Payload:  payload,
	}); err != nil {
		return fmt.Errorf("record audit: %w", err)
	}
	return nil
}
