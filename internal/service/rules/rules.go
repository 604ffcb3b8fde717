package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"courier-ledger/internal/entities"

	"github.com/shopspring/decimal"
)

const loadTimeout = 5 * time.Second

type Rules struct {
	repository Repository
	auditLog   AuditLog
	txManager  TxManager
	cache      *cache
}

func New(repository Repository, auditLog AuditLog, txManager TxManager, cacheTTL time.Duration) *Rules {
	return &Rules{
		repository: repository,
		auditLog:   auditLog,
		txManager:  txManager,
		cache:      newCache(cacheTTL),
	}
}

// GetCurrentRules возвращает последнее значение каждого ключа, для отсутствующих ключей - значения по умолчанию.
// Одновременные промахи кэша сливаются в один запрос к базе.
func (s *Rules) GetCurrentRules(ctx context.Context) (entities.CourierRules, error) {
	if rules, ok := s.cache.get(); ok {
		cacheHits.Inc()
		return rules, nil
	}
	cacheMisses.Inc()

	v, err, _ := s.cache.group.Do(cacheKey, func() (any, error) {
		generation := s.cache.currentGeneration()

		// загрузка общая для всех ожидающих, поэтому не зависит от отмены запроса инициатора
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		records, err := s.repository.Latest(loadCtx)
		if err != nil {
			return nil, err
		}

		rules := entities.DefaultCourierRules()
		for _, record := range records {
			rules = rules.With(record.Key, record.Value)
		}
		s.cache.set(rules, generation)
		return rules, nil
	})
	if err != nil {
		return entities.CourierRules{}, fmt.Errorf("load current rules: %w", err)
	}
	return v.(entities.CourierRules), nil
}

// SetRule дописывает новое значение правила и запись аудита в одной транзакции.
func (s *Rules) SetRule(
	ctx context.Context,
	key entities.RuleKey,
	value decimal.Decimal,
	adminID string,
) (*entities.RuleRecord, error) {
	if !key.IsValid() {
		return nil, ErrUnknownRuleKey
	}
	if !isValidRuleValue(key, value) {
		return nil, ErrInvalidRuleValue
	}
	if !isValidAdminID(adminID) {
		return nil, ErrInvalidAdminID
	}

	var saved *entities.RuleRecord
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repository.Append(ctx, entities.RuleRecord{
			Key:       key,
			Value:     value,
			UpdatedBy: adminID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append rule: %w", err)
		}

		payload, err := json.Marshal(map[string]string{
			"key":   key.String(),
			"value": value.String(),
		})
		if err != nil {
			return fmt.Errorf("marshal audit payload: %w", err)
		}

		if err := s.auditLog.Record(ctx, entities.AuditEntry{
			ActorID:  adminID,
			Action:   entities.AuditRuleUpdated,
			Entity:   "courier_rule",
			EntityID: strconv.FormatInt(saved.ID, 10),
			Payload:  payload,
		}); err != nil {
			return fmt.Errorf("record audit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set rule: %w", err)
	}

	s.cache.invalidate()
	return saved, nil
}

// History отдает все значения ключа, новые первыми.
func (s *Rules) History(ctx context.Context, key entities.RuleKey) ([]entities.RuleRecord, error) {
	if !key.IsValid() {
		return nil, ErrUnknownRuleKey
	}

	records, err := s.repository.History(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("rule history: %w", err)
	}
	return records, nil
}
