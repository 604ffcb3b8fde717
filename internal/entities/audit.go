package entities

import (
	"encoding/json"
	"time"
)

type AuditAction string

const (
	AuditWithdrawalRequested AuditAction = "withdrawal.requested"
	AuditWithdrawalReviewed  AuditAction = "withdrawal.reviewed"
	AuditRuleUpdated         AuditAction = "rule.updated"
)

type AuditEntry struct {
	ID        int64
	ActorID   string
	Action    AuditAction
	Entity    string
	EntityID  string
	Payload   json.RawMessage
	CreatedAt time.Time
}
