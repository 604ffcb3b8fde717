package outbox

import (
	"time"

	"github.com/google/uuid"
)

type OutboxEventDB struct {
	ID            uuid.UUID
	Kind          string
	RoutingKey    string
	Payload       []byte
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}
