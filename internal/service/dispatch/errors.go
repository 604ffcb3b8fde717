package dispatch

import "errors"

var (
	ErrUnknownKind    = errors.New("unknown outbox event kind")
	ErrInvalidPayload = errors.New("invalid outbox payload")
)
