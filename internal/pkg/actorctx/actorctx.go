package actorctx

import (
	"context"

	"courier-ledger/internal/entities"
)

type ctxKey struct{}

func With(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func From(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}
