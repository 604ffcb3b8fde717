package healthcheck_head

import "context"

type pinger interface {
	Ping(ctx context.Context) error
}
