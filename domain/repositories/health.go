package repositories

import "context"

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
