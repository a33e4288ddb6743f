package session

import "context"

// Keys under which the persisted session entries are stored. They mirror
// the three entries the backend contract expects a client to keep.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Repository is a small key/value store for the persisted session.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
