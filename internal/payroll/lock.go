package payroll

import (
	"context"
	payrollerrors "nursery-admin/internal/payroll/errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "payroll:recalc:"

// releaseScript deletes the lock only when it still holds our token, so an
// expired lock reacquired by another process is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RecalcLock serializes recalculations for one (employee, period) key
// across processes. In-process collapsing is handled separately by
// singleflight in the service.
type RecalcLock struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRecalcLock(rdb *redis.Client, ttl time.Duration) *RecalcLock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RecalcLock{rdb: rdb, ttl: ttl}
}

// Acquire takes the lock for key and returns a release func. A held lock
// means another recalculation for the same key is running; the caller gets
// a conflict error instead of waiting.
func (l *RecalcLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := lockKeyPrefix + key

	ok, err := l.rdb.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return nil, payrollerrors.StoreUnavailable(err)
	}
	if !ok {
		return nil, payrollerrors.ErrRecalculationInProgress
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{redisKey}, token).Err()
	}
	return release, nil
}
