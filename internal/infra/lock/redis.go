package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockNotAcquired: outro handler segura o commit deste barbeiro e a
// espera estourou. O chamador trata como conflito transitório.
var ErrLockNotAcquired = errors.New("booking lock not acquired")

const (
	lockTTL      = 5 * time.Second
	lockWait     = 2 * time.Second
	lockInterval = 50 * time.Millisecond
)

// Libera somente se o token ainda for nosso (lock não expirado e
// re-adquirido por outro processo).
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implementa o lock distribuído por barbeiro via SET NX.
// É o que vale quando a API roda com múltiplas réplicas.
type RedisLocker struct {
	rdb *redis.Client
}

func NewRedisLocker(rdb *redis.Client) *RedisLocker {
	return &RedisLocker{rdb: rdb}
}

func lockKey(barberID uint) string {
	return fmt.Sprintf("booking:lock:barber:%d", barberID)
}

func (l *RedisLocker) Lock(ctx context.Context, barberID uint) (func(), error) {
	key := lockKey(barberID)
	token := uuid.NewString()

	deadline := time.Now().Add(lockWait)

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		if time.Now().After(deadline) {
			return nil, ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockInterval):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
	}

	return release, nil
}

var _ BarberLocker = (*RedisLocker)(nil)
