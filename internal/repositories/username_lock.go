package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UsernameLockRepository reserves usernames in Redis while an account is being created,
// so concurrent registrations of the same name across instances do not race.
type UsernameLockRepository struct {
	client *redis.Client
	exp    time.Duration // reservation lifetime, bounds how long a crashed request holds a name
	log    *zap.SugaredLogger
}

// NewUsernameLockRepository creates a new repository instance with the given reservation TTL.
func NewUsernameLockRepository(client *redis.Client, expiration time.Duration, log *zap.SugaredLogger) *UsernameLockRepository {
	return &UsernameLockRepository{
		client: client,
		exp:    expiration,
		log:    log,
	}
}

// Acquire reserves the username. It returns false when someone else holds the reservation.
func (r *UsernameLockRepository) Acquire(ctx context.Context, username string) (bool, error) {
	key := usernameLockKey(username)
	ok, err := r.client.SetNX(ctx, key, "1", r.exp).Result()

	r.log.Infow("acquire username reservation",
		"key", key,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// Release drops the reservation.
func (r *UsernameLockRepository) Release(ctx context.Context, username string) error {
	key := usernameLockKey(username)
	err := r.client.Del(ctx, key).Err()

	r.log.Infow("release username reservation",
		"key", key,
		"error", err,
	)

	return err
}

func usernameLockKey(username string) string {
	return fmt.Sprintf("account:username:%s", username)
}
