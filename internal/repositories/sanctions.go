package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
)

// SanctionsKey is the Redis set holding sanctioned destination addresses.
const SanctionsKey = "sanctions:addresses"

// SanctionsRepository checks destination addresses against a sanctions list
// maintained in Redis by an external screening feed.
type SanctionsRepository struct {
	client *redis.Client
}

func NewSanctionsRepository(client *redis.Client) *SanctionsRepository {
	return &SanctionsRepository{client: client}
}

// IsSanctioned reports whether address is on the list.
func (r *SanctionsRepository) IsSanctioned(ctx context.Context, address string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, SanctionsKey, address).Result()
	logger.Log.Infow(
		"redis",
		"key", SanctionsKey,
		"address", address,
		"result", ok,
		"error", err,
	)
	return ok, err
}

// Add puts addresses on the list.
func (r *SanctionsRepository) Add(ctx context.Context, addresses ...string) error {
	members := make([]any, len(addresses))
	for i, a := range addresses {
		members[i] = a
	}
	err := r.client.SAdd(ctx, SanctionsKey, members...).Err()
	logger.Log.Infow(
		"redis",
		"key", SanctionsKey,
		"added", len(addresses),
		"error", err,
	)
	return err
}
