package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-custodial-ledger/internal/logger"
)

// RedemptionThrottleRepository counts redemption attempts per caller in fixed Redis windows.
type RedemptionThrottleRepository struct {
	client *redis.Client
	window time.Duration
}

// NewRedemptionThrottleRepository creates a throttle whose counters expire after window.
func NewRedemptionThrottleRepository(client *redis.Client, window time.Duration) *RedemptionThrottleRepository {
	return &RedemptionThrottleRepository{client: client, window: window}
}

// Hit registers one attempt for caller and returns the attempt count in the current window.
func (r *RedemptionThrottleRepository) Hit(ctx context.Context, caller string) (int64, error) {
	key := fmt.Sprintf("redeem_attempts:%s", caller)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})
	if err != nil {
		logger.Log.Infow(
			"redis",
			"key", key,
			"result", 0,
			"error", err,
		)
		return 0, err
	}

	count := incr.Val()
	logger.Log.Infow(
		"redis",
		"key", key,
		"result", count,
		"error", nil,
	)
	return count, nil
}
