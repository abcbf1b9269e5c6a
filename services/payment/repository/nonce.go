package repository

import (
	"context"
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/database"
)

const noncePrefix = "quote:nonce:"

// NonceRepo records issued quote nonces in Redis for auditability. Entries
// expire with the quote; losing one never blocks issuance.
type NonceRepo struct {
	cache *database.RedisClient
}

// NewNonceRepo creates a new nonce repository instance
func NewNonceRepo(cache *database.RedisClient) *NonceRepo {
	return &NonceRepo{cache: cache}
}

// TrackNonce stores the nonce with the service it was issued for.
func (r *NonceRepo) TrackNonce(ctx context.Context, nonce, serviceID string, ttl time.Duration) error {
	return r.cache.Set(ctx, noncePrefix+nonce, serviceID, ttl)
}
