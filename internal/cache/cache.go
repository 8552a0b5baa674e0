// Package cache stores generated company analyses in Redis so repeated
// lookups for the same company and role skip the model call.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
)

// DefaultTTL is how long a cached analysis stays fresh.
const DefaultTTL = 24 * time.Hour

// AnalysisCache is a Redis-backed cache of company/role analyses.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies connectivity.
func New(addr, password string, ttl time.Duration) (*AnalysisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &AnalysisCache{client: client, ttl: ttl}, nil
}

// Get returns the cached analysis for a company/role pair, or false when
// the entry is missing or unreadable.
func (c *AnalysisCache) Get(ctx context.Context, company, role string) (*types.CompanyAnalysis, bool, error) {
	data, err := c.client.Get(ctx, Key(company, role)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var analysis types.CompanyAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		// A corrupt entry is treated as a miss so it gets rewritten.
		return nil, false, nil
	}
	return &analysis, true, nil
}

// Set stores an analysis for a company/role pair.
func (c *AnalysisCache) Set(ctx context.Context, company, role string, analysis *types.CompanyAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := c.client.Set(ctx, Key(company, role), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}

// Invalidate removes the cached analysis for a company/role pair.
func (c *AnalysisCache) Invalidate(ctx context.Context, company, role string) error {
	if err := c.client.Del(ctx, Key(company, role)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached analysis: %w", err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity.
func (c *AnalysisCache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *AnalysisCache) Close() error {
	return c.client.Close()
}

// Key builds the cache key for a company/role pair. Both parts are
// canonicalized so "Acme Corp" and "acme corp" share an entry.
func Key(company, role string) string {
	return fmt.Sprintf("analysis:%s:%s", keyPart(company), keyPart(role))
}

func keyPart(s string) string {
	return strings.ReplaceAll(profile.Canonicalize(s), " ", "-")
}
