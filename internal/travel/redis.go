package travel

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash key travel tables are published under.
const DefaultRedisKey = "match_engine:travel_minutes"

// LoadFromRedis bulk-hydrates a StaticProvider from a Redis hash where each
// field is a "citya|cityb" pair and each value the commute in minutes. The
// read happens once at startup; lookups stay in-memory afterwards.
func LoadFromRedis(ctx context.Context, client *redis.Client, key string) (*StaticProvider, error) {
	if key == "" {
		key = DefaultRedisKey
	}

	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read travel table from redis key %s: %w", key, err)
	}

	p := NewStaticProvider()
	for field, value := range fields {
		from, to, ok := splitRouteField(field)
		if !ok {
			return nil, fmt.Errorf("malformed route field %q in redis key %s", field, key)
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed minutes %q for route %q: %w", value, field, err)
		}
		if err := p.Set(from, to, minutes); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// PublishToRedis writes the routes into a Redis hash in the format
// LoadFromRedis reads. Used by seeding tools.
func PublishToRedis(ctx context.Context, client *redis.Client, key string, routes []Route) error {
	if key == "" {
		key = DefaultRedisKey
	}

	fields := make(map[string]any, len(routes))
	for _, r := range routes {
		routeField, ok := routeKey(r.From, r.To)
		if !ok {
			return fmt.Errorf("route needs two city names, got %q and %q", r.From, r.To)
		}
		if r.Minutes < 0 {
			return fmt.Errorf("negative travel time %d for %s", r.Minutes, routeField)
		}
		fields[routeField] = strconv.Itoa(r.Minutes)
	}
	if len(fields) == 0 {
		return nil
	}

	if err := client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to publish travel table to redis key %s: %w", key, err)
	}
	return nil
}

func splitRouteField(field string) (from, to string, ok bool) {
	parts := strings.SplitN(field, "|", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
