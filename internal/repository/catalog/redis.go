package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/domain/course"
)

// store is the consumer interface for the redis catalog source (ISP).
type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// RedisSource loads the course catalog from JSON documents stored
// under <prefix>course:<id>. The snapshot is read once at startup; the
// engine never goes back to the store.
type RedisSource struct {
	store  store
	prefix string
}

// NewRedisSource creates a redis catalog source.
func NewRedisSource(s store, keyPrefix string) *RedisSource {
	return &RedisSource{store: s, prefix: keyPrefix}
}

// Load scans the course keys and hydrates each document. Keys are
// sorted so the catalog order — and with it the score tie-break — is
// stable across restarts.
func (s *RedisSource) Load(ctx context.Context) ([]course.Course, error) {
	keys, err := s.store.Scan(ctx, s.prefix+"course:*")
	if err != nil {
		return nil, fmt.Errorf("%w: scan courses: %w", domain.ErrCatalogUnavailable, err)
	}
	sort.Strings(keys)

	courses := make([]course.Course, 0, len(keys))
	for _, key := range keys {
		raw, err := s.store.JSONGet(ctx, key, "$")
		if err != nil {
			return nil, fmt.Errorf("%w: get %s: %w", domain.ErrCatalogUnavailable, key, err)
		}

		// JSON.GET with a path returns an array of matches.
		var dtos []courseDTO
		if err := json.Unmarshal(raw, &dtos); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrCatalogUnavailable, key, err)
		}
		if len(dtos) == 0 {
			continue
		}

		c, err := dtos[0].toDomain()
		if err != nil {
			return nil, fmt.Errorf("hydrate catalog: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}
