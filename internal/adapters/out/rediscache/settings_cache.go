// Package rediscache provides a Redis-backed read-through cache for tenant
// workflow settings.
//
// The cache serves informational surfaces only (the workflow context query);
// the transition executor always reads settings straight from the database so
// a stale cache can never change which transitions are legal.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

func settingsKey(tenantID kernel.UUID) string {
	return fmt.Sprintf("laundry:tenant:%s:settings", tenantID)
}

// SettingsCache implements ports.SettingsProvider with a short-TTL Redis
// cache in front of the tenant settings repository. A Redis outage degrades
// to direct repository reads; it never fails the caller.
type SettingsCache struct {
	client *redis.Client
	inner  ports.TenantSettingsRepository
	ttl    time.Duration
}

// NewSettingsCache creates a cache over the given repository.
// ttl bounds how long a toggle change may remain invisible to informational
// consumers.
func NewSettingsCache(
	client *redis.Client,
	inner ports.TenantSettingsRepository,
	ttl time.Duration,
) *SettingsCache {
	return &SettingsCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
	}
}

// GetSettings returns the tenant's settings, from cache when fresh.
// A miss reads through to the repository and repopulates the cache on a
// best-effort basis.
func (c *SettingsCache) GetSettings(ctx context.Context, tenantID kernel.UUID) (workflow.Settings, error) {
	if err := tenantID.Validate(); err != nil {
		return workflow.Settings{}, err
	}

	data, err := c.client.Get(ctx, settingsKey(tenantID)).Bytes()
	if err == nil {
		var settings workflow.Settings
		if unmarshalErr := json.Unmarshal(data, &settings); unmarshalErr == nil {
			return settings, nil
		}
		// Unreadable entry, fall through and rewrite it.
	}

	settings, err := c.inner.Get(ctx, tenantID)
	if err != nil {
		return workflow.Settings{}, err
	}

	c.store(ctx, tenantID, settings)
	return settings, nil
}

// Refresh re-reads one tenant's settings from the repository into the cache.
func (c *SettingsCache) Refresh(ctx context.Context, tenantID kernel.UUID) error {
	settings, err := c.inner.Get(ctx, tenantID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, settingsKey(tenantID), data, c.ttl).Err()
}

// RefreshAll re-reads every tenant with stored settings into the cache.
// Returns the joined errors of the tenants that could not be refreshed.
func (c *SettingsCache) RefreshAll(ctx context.Context) error {
	tenantIDs, err := c.inner.GetAllTenantIDs(ctx)
	if err != nil {
		return err
	}

	var failures []error
	for _, tenantID := range tenantIDs {
		if refreshErr := c.Refresh(ctx, tenantID); refreshErr != nil {
			failures = append(failures, fmt.Errorf("tenant %s: %w", tenantID, refreshErr))
		}
	}

	return errors.Join(failures...)
}

// store writes the cache entry, ignoring Redis failures.
func (c *SettingsCache) store(ctx context.Context, tenantID kernel.UUID, settings workflow.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, settingsKey(tenantID), data, c.ttl).Err()
}
