// Package registrationcache fronts ResourceCluster.GetTaskExecutorInfo with
// a bounded local cache, so the placement pipeline doesn't re-fetch the
// same executor's registration on every retried attempt. Grounded on
// snapshot/bundlestore's single-node groupcache.Group usage: no peer pool,
// just the local-process cache a groupcache.Group already provides.
package registrationcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twitter/groupcache"

	"github.com/scootdev/dispatch/dispatch"
)

// Source is the underlying, uncached lookup this cache sits in front of.
type Source interface {
	GetTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error)
}

// Cache wraps Source with a bounded groupcache group keyed by executor id.
type Cache struct {
	group *groupcache.Group
}

// NewCache builds a cache named name with capacity maxBytes, fetching
// misses from src.
func NewCache(name string, maxBytes int64, src Source) *Cache {
	group := groupcache.NewGroup(name, maxBytes, groupcache.GetterFunc(
		func(ctx groupcache.Context, key string, dest groupcache.Sink) error {
			reg, err := src.GetTaskExecutorInfo(context.Background(), dispatch.TaskExecutorID(key))
			if err != nil {
				return err
			}
			data, err := json.Marshal(reg)
			if err != nil {
				return err
			}
			dest.SetBytes(data)
			return nil
		},
	), groupcache.PutterFunc(
		func(ctx groupcache.Context, key string, data []byte, ttl time.Duration) error {
			return nil
		},
	))
	return &Cache{group: group}
}

// Get returns id's registration, populating the cache on a miss.
func (c *Cache) Get(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	var data []byte
	if err := c.group.Get(nil, string(id), groupcache.AllocatingByteSliceSink(&data)); err != nil {
		return dispatch.TaskExecutorRegistration{}, err
	}
	var reg dispatch.TaskExecutorRegistration
	if err := json.Unmarshal(data, &reg); err != nil {
		return dispatch.TaskExecutorRegistration{}, err
	}
	return reg, nil
}

// CachedResourceCluster decorates a dispatch.ResourceCluster, routing
// GetTaskExecutorInfo through a Cache while leaving placement, gateway
// dialing, hostname lookups, and GetCurrentTaskExecutorInfo untouched. This
// trades a small window of registration staleness (bounded by groupcache's
// eviction, not a TTL) between assignment and submission for avoiding a
// network round trip on every payload build, without weakening the
// pre-publish re-read: that always goes to the underlying source.
type CachedResourceCluster struct {
	underlying dispatch.ResourceCluster
	cache      *Cache
}

// NewCachedResourceCluster wraps underlying with a Cache of capacity
// maxBytes named name.
func NewCachedResourceCluster(name string, maxBytes int64, underlying dispatch.ResourceCluster) *CachedResourceCluster {
	return &CachedResourceCluster{underlying: underlying, cache: NewCache(name, maxBytes, underlying)}
}

func (c *CachedResourceCluster) GetTaskExecutorFor(ctx context.Context, def dispatch.MachineDefinition, workerID string) (dispatch.TaskExecutorID, error) {
	return c.underlying.GetTaskExecutorFor(ctx, def, workerID)
}

func (c *CachedResourceCluster) GetTaskExecutorGateway(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.Gateway, error) {
	return c.underlying.GetTaskExecutorGateway(ctx, id)
}

func (c *CachedResourceCluster) GetTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	return c.cache.Get(ctx, id)
}

// GetCurrentTaskExecutorInfo bypasses the cache entirely and reads
// directly from underlying, so a publish always reflects the executor's
// current state rather than whatever was cached at assignment time.
func (c *CachedResourceCluster) GetCurrentTaskExecutorInfo(ctx context.Context, id dispatch.TaskExecutorID) (dispatch.TaskExecutorRegistration, error) {
	return c.underlying.GetTaskExecutorInfo(ctx, id)
}

func (c *CachedResourceCluster) GetTaskExecutorInfoByHostname(ctx context.Context, hostname string) (dispatch.TaskExecutorID, dispatch.TaskExecutorRegistration, error) {
	return c.underlying.GetTaskExecutorInfoByHostname(ctx, hostname)
}

var _ dispatch.ResourceCluster = (*CachedResourceCluster)(nil)
