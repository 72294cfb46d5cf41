package yieldcache

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/foundry/blueprint"
)

// Cache is a goroutine-safe map from (prices, horizon) to yield.
type Cache struct {
	store *cache.Cache
}

// fingerprint is the exact cache identity: the 4×4 price table and the
// horizon, one byte each.
type fingerprint [blueprint.NumResources*blueprint.NumResources + 1]byte

// entry keeps the fingerprint next to the yield so that two fingerprints
// sharing a hashed key never answer for each other.
type entry struct {
	fp    fingerprint
	yield int
}

// New returns a Cache whose entries expire after ttl and are swept every
// cleanup interval. ttl ≤ 0 keeps entries forever.
func New(ttl, cleanup time.Duration) *Cache {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &Cache{store: cache.New(ttl, cleanup)}
}

// Key is the store key of bp at horizon: the xxhash of its fingerprint.
// Two blueprints with equal prices share a key regardless of their ids.
func Key(bp *blueprint.Blueprint, horizon int) string {
	return keyOf(fingerprintOf(bp, horizon))
}

func keyOf(fp fingerprint) string {
	return strconv.FormatUint(xxhash.Sum64(fp[:]), 16)
}

func fingerprintOf(bp *blueprint.Blueprint, horizon int) fingerprint {
	var buf fingerprint
	var (
		robot blueprint.Resource
		r     int
	)
	for robot = blueprint.Ore; robot <= blueprint.Geode; robot++ {
		cost := bp.Cost(robot)
		for r = 0; r < blueprint.NumResources; r++ {
			buf[int(robot)*blueprint.NumResources+r] = byte(cost[r]) // costs ≤ MaxCost fit a byte
		}
	}
	buf[len(buf)-1] = byte(horizon) // horizons ≤ search.MaxHorizon fit a byte

	return buf
}

// Get returns the cached yield of bp at horizon. An entry stored under the
// same key for different prices is a miss.
func (c *Cache) Get(bp *blueprint.Blueprint, horizon int) (int, bool) {
	fp := fingerprintOf(bp, horizon)
	v, ok := c.store.Get(keyOf(fp))
	if !ok {
		return 0, false
	}
	e, ok := v.(entry)
	if !ok || e.fp != fp {
		return 0, false
	}

	return e.yield, true
}

// Put stores the yield of bp at horizon with the default expiration,
// replacing whatever shared its key.
func (c *Cache) Put(bp *blueprint.Blueprint, horizon, yield int) {
	fp := fingerprintOf(bp, horizon)
	c.store.Set(keyOf(fp), entry{fp: fp, yield: yield}, cache.DefaultExpiration)
}

// Len returns the number of stored entries, including expired ones not yet
// swept.
func (c *Cache) Len() int { return c.store.ItemCount() }

// Flush drops every entry.
func (c *Cache) Flush() { c.store.Flush() }
