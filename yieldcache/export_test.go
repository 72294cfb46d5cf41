package yieldcache

import (
	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/foundry/blueprint"
)

// StoreUnderKeyOf files yield for (bp, horizon) under the key of
// (owner, ownerHorizon), as a hash collision would.
func (c *Cache) StoreUnderKeyOf(owner *blueprint.Blueprint, ownerHorizon int, bp *blueprint.Blueprint, horizon, yield int) {
	c.store.Set(Key(owner, ownerHorizon), entry{fp: fingerprintOf(bp, horizon), yield: yield}, cache.DefaultExpiration)
}
