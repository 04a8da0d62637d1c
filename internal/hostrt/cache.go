// Package hostrt implements a minimal host for the Glas interpreter: the
// log and load effect handlers described in spec.md section 6, bound
// together behind a transactional interp.Sink.
package hostrt

import (
	"github.com/dolthub/swiss"

	"github.com/glas-lang/glas/lang/value"
)

// moduleCache memoizes resolved module values by a "kind:name" string built
// from the reference ({global:name}, {local:name}, dict, {dict:name}),
// grounded on the teacher's lang/machine/map.go wrapper around the same hash
// table: module resolution can be arbitrarily expensive (parsing, compiling,
// running a loader module).
type moduleCache struct {
	m *swiss.Map[string, *cacheEntry]
}

// cacheEntry distinguishes a cached resolution failure from "not yet
// resolved": a ref that failed to resolve should keep failing without
// re-running the resolver on every subsequent load.
type cacheEntry struct {
	err error
	val *value.Value
}

func newModuleCache() *moduleCache {
	return &moduleCache{m: swiss.NewMap[string, *cacheEntry](16)}
}

func (c *moduleCache) get(key string) (*cacheEntry, bool) {
	return c.m.Get(key)
}

func (c *moduleCache) put(key string, e *cacheEntry) {
	c.m.Put(key, e)
}
