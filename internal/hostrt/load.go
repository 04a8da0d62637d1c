package hostrt

import (
	"fmt"

	"github.com/glas-lang/glas/lang/value"
)

// Resolver supplies the module environment backing the load effect: kind is
// one of "global", "local" or "dict", and name is empty for the bare dict
// reference. It is the host-provided counterpart to the teacher's
// Thread.Load callback, generalized from a single string to the ref shapes
// of spec.md section 6.
type Resolver func(kind, name string) (*value.Value, error)

// decodeRef recognizes the four ref shapes load accepts: {global:name},
// {local:name}, dict, and {dict:name}.
func decodeRef(ref *value.Value) (kind, name string, ok bool) {
	if sym, ok := value.ToSymbol(ref); ok && sym == "dict" {
		return "dict", "", true
	}
	if body, ok := value.RecordLookup(value.OfSymbol("global"), ref); ok {
		if name, ok := value.ToSymbol(body); ok {
			return "global", name, true
		}
		return "", "", false
	}
	if body, ok := value.RecordLookup(value.OfSymbol("local"), ref); ok {
		if name, ok := value.ToSymbol(body); ok {
			return "local", name, true
		}
		return "", "", false
	}
	if body, ok := value.RecordLookup(value.OfSymbol("dict"), ref); ok {
		if name, ok := value.ToSymbol(body); ok {
			return "dict", name, true
		}
		return "", "", false
	}
	return "", "", false
}

func (h *Host) handleLoad(ref *value.Value) (*value.Value, bool) {
	kind, name, ok := decodeRef(ref)
	if !ok {
		return nil, false
	}
	key := fmt.Sprintf("%s:%s", kind, name)
	if e, found := h.cache.get(key); found {
		if e.err != nil {
			return nil, false
		}
		return e.val, true
	}
	if h.Resolve == nil {
		h.cache.put(key, &cacheEntry{err: fmt.Errorf("hostrt: no resolver configured for %s", key)})
		return nil, false
	}
	v, err := h.Resolve(kind, name)
	if err != nil {
		h.cache.put(key, &cacheEntry{err: err})
		return nil, false
	}
	h.cache.put(key, &cacheEntry{val: v})
	return v, true
}
