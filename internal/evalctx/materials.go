package evalctx

import "sync"

// MaterialRegistry records, for every Tagged node evaluated, which kernel
// original-IDs were stamped under its tag key (spec §4.4). Exporters read
// this back to build property-group / material assignments per part.
type MaterialRegistry struct {
	mu   sync.Mutex
	byID map[string][]int
}

func newMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{byID: make(map[string][]int)}
}

// Record associates id with key. Called once per Tagged node evaluation,
// after the kernel has assigned id to the tagged subtree's faces.
func (r *MaterialRegistry) Record(key string, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[key] = append(r.byID[key], id)
}

// IDsForKey returns the original-IDs recorded under key, in recording
// order. The returned slice is a copy; callers may not mutate the
// registry's state through it.
func (r *MaterialRegistry) IDsForKey(key string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.byID[key]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// Keys returns every tag key that has at least one recorded ID, in no
// particular order.
func (r *MaterialRegistry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.byID))
	for k := range r.byID {
		keys = append(keys, k)
	}
	return keys
}
