package evalctx

import (
	"sync"

	"github.com/dshills/geocad/internal/geomerr"
	"github.com/dshills/geocad/internal/ir"
	"github.com/dshills/geocad/internal/kernel"
)

// externalRegistry holds the out-of-band bindings for Materialized/Raw IR
// nodes (spec §3): a Materialized node names a factory to invoke at most
// once; a Raw node names a value that already exists and is injected
// as-is. Both are looked up by ir.CacheKey rather than by node Hash, since
// the whole point is that two structurally distinct declarative calls can
// point at the same external key (e.g. the same imported file referenced
// from two places in the tree).
type externalRegistry[V any] struct {
	mu        sync.Mutex
	raw       map[ir.CacheKey]V
	factories map[ir.CacheKey]func() (V, error)
}

func newExternalRegistry[V any]() *externalRegistry[V] {
	return &externalRegistry[V]{
		raw:       make(map[ir.CacheKey]V),
		factories: make(map[ir.CacheKey]func() (V, error)),
	}
}

func (r *externalRegistry[V]) setRaw(key ir.CacheKey, v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw[key] = v
}

func (r *externalRegistry[V]) setFactory(key ir.CacheKey, f func() (V, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = f
}

func (r *externalRegistry[V]) resolveRaw(key ir.CacheKey) (V, error) {
	r.mu.Lock()
	v, ok := r.raw[key]
	r.mu.Unlock()
	if !ok {
		var zero V
		return zero, geomerr.InvalidConfigurationf("evalctx: no Raw value registered for key %s/%s", key.Namespace, key.ID)
	}
	return v, nil
}

func (r *externalRegistry[V]) resolveFactory(key ir.CacheKey) (func() (V, error), error) {
	r.mu.Lock()
	f, ok := r.factories[key]
	r.mu.Unlock()
	if !ok {
		return nil, geomerr.InvalidConfigurationf("evalctx: no Materialized factory registered for key %s/%s", key.Namespace, key.ID)
	}
	return f, nil
}

// RegisterRaw2D binds key to an already-computed 2D value (spec §3 Raw).
func (c *Context) RegisterRaw2D(key ir.CacheKey, v kernel.CrossSection2D) {
	c.external2D().setRaw(key, v)
}

// RegisterRaw3D is RegisterRaw2D's 3D counterpart.
func (c *Context) RegisterRaw3D(key ir.CacheKey, v kernel.Manifold3D) {
	c.external3D().setRaw(key, v)
}

// RegisterFactory2D binds key to a factory invoked at most once across
// this Context's lifetime (spec §3 Materialized).
func (c *Context) RegisterFactory2D(key ir.CacheKey, f func() (kernel.CrossSection2D, error)) {
	c.external2D().setFactory(key, f)
}

// RegisterFactory3D is RegisterFactory2D's 3D counterpart.
func (c *Context) RegisterFactory3D(key ir.CacheKey, f func() (kernel.Manifold3D, error)) {
	c.external3D().setFactory(key, f)
}

func (c *Context) ResolveRaw2D(key ir.CacheKey) (kernel.CrossSection2D, error) {
	return c.external2D().resolveRaw(key)
}

func (c *Context) ResolveRaw3D(key ir.CacheKey) (kernel.Manifold3D, error) {
	return c.external3D().resolveRaw(key)
}

func (c *Context) ResolveMaterialized2D(key ir.CacheKey) (kernel.CrossSection2D, error) {
	f, err := c.external2D().resolveFactory(key)
	if err != nil {
		return nil, err
	}
	return c.cache2D.Get(key.Hash(), f)
}

func (c *Context) ResolveMaterialized3D(key ir.CacheKey) (kernel.Manifold3D, error) {
	f, err := c.external3D().resolveFactory(key)
	if err != nil {
		return nil, err
	}
	return c.cache3D.Get(key.Hash(), f)
}
