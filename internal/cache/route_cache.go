package cache

import "sync"

// Invalidator is the narrow interface mutation flows depend on: mark every
// cached rendering of a route stale. Handlers receive it explicitly so tests
// can swap in doubles.
type Invalidator interface {
	Invalidate(routeKey string)
}

// RouteCache keeps rendered responses keyed by route and request URI. It is
// process-local; invalidation drops the whole route at once because a single
// mutation can change any page of the listing.
type RouteCache struct {
	mu     sync.RWMutex
	routes map[string]map[string][]byte
}

func NewRouteCache() *RouteCache {
	return &RouteCache{routes: map[string]map[string][]byte{}}
}

// Get returns the cached body for a request URI under a route, if any.
func (c *RouteCache) Get(routeKey, requestURI string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, ok := c.routes[routeKey]
	if !ok {
		return nil, false
	}
	body, ok := entries[requestURI]
	return body, ok
}

// Put stores a rendered body for a request URI under a route.
func (c *RouteCache) Put(routeKey, requestURI string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.routes[routeKey]
	if !ok {
		entries = map[string][]byte{}
		c.routes[routeKey] = entries
	}
	entries[requestURI] = body
}

// Invalidate drops every cached rendering of the route.
func (c *RouteCache) Invalidate(routeKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.routes, routeKey)
}
