// Package cache provides a small generic LRU cache.
//
// The relief renderer uses it to keep the derived fields of recently used
// masks (gray field, distance field) and the blur kernels, so that shading
// many product photos with the same decal does not rebuild them each time.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
