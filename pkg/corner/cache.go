package corner

import "github.com/go-drift/freecorner/pkg/graphics"

type cacheKey struct {
	width, height float64
	radii         Radii
}

// PathCache memoizes the most recent BuildPath result, keyed by size and
// radii. Any change to the key rebuilds the path on the next lookup.
// The zero value is ready to use.
type PathCache struct {
	key    cacheKey
	path   *graphics.Path
	builds int
}

// Path returns the cached path for the key, building it if the key changed.
// Errors are not cached.
func (c *PathCache) Path(width, height float64, radii Radii) (*graphics.Path, error) {
	key := cacheKey{width: width, height: height, radii: radii}
	if c.path != nil && c.key == key {
		return c.path, nil
	}
	path, err := BuildPath(width, height, radii)
	if err != nil {
		c.Invalidate()
		return nil, err
	}
	c.key = key
	c.path = path
	c.builds++
	return path, nil
}

// Valid reports whether a lookup with this key would hit.
func (c *PathCache) Valid(width, height float64, radii Radii) bool {
	return c.path != nil && c.key == cacheKey{width: width, height: height, radii: radii}
}

// Invalidate drops the cached path.
func (c *PathCache) Invalidate() {
	c.path = nil
	c.key = cacheKey{}
}

// Builds returns how many paths the cache has built.
func (c *PathCache) Builds() int {
	return c.builds
}
