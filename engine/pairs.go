package engine

import (
	"fmt"

	"github.com/lixenwraith/halfblock/surface"
)

// PairCache maps (foreground, background) colors to surface attribute pairs
// Each distinct pair is registered with the surface once and never evicted
// Not safe for concurrent use: owned by the loop goroutine
type PairCache struct {
	surf     surface.Surface
	colors   int
	capacity int
	defined  []bool // indexed by pair key
	count    int
}

// NewPairCache sizes the cache from the surface palette and pair capacity
func NewPairCache(s surface.Surface) *PairCache {
	capacity := s.PairCapacity()
	if capacity < 0 {
		capacity = 0
	}
	return &PairCache{
		surf:     s,
		colors:   s.Colors(),
		capacity: capacity,
		defined:  make([]bool, capacity),
	}
}

// Key returns the deterministic pair key; 0 is reserved for the surface default
func (c *PairCache) Key(fg, bg surface.Color) int {
	return int(fg)*c.colors + int(bg) + 1
}

// Resolve returns the pair for (fg, bg), registering it on first use
// Panics with *PairError when the pair cannot be allocated
func (c *PairCache) Resolve(fg, bg surface.Color) surface.PairID {
	id, err := c.TryResolve(fg, bg)
	if err != nil {
		panic(err)
	}
	return id
}

// TryResolve is Resolve reporting allocation failure as a *PairError
func (c *PairCache) TryResolve(fg, bg surface.Color) (surface.PairID, error) {
	key := c.Key(fg, bg)

	if int(fg) >= c.colors || int(bg) >= c.colors {
		return 0, &PairError{Fg: fg, Bg: bg, Key: key, Err: ErrColorRange}
	}
	if key >= c.capacity {
		return 0, &PairError{Fg: fg, Bg: bg, Key: key, Err: ErrPairCapacity}
	}
	if c.defined[key] {
		return surface.PairID(key), nil
	}

	if err := c.surf.DefinePair(surface.PairID(key), fg, bg); err != nil {
		return 0, &PairError{Fg: fg, Bg: bg, Key: key, Err: fmt.Errorf("define pair: %w", err)}
	}
	c.defined[key] = true
	c.count++
	Logger().Debug("pair allocated", "fg", fg, "bg", bg, "key", key, "count", c.count)

	return surface.PairID(key), nil
}

// Len returns the number of registered pairs
func (c *PairCache) Len() int {
	return c.count
}

// Capacity returns the exclusive upper bound of pair keys
func (c *PairCache) Capacity() int {
	return c.capacity
}
