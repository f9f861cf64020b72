package grammar

import (
	"fmt"
	"regexp"
	"runtime"
	"sync"
	"weak"

	"golang.org/x/sync/singleflight"
)

// compiledPattern is one memoized (theme instance, template) compilation.
type compiledPattern struct {
	Source string
	Re     *regexp.Regexp
	Err    error
}

// PatternCache memoizes compiled patterns per theme instance. Identity, not
// structural equality, keys the cache: two equal snapshots built separately
// are independent entries, so a config reload never shares stale state.
// Entries are weakly associated with their theme and dropped when the theme
// itself becomes collectable.
type PatternCache struct {
	mu     sync.Mutex
	themes map[weak.Pointer[Theme]]map[string]*compiledPattern
	flight singleflight.Group
}

// NewPatternCache returns an empty cache.
func NewPatternCache() *PatternCache {
	return &PatternCache{themes: make(map[weak.Pointer[Theme]]map[string]*compiledPattern)}
}

// DefaultCache is the process-wide cache used when callers don't carry
// their own.
var DefaultCache = NewPatternCache()

// Compile returns the compiled matcher for a leaf template under the given
// theme. The first caller per (theme, template) pair compiles once; racing
// callers wait for that result instead of recompiling. A nil regexp with a
// nil error means the template matches nothing under this theme.
func (c *PatternCache) Compile(theme *Theme, template string) (*regexp.Regexp, error) {
	key := weak.Make(theme)

	c.mu.Lock()
	entries, ok := c.themes[key]
	if !ok {
		entries = make(map[string]*compiledPattern)
		c.themes[key] = entries
		runtime.AddCleanup(theme, func(k weak.Pointer[Theme]) {
			c.mu.Lock()
			delete(c.themes, k)
			c.mu.Unlock()
		}, key)
	}
	if e, hit := entries[template]; hit {
		c.mu.Unlock()
		return e.Re, e.Err
	}
	c.mu.Unlock()

	v, _, _ := c.flight.Do(flightKey(theme, template), func() (any, error) {
		c.mu.Lock()
		if e, hit := c.themes[key][template]; hit {
			c.mu.Unlock()
			return e, nil
		}
		c.mu.Unlock()

		e := &compiledPattern{Source: CompilePattern(theme, template)}
		if e.Source != "" {
			e.Re, e.Err = regexp.Compile(e.Source)
		}

		c.mu.Lock()
		if m := c.themes[key]; m != nil {
			m[template] = e
		}
		c.mu.Unlock()
		return e, nil
	})

	e := v.(*compiledPattern)
	return e.Re, e.Err
}

// Source returns the compiled pattern text, compiling if needed. Exposed for
// inspection and tests; byte-identical results for the same theme instance.
func (c *PatternCache) Source(theme *Theme, template string) string {
	_, _ = c.Compile(theme, template)
	key := weak.Make(theme)
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.themes[key][template]; ok {
		return e.Source
	}
	return ""
}

// flightKey is unique per live theme instance. The pointer text is only used
// while a strong reference is held, so address reuse cannot mix instances.
func flightKey(theme *Theme, template string) string {
	return fmt.Sprintf("%p|%s", theme, template)
}
