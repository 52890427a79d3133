package parser

import "sync"

const cacheLimit = 256

type cacheKey struct {
	format string
	config Config
}

// patternCache keeps recent compilations for the package-level functions.
// Patterns compiled with extra types are not cached since their converters
// are scoped to a single call.
type patternCache struct {
	mu       sync.RWMutex
	patterns map[cacheKey]*Pattern
}

var compiled = &patternCache{patterns: make(map[cacheKey]*Pattern)}

func cachedCompile(format string, opts []Option) (*Pattern, error) {
	s := newSettings(opts)
	if len(s.extra) > 0 {
		return Compile(format, opts...)
	}

	key := cacheKey{format: format, config: s.config}
	if p := compiled.get(key); p != nil {
		return p, nil
	}

	p, err := Compile(format, opts...)
	if err != nil {
		return nil, err
	}
	compiled.put(key, p)
	return p, nil
}

func (c *patternCache) get(key cacheKey) *Pattern {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.patterns[key]
}

func (c *patternCache) put(key cacheKey, p *Pattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.patterns) >= cacheLimit {
		clear(c.patterns)
	}
	c.patterns[key] = p
}
