package parser

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/amirhossein-jamali/time-calculator/internal/domain/entity"
	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
)

// CacheRecorder is notified of cache lookups
type CacheRecorder interface {
	CacheHit()
	CacheMiss()
}

// RegexParser parses duration phrases with the entity keyword patterns
type RegexParser struct{}

// NewRegexParser creates an uncached parser
func NewRegexParser() core.DurationParser {
	return RegexParser{}
}

// Parse implements core.DurationParser
func (RegexParser) Parse(text string) (entity.Duration, error) {
	return entity.ParseDuration(text)
}

type cachedResult struct {
	duration entity.Duration
	err      error
}

// CachedParser memoizes another parser in a fixed-size LRU keyed by the normalized phrase
type CachedParser struct {
	next     core.DurationParser
	cache    *lru.Cache[string, cachedResult]
	recorder CacheRecorder
}

// NewCachedParser wraps next with an LRU of the given size. recorder may be nil.
func NewCachedParser(next core.DurationParser, size int, recorder CacheRecorder) (*CachedParser, error) {
	cache, err := lru.New[string, cachedResult](size)
	if err != nil {
		return nil, err
	}
	return &CachedParser{next: next, cache: cache, recorder: recorder}, nil
}

// Parse implements core.DurationParser. Callers receive their own copy of the result.
func (p *CachedParser) Parse(text string) (entity.Duration, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if cached, ok := p.cache.Get(key); ok {
		if p.recorder != nil {
			p.recorder.CacheHit()
		}
		return clone(cached.duration), cached.err
	}
	if p.recorder != nil {
		p.recorder.CacheMiss()
	}

	d, err := p.next.Parse(text)
	p.cache.Add(key, cachedResult{duration: clone(d), err: err})
	return d, err
}

// Len returns the number of cached phrases
func (p *CachedParser) Len() int {
	return p.cache.Len()
}

func clone(d entity.Duration) entity.Duration {
	if d == nil {
		return nil
	}
	out := make(entity.Duration, len(d))
	for u, n := range d {
		out[u] = n
	}
	return out
}
