package storylocation

import (
	"github.com/puzpuzpuz/xsync"
)

// CachingResolver memoizes successful resolutions of another Resolver.
// Failed resolutions are not cached.
type CachingResolver struct {
	delegate  Resolver
	locations *xsync.MapOf[string, Location]
}

var _ Resolver = (*CachingResolver)(nil)

// NewCachingResolver wraps delegate with a cache safe for concurrent use.
func NewCachingResolver(delegate Resolver) *CachingResolver {
	return &CachingResolver{
		delegate:  delegate,
		locations: xsync.NewMapOf[Location](),
	}
}

// Resolve implements Resolver.
func (r *CachingResolver) Resolve(storyPath string) (Location, error) {
	if loc, ok := r.locations.Load(storyPath); ok {
		return loc, nil
	}
	loc, err := r.delegate.Resolve(storyPath)
	if err != nil {
		return Location{}, err
	}
	r.locations.Store(storyPath, loc)
	return loc, nil
}
