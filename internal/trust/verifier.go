package trust

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Verifier answers publisher trust questions for one audit run. Verified
// owners are cached and never queried again; negative or failed lookups are
// retried on the next reference from the same owner. Lookups for one owner
// run one at a time, each for its own action.
type Verifier struct {
	source PublisherTrustSource
	cache  *Cache
	logger *zap.Logger

	mu     sync.Mutex
	owners map[string]*sync.Mutex
}

func NewVerifier(source PublisherTrustSource, cache *Cache, logger *zap.Logger) *Verifier {
	if cache == nil {
		cache = NewCache()
	}
	return &Verifier{
		source: source,
		cache:  cache,
		logger: logger,
		owners: make(map[string]*sync.Mutex),
	}
}

func (v *Verifier) IsVerified(ctx context.Context, owner, action string) bool {
	if v.cache.IsVerified(owner) {
		return true
	}

	lock := v.ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	if v.cache.IsVerified(owner) {
		return true
	}

	ok, err := v.source.Verify(ctx, owner, action)
	if err != nil {
		v.logger.Warn("could not verify publisher",
			zap.String("owner", owner),
			zap.String("action", action),
			zap.Error(err),
		)
		return false
	}

	if ok {
		v.cache.MarkVerified(owner)
	}
	return ok
}

func (v *Verifier) ownerLock(owner string) *sync.Mutex {
	v.mu.Lock()
	defer v.mu.Unlock()

	lock, ok := v.owners[owner]
	if !ok {
		lock = &sync.Mutex{}
		v.owners[owner] = lock
	}
	return lock
}
