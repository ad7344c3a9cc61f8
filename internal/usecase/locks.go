package usecase

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// lockRegistry maps account IDs to their mutexes. Locks are created
// lazily on first use and shared by every caller referencing the same
// account id; LoadOrStore guarantees a single mutex per account even when
// two transfers race to create it.
type lockRegistry struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{}
}

func (r *lockRegistry) get(id uuid.UUID) *sync.Mutex {
	if mu, ok := r.locks.Load(id); ok {
		return mu.(*sync.Mutex)
	}

	mu, _ := r.locks.LoadOrStore(id, &sync.Mutex{})

	return mu.(*sync.Mutex)
}

// lockPair acquires the mutexes of both accounts in a total order
// independent of transfer direction (smaller UUID string first), which is
// what prevents deadlock between two opposite-direction transfers on the
// same pair. The returned func releases both locks in reverse order.
func (r *lockRegistry) lockPair(a, b uuid.UUID) func() {
	if a == b {
		mu := r.get(a)
		mu.Lock()

		return mu.Unlock
	}

	first, second := a, b
	if strings.Compare(a.String(), b.String()) > 0 {
		first, second = b, a
	}

	firstMu := r.get(first)
	secondMu := r.get(second)

	firstMu.Lock()
	secondMu.Lock()

	return func() {
		secondMu.Unlock()
		firstMu.Unlock()
	}
}
