package checkout

import (
	"sync"
	"time"
)

// pendingStore keeps open checkouts for ttl and completed ones for
// completedTTL after completion, so a replayed return URL is answered from
// the first result.
type pendingStore struct {
	mu           sync.Mutex
	ttl          time.Duration
	completedTTL time.Duration
	now          func() time.Time
	items        map[string]*PendingCheckout
}

func newPendingStore(ttl, completedTTL time.Duration, now func() time.Time) *pendingStore {
	return &pendingStore{
		ttl:          ttl,
		completedTTL: completedTTL,
		now:          now,
		items:        make(map[string]*PendingCheckout),
	}
}

func (p *pendingStore) put(pc *PendingCheckout) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sweepLocked()
	p.items[pc.PaymentSessionID] = pc
}

func (p *pendingStore) get(id string) (*PendingCheckout, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sweepLocked()
	pc, ok := p.items[id]
	return pc, ok
}

// markCompleted stores the result, creating a marker when the open record
// had already expired.
func (p *pendingStore) markCompleted(pc *PendingCheckout, res CompleteResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pc.completed = &res
	pc.completedAt = p.now()
	p.items[pc.PaymentSessionID] = pc
}

func (p *pendingStore) sweepLocked() {
	now := p.now()
	for id, pc := range p.items {
		if pc.completed != nil {
			if p.completedTTL > 0 && pc.completedAt.Before(now.Add(-p.completedTTL)) {
				delete(p.items, id)
			}
			continue
		}
		if p.ttl > 0 && pc.CreatedAt.Before(now.Add(-p.ttl)) {
			delete(p.items, id)
		}
	}
}
