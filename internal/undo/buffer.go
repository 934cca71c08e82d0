package undo

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

// Buffer keeps hard-deleted appointments around for a bounded window so
// a client can undo the delete. It is a session-scoped cache, never
// persisted: if the process dies, the records are gone.
type Buffer struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time // override in tests
}

type entry struct {
	ap        models.Appointment
	expiresAt time.Time
}

func New(ttl time.Duration) *Buffer {
	return &Buffer{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Put stores a copy of the deleted record and returns the undo token.
func (b *Buffer) Put(ap *models.Appointment) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.purge()

	token := uuid.NewString()
	b.entries[token] = entry{
		ap:        *ap,
		expiresAt: b.now().Add(b.ttl),
	}
	return token
}

// Take removes and returns the record for token. A token can be taken
// once; expired or unknown tokens return false.
func (b *Buffer) Take(token string) (*models.Appointment, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.purge()

	e, ok := b.entries[token]
	if !ok {
		return nil, false
	}
	delete(b.entries, token)

	ap := e.ap
	return &ap, true
}

// purge drops expired entries; callers hold the lock.
func (b *Buffer) purge() {
	now := b.now()
	for token, e := range b.entries {
		if !e.expiresAt.After(now) {
			delete(b.entries, token)
		}
	}
}
