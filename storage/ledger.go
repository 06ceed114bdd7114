package storage

import "sync"

// Ledger remembers which videos have been announced. It is consulted before
// and updated strictly after a successful delivery, so a failed send stays
// eligible for the next pass.
type Ledger interface {
	Contains(key string) bool
	Record(key string)
}

// MemoryLedger is the default ledger. It is scoped to the process lifetime,
// a restart forgets all history and may re-announce videos.
type MemoryLedger struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		keys: make(map[string]struct{}),
	}
}

func (l *MemoryLedger) Contains(key string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.keys[key]

	return ok
}

func (l *MemoryLedger) Record(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys[key] = struct{}{}
}
