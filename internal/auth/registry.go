package auth

import "sync"

// TokenRegistry is a fixed-capacity FIFO set of opaque tokens. Inserting
// beyond capacity evicts the oldest entry. Membership tests and inserts
// are O(1); eviction order is insertion order.
type TokenRegistry struct {
	mu       sync.Mutex
	capacity int
	order    []string
	members  map[string]struct{}
}

// NewTokenRegistry constructs a registry holding at most capacity tokens.
func NewTokenRegistry(capacity int) *TokenRegistry {
	if capacity < 1 {
		capacity = 1
	}
	return &TokenRegistry{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		members:  make(map[string]struct{}, capacity),
	}
}

// Add inserts a token, evicting the oldest entry when the registry is full.
func (t *TokenRegistry) Add(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.members[token]; ok {
		return
	}
	if len(t.order) == t.capacity {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.members, oldest)
	}
	t.order = append(t.order, token)
	t.members[token] = struct{}{}
}

// Contains reports whether token is currently registered.
func (t *TokenRegistry) Contains(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.members[token]
	return ok
}

// Remove deletes token from the registry, reporting whether it was present.
func (t *TokenRegistry) Remove(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.members[token]; !ok {
		return false
	}
	delete(t.members, token)
	for i, v := range t.order {
		if v == token {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered tokens.
func (t *TokenRegistry) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}
