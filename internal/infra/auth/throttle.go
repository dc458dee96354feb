package auth

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts is the number of consecutive failed logins
	// tolerated before the cooldown starts.
	DefaultMaxAttempts = 5
	// DefaultCooldown is how long logins stay blocked once the attempt
	// budget is exhausted.
	DefaultCooldown = 30 * time.Second
)

type throttleEntry struct {
	failures    int
	blockedTill time.Time
}

// LoginThrottle tracks consecutive failed logins per account and blocks
// further attempts for a cooldown period once the limit is hit. State is
// in-memory; a restart clears it, which is acceptable for a single admin
// backend.
type LoginThrottle struct {
	mu          sync.Mutex
	entries     map[string]*throttleEntry
	maxAttempts int
	cooldown    time.Duration

	now func() time.Time // injected for deterministic tests
}

// NewLoginThrottle builds a throttle. Non-positive arguments fall back to
// the defaults.
func NewLoginThrottle(maxAttempts int, cooldown time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}

	return &LoginThrottle{
		entries:     make(map[string]*throttleEntry),
		maxAttempts: maxAttempts,
		cooldown:    cooldown,
		now:         time.Now,
	}
}

// Allow reports whether a login attempt for the account may proceed. When
// blocked it returns the remaining cooldown.
func (t *LoginThrottle) Allow(account string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[account]
	if !ok {
		return 0, true
	}

	if remaining := entry.blockedTill.Sub(t.now()); remaining > 0 {
		return remaining, false
	}

	// Cooldown elapsed: the account gets a fresh attempt budget.
	if !entry.blockedTill.IsZero() {
		delete(t.entries, account)
	}

	return 0, true
}

// RecordFailure counts a failed attempt and starts the cooldown once the
// limit is reached.
func (t *LoginThrottle) RecordFailure(account string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[account]
	if !ok {
		entry = &throttleEntry{}
		t.entries[account] = entry
	}

	entry.failures++
	if entry.failures >= t.maxAttempts {
		entry.blockedTill = t.now().Add(t.cooldown)
		entry.failures = 0
	}
}

// RecordSuccess clears the failure history for the account.
func (t *LoginThrottle) RecordSuccess(account string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, account)
}
