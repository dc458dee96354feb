// Package guard implements the confirmation gate placed in front of
// destructive actions. A gate holds at most one pending action; the action
// only runs after an explicit Confirm, and Cancel discards it with no side
// effect.
package guard

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Action is the destructive operation protected by the gate.
type Action func(ctx context.Context) error

// Sentinel errors for gate misuse.
var (
	ErrAlreadyPending = errors.New("a confirmation is already pending")
	ErrNothingPending = errors.New("no confirmation is pending")
)

// Prompt describes the pending action to whoever must confirm it.
type Prompt struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Gate guards one destructive action behind explicit confirmation.
// The zero value is ready to use.
type Gate struct {
	mu      sync.Mutex
	pending Action
	prompt  Prompt
}

// Request arms the gate with an action and its prompt. Only one action may
// be pending at a time; a second Request before Confirm/Cancel fails.
func (g *Gate) Request(action Action, title, message string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending != nil {
		return ErrAlreadyPending
	}

	g.pending = action
	g.prompt = Prompt{Title: title, Message: message}

	return nil
}

// Pending returns the prompt of the armed action, if any.
func (g *Gate) Pending() (Prompt, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.prompt, g.pending != nil
}

// Confirm runs the pending action exactly once and clears the gate.
// The gate is cleared even when the action fails; retrying requires a new
// Request.
func (g *Gate) Confirm(ctx context.Context) error {
	g.mu.Lock()
	action := g.pending
	g.pending = nil
	g.prompt = Prompt{}
	g.mu.Unlock()

	if action == nil {
		return ErrNothingPending
	}

	return action(ctx)
}

// Cancel discards the pending action with no side effect. Cancelling an
// idle gate is a no-op.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending = nil
	g.prompt = Prompt{}
}
