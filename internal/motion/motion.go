// Package motion carries the process-wide "prefers reduced motion" flag.
package motion

import (
	"os"
	"strings"
	"sync"
)

// EnvVar, when set to a truthy value, starts the preference reduced.
const EnvVar = "PREFERS_REDUCED_MOTION"

// Source exposes the preference and notifies subscribers when it flips.
type Source interface {
	ReducedMotion() bool
	Subscribe(fn func(reduced bool)) (cancel func())
}

// Preference is a Source whose value is set by the host.
type Preference struct {
	mu      sync.Mutex
	reduced bool
	subs    map[int]func(bool)
	next    int
}

var _ Source = (*Preference)(nil)

// NewPreference returns a Preference starting at reduced. The zero value
// is also ready to use and starts unreduced.
func NewPreference(reduced bool) *Preference {
	return &Preference{reduced: reduced, subs: make(map[int]func(bool))}
}

// FromEnv reads EnvVar. Accepts 1, true, yes, reduce (any case).
func FromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvVar))) {
	case "1", "true", "yes", "reduce":
		return true
	}
	return false
}

// ReducedMotion reports the current value.
func (p *Preference) ReducedMotion() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reduced
}

// Set updates the preference. Subscribers run synchronously, outside the
// lock, and only when the value actually changes.
func (p *Preference) Set(reduced bool) {
	p.mu.Lock()
	fns := p.update(reduced)
	p.mu.Unlock()
	notify(fns, reduced)
}

// Toggle flips the preference and returns the new value.
func (p *Preference) Toggle() bool {
	p.mu.Lock()
	v := !p.reduced
	fns := p.update(v)
	p.mu.Unlock()
	notify(fns, v)
	return v
}

// update stores reduced and returns the subscribers to notify, or nil if
// nothing changed. Callers hold mu.
func (p *Preference) update(reduced bool) []func(bool) {
	if p.reduced == reduced {
		return nil
	}
	p.reduced = reduced
	fns := make([]func(bool), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	return fns
}

func notify(fns []func(bool), reduced bool) {
	for _, fn := range fns {
		fn(reduced)
	}
}

// Subscribe registers fn for changes. The returned func removes it.
func (p *Preference) Subscribe(fn func(bool)) func() {
	p.mu.Lock()
	if p.subs == nil {
		p.subs = make(map[int]func(bool))
	}
	id := p.next
	p.next++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}
