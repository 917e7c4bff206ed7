// Package registry implements the plugin contract from spec.md §6: a
// process-wide registrar that plugins populate during load, with
// atomic rollback when a single plugin's registrations turn out
// incomplete. Ported from the structure of
// Simulator/registration/AlgorithmRegistrar.{h,cpp} and
// GameManagerRegistrar.{h,cpp}; Go has no dynamic-library loading in
// the standard library portable across platforms, so the loader
// itself is a registration function plugins call directly rather than
// a `dlopen`-style mechanism (real dynamic loading is treated as an
// external collaborator).
package registry

import (
	"fmt"

	"github.com/ezynda3/tank-arena/internal/contracts"
	"github.com/ezynda3/tank-arena/internal/engine"
)

// BadRegistrationError reports an incomplete registration, mirroring
// the source's BadRegistrationException.
type BadRegistrationError struct {
	Name string
}

func (e *BadRegistrationError) Error() string {
	return fmt.Sprintf("bad registration: %s", e.Name)
}

// EngineFactory builds a fresh Engine for one match.
type EngineFactory func(verbose bool) *engine.Engine

type engineEntry struct {
	name    string
	factory EngineFactory
}

func (e engineEntry) isComplete() bool { return e.name != "" && e.factory != nil }

// EngineRegistrar collects engine factories registered by plugins.
type EngineRegistrar struct {
	entries []engineEntry
}

// CreateEntry opens a new, empty entry for the plugin currently
// loading, keyed by name.
func (r *EngineRegistrar) CreateEntry(name string) {
	r.entries = append(r.entries, engineEntry{name: name})
}

// SetFactory attaches a factory to the most recently created entry.
func (r *EngineRegistrar) SetFactory(factory EngineFactory) {
	if len(r.entries) == 0 {
		return
	}
	r.entries[len(r.entries)-1].factory = factory
}

// ValidateLast checks the most recent entry and removes it if
// incomplete, returning a BadRegistrationError naming it.
func (r *EngineRegistrar) ValidateLast() error {
	if len(r.entries) == 0 {
		return nil
	}
	last := r.entries[len(r.entries)-1]
	if last.isComplete() {
		return nil
	}
	name := last.name
	r.entries = r.entries[:len(r.entries)-1]
	return &BadRegistrationError{Name: name}
}

// RemoveLast discards the most recent entry unconditionally, for a
// caller that wants to roll back regardless of completeness.
func (r *EngineRegistrar) RemoveLast() {
	if len(r.entries) > 0 {
		r.entries = r.entries[:len(r.entries)-1]
	}
}

// Lookup finds a registered engine factory by name.
func (r *EngineRegistrar) Lookup(name string) (EngineFactory, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.factory, true
		}
	}
	return nil, false
}

// Names lists every currently registered engine name, in registration
// order.
func (r *EngineRegistrar) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

type algorithmEntry struct {
	name      string
	player    contracts.PlayerFactory
	algorithm contracts.TankAlgorithmFactory
}

func (e algorithmEntry) isComplete() bool { return e.player != nil && e.algorithm != nil }

// AlgorithmRegistrar collects algorithm name/Player/TankAlgorithm
// triples registered by plugins.
type AlgorithmRegistrar struct {
	entries []algorithmEntry
}

func (r *AlgorithmRegistrar) CreateEntry(name string) {
	r.entries = append(r.entries, algorithmEntry{name: name})
}

func (r *AlgorithmRegistrar) SetPlayerFactory(f contracts.PlayerFactory) {
	if len(r.entries) == 0 {
		return
	}
	r.entries[len(r.entries)-1].player = f
}

func (r *AlgorithmRegistrar) SetTankAlgorithmFactory(f contracts.TankAlgorithmFactory) {
	if len(r.entries) == 0 {
		return
	}
	r.entries[len(r.entries)-1].algorithm = f
}

func (r *AlgorithmRegistrar) ValidateLast() error {
	if len(r.entries) == 0 {
		return nil
	}
	last := r.entries[len(r.entries)-1]
	if last.isComplete() {
		return nil
	}
	name := last.name
	r.entries = r.entries[:len(r.entries)-1]
	return &BadRegistrationError{Name: name}
}

func (r *AlgorithmRegistrar) RemoveLast() {
	if len(r.entries) > 0 {
		r.entries = r.entries[:len(r.entries)-1]
	}
}

func (r *AlgorithmRegistrar) Lookup(name string) (contracts.PlayerFactory, contracts.TankAlgorithmFactory, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.player, e.algorithm, true
		}
	}
	return nil, nil, false
}

func (r *AlgorithmRegistrar) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *AlgorithmRegistrar) Len() int { return len(r.entries) }
