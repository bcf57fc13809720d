// Package store is the shared state between the control loop and the
// software-PWM driver: the per-channel levels plus the frame rate,
// behind one mutex so every snapshot is internally consistent.
package store

import (
	"sync"

	"github.com/EHaake/hw3-rgbcal/types"
)

// Store holds the current calibration state. The control loop is the
// only writer, the PWM driver the only steady-state reader. Critical
// sections copy or mutate and nothing else; never compute while
// holding the lock.
type Store struct {
	mu    sync.Mutex
	state types.State
}

// New returns a store seeded with initial.
func New(initial types.State) *Store {
	return &Store{state: initial}
}

// Snapshot returns a consistent copy of the whole state.
func (s *Store) Snapshot() types.State {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()
	return st
}

// SetLevel updates one channel's brightness level.
func (s *Store) SetLevel(ch types.Channel, level types.Level) {
	s.mu.Lock()
	s.state.Levels[ch] = level
	s.mu.Unlock()
}

// SetFrameRate updates the PWM refresh rate.
func (s *Store) SetFrameRate(fr types.FrameRate) {
	s.mu.Lock()
	s.state.FrameRate = fr
	s.mu.Unlock()
}
