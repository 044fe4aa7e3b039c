// Package session holds the round lifecycle shared by both games: the
// state machine that pauses the clock while a decision is pending, and the
// prioritized end-of-round evaluation.
package session

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle move is not allowed from
// the current state.
var ErrInvalidTransition = errors.New("session: invalid transition")

// State is the lifecycle state of a round.
type State int

const (
	Active     State = iota // Ticking
	Suspended               // Waiting on a decision; no ticks elapse
	Ended                   // End condition fired; summary is showing
	Terminated              // Player declined to play again
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Suspended:
		return "suspended"
	case Ended:
		return "ended"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Lifecycle tracks one round from start to its end condition, and the
// resets that start the next round.
type Lifecycle struct {
	state  State
	reason Reason
	ticks  int
}

// New returns an active lifecycle.
func New() *Lifecycle {
	return &Lifecycle{state: Active}
}

// State returns the current state.
func (l *Lifecycle) State() State { return l.state }

// Reason returns why the round ended, or None while it runs.
func (l *Lifecycle) Reason() Reason { return l.reason }

// Ticks returns how many ticks ran in this round.
func (l *Lifecycle) Ticks() int { return l.ticks }

// Running reports whether the round should be ticked.
func (l *Lifecycle) Running() bool { return l.state == Active }

// Tick counts one simulated tick. It reports false, and counts nothing,
// unless the round is active.
func (l *Lifecycle) Tick() bool {
	if l.state != Active {
		return false
	}
	l.ticks++
	return true
}

// Suspend pauses the round while a decision prompt is open.
func (l *Lifecycle) Suspend() error {
	return l.move(Active, Suspended)
}

// Resume continues the round after the decision.
func (l *Lifecycle) Resume() error {
	return l.move(Suspended, Active)
}

// End stops the round for the given reason.
func (l *Lifecycle) End(reason Reason) error {
	if reason == None {
		return fmt.Errorf("%w: end without a reason", ErrInvalidTransition)
	}
	if err := l.move(Active, Ended); err != nil {
		return err
	}
	l.reason = reason
	return nil
}

// Reset starts a fresh round after the previous one ended.
func (l *Lifecycle) Reset() error {
	if err := l.move(Ended, Active); err != nil {
		return err
	}
	l.reason = None
	l.ticks = 0
	return nil
}

// Terminate records that the player quit after a round ended.
func (l *Lifecycle) Terminate() error {
	return l.move(Ended, Terminated)
}

func (l *Lifecycle) move(from, to State) error {
	if l.state != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.state, to)
	}
	l.state = to
	return nil
}
