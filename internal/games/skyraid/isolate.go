package skyraid

import (
	"errors"
	"fmt"
)

var (
	// ErrEntityFault wraps failures raised by a single entity or entity pair.
	ErrEntityFault = errors.New("skyraid: entity fault")

	// ErrFrameFault wraps failures that escaped entity isolation.
	ErrFrameFault = errors.New("skyraid: frame fault")

	// ErrUnknownEnemy is returned when an enemy type has no configuration.
	ErrUnknownEnemy = errors.New("skyraid: unknown enemy type")

	// ErrUnknownPowerup is returned when a pickup type has no effect.
	ErrUnknownPowerup = errors.New("skyraid: unknown powerup type")
)

// safeCall runs fn and converts a panic into an error wrapping ErrEntityFault.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrEntityFault, r)
		}
	}()
	return fn()
}

// Guard runs one operation for entity e. If fn fails or panics the failure
// is logged under op and e is force-destroyed; the caller carries on with
// the remaining entities. Guard reports whether fn succeeded.
func (w *World) Guard(op string, e *Entity, fn func() error) bool {
	err := safeCall(fn)
	if err == nil {
		return true
	}

	w.Faults++
	w.log.Error("entity operation failed",
		"op", op,
		"kind", e.Kind.String(),
		"entity", e.ID,
		"err", err,
	)
	e.Destroy()
	return false
}

// GuardPair is Guard for a collision pair. On failure every participant
// except the player is force-destroyed; the player only leaves the
// simulation by losing its lives.
func (w *World) GuardPair(op string, a, b *Entity, fn func() error) bool {
	err := safeCall(fn)
	if err == nil {
		return true
	}

	w.Faults++
	w.log.Error("collision resolution failed",
		"op", op,
		"kind_a", a.Kind.String(),
		"a", a.ID,
		"kind_b", b.Kind.String(),
		"b", b.ID,
		"err", err,
	)
	for _, e := range [2]*Entity{a, b} {
		if e.Kind != KindPlayer {
			e.Destroy()
		}
	}
	return false
}
