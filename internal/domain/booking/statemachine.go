package booking

import (
	"errors"

	"github.com/google/uuid"

	"pourup/internal/domain/user"
	"pourup/internal/pkg/clock"
)

var (
	ErrInvalidTransition      = errors.New("status transition not allowed from current status")
	ErrUnauthorizedTransition = errors.New("actor is not authorized for this transition")
)

// Actor is the authenticated principal attempting a transition, together with
// the outlets it is assigned to manage. The assignment set is loaded by the
// caller; the policy only consults it.
type Actor struct {
	ID             uuid.UUID
	Role           user.Role
	ManagedOutlets []uuid.UUID
}

func (a Actor) ManagesOutlet(outletID uuid.UUID) bool {
	for _, id := range a.ManagedOutlets {
		if id == outletID {
			return true
		}
	}
	return false
}

// TransitionPolicy centralizes the role and ownership checks for status
// changes so handlers never re-derive them.
type TransitionPolicy interface {
	Authorize(actor Actor, b *Booking, to Status) error
}

// RolePolicy is the standard policy: managers assigned to the booking's outlet
// drive the confirm/reject/complete lifecycle; cancellation is open to the
// booking's own user as well as an assigned manager.
type RolePolicy struct{}

func NewRolePolicy() RolePolicy {
	return RolePolicy{}
}

func (RolePolicy) Authorize(actor Actor, b *Booking, to Status) error {
	switch to {
	case StatusConfirmed, StatusRejected, StatusCompleted:
		if actor.Role.CanManageOutlets() && actor.ManagesOutlet(b.OutletID()) {
			return nil
		}
		return ErrUnauthorizedTransition
	case StatusCancelled:
		if actor.ID == b.UserID() {
			return nil
		}
		if actor.Role.CanManageOutlets() && actor.ManagesOutlet(b.OutletID()) {
			return nil
		}
		return ErrUnauthorizedTransition
	default:
		return ErrInvalidTransition
	}
}

// StateMachine is the only mutation path for Booking.status.
type StateMachine struct {
	clock  clock.Clock
	policy TransitionPolicy
}

func NewStateMachine(clock clock.Clock, policy TransitionPolicy) *StateMachine {
	return &StateMachine{clock: clock, policy: policy}
}

// Transition validates reachability against the transition table, then the
// actor against the policy, and only then mutates the booking. On success the
// booking records the actor as updated_by and optionally takes new notes.
func (m *StateMachine) Transition(b *Booking, to Status, actor Actor, notes *string) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !b.Status().CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	if err := m.policy.Authorize(actor, b, to); err != nil {
		return err
	}

	b.applyTransition(to, actor.ID, notes, m.clock.Now())
	return nil
}
