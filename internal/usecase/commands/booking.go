package commands

import (
	"context"

	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/user"
	reqdto "pourup/internal/handler/dto/request"
	"pourup/internal/infra"
	"pourup/internal/pkg/clock"
	"pourup/internal/pkg/config"
	"pourup/internal/pkg/errs"
	"pourup/internal/usecase/queries"
)

var (
	ErrExperienceNotFound      = errs.New("experience not found")
	ErrOutletNotFound          = errs.New("outlet not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCannotCancel            = errs.New("booking cannot be cancelled at this time")
	ErrStaleStatus             = errs.New("booking status changed concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, role user.Role, newStatus string, notes *string) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, userID uuid.UUID, role user.Role) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings       BookingRepository
	experiences    ExperienceRepository
	outlets        OutletRepository
	assignments    OutletAssignmentRepository
	evaluator      *booking.AvailabilityEvaluator
	stateMachine   *booking.StateMachine
	codes          booking.CodeGenerator
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	cfg            config.BookingConfig
}

func NewBookingCommands(
	bookings BookingRepository,
	experiences ExperienceRepository,
	outlets OutletRepository,
	assignments OutletAssignmentRepository,
	evaluator *booking.AvailabilityEvaluator,
	stateMachine *booking.StateMachine,
	codes booking.CodeGenerator,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:       bookings,
		experiences:    experiences,
		outlets:        outlets,
		assignments:    assignments,
		evaluator:      evaluator,
		stateMachine:   stateMachine,
		codes:          codes,
		bookingQueries: bookingQueries,
		clock:          clock,
		cfg:            cfg,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error) {
	exp, err := b.experiences.FindByID(ctx, req.ExperienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	out, err := b.outlets.FindByID(ctx, exp.OutletID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOutletNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	date, at, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	approval, err := b.evaluator.Evaluate(exp, out, date, at, req.PartySize)
	if err != nil {
		return nil, err
	}

	bookingID, err := b.persistWithUniqueCode(ctx, func(code string) *booking.Booking {
		return booking.NewBooking(
			userID,
			exp.ID(),
			exp.OutletID(),
			date,
			at,
			req.PartySize,
			approval.TotalPrice,
			code,
			req.TrimmedSpecialRequests(),
			b.clock.Now(),
		)
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// persistWithUniqueCode mints a confirmation code, verifies it against the
// store, and inserts. The store also holds a unique constraint; a duplicate-key
// race regenerates and retries up to the configured bound.
func (b *bookingCommandsImpl) persistWithUniqueCode(ctx context.Context, build func(code string) *booking.Booking) (uuid.UUID, error) {
	for attempt := 0; attempt < b.cfg.CodeMaxAttempts; attempt++ {
		code := b.codes.Generate()

		exists, err := b.bookings.CodeExists(ctx, code)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			continue
		}

		id, err := b.bookings.Create(ctx, build(code))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				continue
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return id, nil
	}

	return uuid.Nil, booking.ErrCodeGenerationExhausted
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, role user.Role, newStatus string, notes *string) (*queries.BookingView, error) {
	entity, err := b.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	target, err := booking.NewStatus(newStatus)
	if err != nil {
		return nil, err
	}

	actor, err := b.loadActor(ctx, actorID, role)
	if err != nil {
		return nil, err
	}

	return b.transition(ctx, entity, target, actor, notes)
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, userID uuid.UUID, role user.Role) (*queries.BookingView, error) {
	entity, err := b.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Users only ever see their own bookings on this path.
	if entity.UserID() != userID {
		return nil, ErrBookingNotFound
	}
	if !entity.CanBeCancelled() {
		return nil, ErrCannotCancel
	}

	actor := booking.Actor{ID: userID, Role: role}
	return b.transition(ctx, entity, booking.StatusCancelled, actor, nil)
}

func (b *bookingCommandsImpl) transition(ctx context.Context, entity *booking.Booking, target booking.Status, actor booking.Actor, notes *string) (*queries.BookingView, error) {
	previous := entity.Status()

	if err := b.stateMachine.Transition(entity, target, actor, notes); err != nil {
		return nil, err
	}

	applied, err := b.bookings.UpdateStatus(ctx, entity, previous)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		return nil, ErrStaleStatus
	}

	view, err := b.bookingQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) findBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := b.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (b *bookingCommandsImpl) loadActor(ctx context.Context, actorID uuid.UUID, role user.Role) (booking.Actor, error) {
	managed, err := b.assignments.ManagedOutletIDs(ctx, actorID)
	if err != nil {
		return booking.Actor{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return booking.Actor{ID: actorID, Role: role, ManagedOutlets: managed}, nil
}
