//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/user"
	"pourup/internal/infra"
	"pourup/internal/pkg/clock"
	"pourup/internal/pkg/config"
	"pourup/internal/usecase/commands"
	"pourup/tests/common/builder"
	commandsmock "pourup/tests/mock/commands"
	queriesmock "pourup/tests/mock/queries"
)

type bookingCommandsFixture struct {
	ctrl        *gomock.Controller
	bookings    *commandsmock.MockBookingRepository
	experiences *commandsmock.MockExperienceRepository
	outlets     *commandsmock.MockOutletRepository
	assignments *commandsmock.MockOutletAssignmentRepository
	queries     *queriesmock.MockBookingQueries
	clock       *clock.MockClock
	commands    commands.BookingCommands
}

func newBookingCommandsFixture(t *testing.T) *bookingCommandsFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &bookingCommandsFixture{
		ctrl:        ctrl,
		bookings:    commandsmock.NewMockBookingRepository(ctrl),
		experiences: commandsmock.NewMockExperienceRepository(ctrl),
		outlets:     commandsmock.NewMockOutletRepository(ctrl),
		assignments: commandsmock.NewMockOutletAssignmentRepository(ctrl),
		queries:     queriesmock.NewMockBookingQueries(ctrl),
		clock:       clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
	}

	f.commands = commands.NewBookingCommands(
		f.bookings,
		f.experiences,
		f.outlets,
		f.assignments,
		booking.NewAvailabilityEvaluator(f.clock),
		booking.NewStateMachine(f.clock, booking.NewRolePolicy()),
		booking.NewCodeGenerator(),
		f.queries,
		f.clock,
		config.BookingConfig{CodeMaxAttempts: 5},
	)
	return f
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success mints a code and returns the stored view", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		out := builder.NewOutletBuilder().BuildDomain()
		exp, err := builder.NewExperienceBuilder().With(func(b *builder.ExperienceBuilder) {
			b.OutletID = out.ID()
		}).BuildDomain()
		require.NoError(t, err)

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ExperienceID = exp.ID()
		}).BuildCreateRequest()

		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()

		f.experiences.EXPECT().FindByID(ctx, exp.ID()).Return(exp, nil)
		f.outlets.EXPECT().FindByID(ctx, out.ID()).Return(out, nil)
		f.bookings.EXPECT().CodeExists(ctx, gomock.Any()).Return(false, nil)
		f.bookings.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, userID, b.UserID())
				assert.Equal(t, int64(10000), b.TotalPrice().Cents())
				assert.True(t, booking.IsValidCode(b.ConfirmationCode()))
				return bookingID, nil
			})
		f.queries.EXPECT().GetByIDSystem(ctx, bookingID).Return(view, nil)

		actual, err := f.commands.CreateBooking(ctx, req, userID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("unknown experience", func(t *testing.T) {
		f := newBookingCommandsFixture(t)
		req := builder.NewBookingBuilder().BuildCreateRequest()

		f.experiences.EXPECT().FindByID(ctx, req.ExperienceID).
			Return(nil, notFoundErr("experience not found"))

		_, err := f.commands.CreateBooking(ctx, req, userID)
		assert.ErrorIs(t, err, commands.ErrExperienceNotFound)
	})

	t.Run("availability rejection propagates", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		out := builder.NewOutletBuilder().BuildDomain()
		exp, err := builder.NewExperienceBuilder().With(func(b *builder.ExperienceBuilder) {
			b.OutletID = out.ID()
		}).BuildDomain()
		require.NoError(t, err)

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ExperienceID = exp.ID()
			b.Date = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // the builder outlet closes Mondays
		}).BuildCreateRequest()

		f.experiences.EXPECT().FindByID(ctx, exp.ID()).Return(exp, nil)
		f.outlets.EXPECT().FindByID(ctx, out.ID()).Return(out, nil)

		_, err = f.commands.CreateBooking(ctx, req, userID)
		assert.ErrorIs(t, err, booking.ErrOutletClosed)
	})

	t.Run("code collisions retry until the bound", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		out := builder.NewOutletBuilder().BuildDomain()
		exp, err := builder.NewExperienceBuilder().With(func(b *builder.ExperienceBuilder) {
			b.OutletID = out.ID()
		}).BuildDomain()
		require.NoError(t, err)

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ExperienceID = exp.ID()
		}).BuildCreateRequest()

		f.experiences.EXPECT().FindByID(ctx, exp.ID()).Return(exp, nil)
		f.outlets.EXPECT().FindByID(ctx, out.ID()).Return(out, nil)
		f.bookings.EXPECT().CodeExists(ctx, gomock.Any()).Return(true, nil).Times(5)

		_, err = f.commands.CreateBooking(ctx, req, userID)
		assert.ErrorIs(t, err, booking.ErrCodeGenerationExhausted)
	})

	t.Run("duplicate key on insert retries with a fresh code", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		out := builder.NewOutletBuilder().BuildDomain()
		exp, err := builder.NewExperienceBuilder().With(func(b *builder.ExperienceBuilder) {
			b.OutletID = out.ID()
		}).BuildDomain()
		require.NoError(t, err)

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ExperienceID = exp.ID()
		}).BuildCreateRequest()

		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		dupErr := infra.WrapRepoErr("duplicate code", errors.New("unique violation"), infra.KindDuplicateKey)

		f.experiences.EXPECT().FindByID(ctx, exp.ID()).Return(exp, nil)
		f.outlets.EXPECT().FindByID(ctx, out.ID()).Return(out, nil)
		f.bookings.EXPECT().CodeExists(ctx, gomock.Any()).Return(false, nil).Times(2)
		first := f.bookings.EXPECT().Create(ctx, gomock.Any()).Return(uuid.Nil, dupErr)
		f.bookings.EXPECT().Create(ctx, gomock.Any()).Return(bookingID, nil).After(first)
		f.queries.EXPECT().GetByIDSystem(ctx, bookingID).Return(view, nil)

		actual, err := f.commands.CreateBooking(ctx, req, userID)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned manager confirms", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		managerID := uuid.New()
		view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()

		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{entity.OutletID()}, nil)
		f.bookings.EXPECT().UpdateStatus(ctx, entity, booking.StatusPending).Return(true, nil)
		f.queries.EXPECT().GetByIDSystem(ctx, entity.ID()).Return(view, nil)

		actual, err := f.commands.UpdateStatus(ctx, entity.ID(), managerID, user.RoleOutletManager, "confirmed", nil)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", actual.Status)
		assert.Equal(t, booking.StatusConfirmed, entity.Status())
	})

	t.Run("unassigned manager is rejected", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		managerID := uuid.New()

		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{uuid.New()}, nil)

		_, err := f.commands.UpdateStatus(ctx, entity.ID(), managerID, user.RoleOutletManager, "confirmed", nil)
		assert.ErrorIs(t, err, booking.ErrUnauthorizedTransition)
		assert.Equal(t, booking.StatusPending, entity.Status())
	})

	t.Run("invalid target status", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.UpdateStatus(ctx, entity.ID(), uuid.New(), user.RoleOutletManager, "archived", nil)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("concurrent writer wins the compare-and-swap", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		managerID := uuid.New()

		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{entity.OutletID()}, nil)
		f.bookings.EXPECT().UpdateStatus(ctx, entity, booking.StatusPending).Return(false, nil)

		_, err := f.commands.UpdateStatus(ctx, entity.ID(), managerID, user.RoleOutletManager, "confirmed", nil)
		assert.ErrorIs(t, err, commands.ErrStaleStatus)
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		id := uuid.New()
		f.bookings.EXPECT().FindByID(ctx, id).Return(nil, notFoundErr("booking not found"))

		_, err := f.commands.UpdateStatus(ctx, id, uuid.New(), user.RoleOutletManager, "confirmed", nil)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()

		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)
		f.bookings.EXPECT().UpdateStatus(ctx, entity, booking.StatusPending).Return(true, nil)
		f.queries.EXPECT().GetByIDSystem(ctx, entity.ID()).Return(view, nil)

		actual, err := f.commands.Cancel(ctx, entity.ID(), entity.UserID(), user.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", actual.Status)
		assert.Equal(t, booking.StatusCancelled, entity.Status())
	})

	t.Run("someone else's booking reads as missing", func(t *testing.T) {
		f := newBookingCommandsFixture(t)

		entity := builder.NewBookingBuilder().BuildDomain()
		f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

		_, err := f.commands.Cancel(ctx, entity.ID(), uuid.New(), user.RoleUser)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusRejected, booking.StatusCompleted, booking.StatusCancelled} {
			f := newBookingCommandsFixture(t)

			entity := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			f.bookings.EXPECT().FindByID(ctx, entity.ID()).Return(entity, nil)

			_, err := f.commands.Cancel(ctx, entity.ID(), entity.UserID(), user.RoleUser)
			assert.ErrorIs(t, err, commands.ErrCannotCancel, status)
		}
	})
}
