package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/schedule"
	"pourup/internal/infra"
	"pourup/internal/pkg/pgconv"
)

type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	query, args, err := qb.Insert("bookings").
		Columns(
			"id", "user_id", "experience_id", "outlet_id", "status",
			"booking_date", "booking_time", "party_size", "total_price_cents",
			"confirmation_code", "special_requests", "notes",
			"created_at", "updated_at",
		).
		Values(
			b.ID(), b.UserID(), b.ExperienceID(), b.OutletID(), b.Status().String(),
			b.Date(), b.TimeOfDay().String(), b.PartySize(), b.TotalPrice().Cents(),
			b.ConfirmationCode(), pgconv.StringPtrToPgtype(b.SpecialRequests()), pgconv.StringPtrToPgtype(b.Notes()),
			b.CreatedAt(), b.UpdatedAt(),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query, args, err := qb.Select(
		"id", "user_id", "experience_id", "outlet_id", "status",
		"booking_date", "booking_time", "party_size", "total_price_cents",
		"confirmation_code", "special_requests", "notes", "updated_by",
		"created_at", "updated_at",
	).
		From("bookings").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking select", err)
	}

	var (
		bookingID, userID      uuid.UUID
		experienceID, outletID uuid.UUID
		status, bookingTime    string
		bookingDate            time.Time
		partySize              int
		totalPriceCents        int64
		code                   string
		specialRequests, notes pgtype.Text
		updatedBy              pgtype.UUID
		createdAt, updatedAt   time.Time
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&bookingID, &userID, &experienceID, &outletID, &status,
		&bookingDate, &bookingTime, &partySize, &totalPriceCents,
		&code, &specialRequests, &notes, &updatedBy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	domainStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("booking row has invalid status", err)
	}
	at, err := schedule.ParseTimeOfDay(bookingTime)
	if err != nil {
		return nil, infra.WrapRepoErr("booking row has invalid time", err)
	}
	price, err := booking.NewMoney(totalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("booking row has invalid price", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, experienceID, outletID,
		domainStatus, bookingDate, at, partySize, price, code,
		pgconv.StringPtrFromPgtype(specialRequests),
		pgconv.StringPtrFromPgtype(notes),
		pgconv.UUIDPtrFromPgtype(updatedBy),
		createdAt, updatedAt,
	), nil
}

// UpdateStatus writes the transitioned booking guarded by the caller's
// expectation of the previous status. Zero affected rows means another
// writer got there first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) (bool, error) {
	query, args, err := qb.Update("bookings").
		Set("status", b.Status().String()).
		Set("notes", pgconv.StringPtrToPgtype(b.Notes())).
		Set("updated_by", pgconv.UUIDPtrToPgtype(b.UpdatedBy())).
		Set("updated_at", b.UpdatedAt()).
		Where("id = ?", b.ID()).
		Where("status = ?", expected.String()).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build booking status update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query, args, err := qb.Select("1").
		From("bookings").
		Where("confirmation_code = ?", code).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build code existence check", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check confirmation code", err)
	}
	return exists, nil
}
