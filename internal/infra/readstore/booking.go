package readstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"pourup/internal/infra"
	"pourup/internal/pkg/pgconv"
	"pourup/internal/usecase/queries"
)

var bookingViewColumns = []string{
	"b.id", "b.user_id", "u.email",
	"b.experience_id", "e.title",
	"b.outlet_id", "o.name",
	"b.status", "b.booking_date", "b.booking_time",
	"b.party_size", "b.total_price_cents", "b.confirmation_code",
	"b.special_requests", "b.notes", "b.updated_by",
	"b.created_at", "b.updated_at",
}

type BookingReadStore struct {
	db DB
}

func NewBookingReadStore(db DB) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingViewBuilder().
		Where("b.id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view select", err)
	}

	row := r.db.QueryRow(ctx, query, args...)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]*queries.BookingListItem, error) {
	builder := bookingViewBuilder().
		Where("b.user_id = ?", userID).
		OrderBy("b.created_at DESC")
	if status != nil {
		builder = builder.Where("b.status = ?", *status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user bookings select", err)
	}

	return r.queryListItems(ctx, query, args, "failed to find bookings by user")
}

func (r *BookingReadStore) FindByOutletIDs(ctx context.Context, outletIDs []uuid.UUID, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	builder := bookingViewBuilder().
		Where(sq.Eq{"b.outlet_id": outletIDs}).
		OrderBy("b.booking_date DESC", "b.booking_time DESC")
	if filter.Status != nil {
		builder = builder.Where("b.status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		builder = builder.Where("b.booking_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		builder = builder.Where("b.booking_date <= ?", *filter.DateTo)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build outlet bookings select", err)
	}

	return r.queryListItems(ctx, query, args, "failed to find bookings by outlets")
}

func (r *BookingReadStore) queryListItems(ctx context.Context, query string, args []any, failMsg string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	defer rows.Close()

	items := []*queries.BookingListItem{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, toBookingListItem(view))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}

func bookingViewBuilder() sq.SelectBuilder {
	return qb.Select(bookingViewColumns...).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Join("experiences e ON e.id = b.experience_id").
		Join("outlets o ON o.id = b.outlet_id")
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view                   queries.BookingView
		specialRequests, notes pgtype.Text
		updatedBy              pgtype.UUID
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.UserEmail,
		&view.ExperienceID, &view.ExperienceTitle,
		&view.OutletID, &view.OutletName,
		&view.Status, &view.BookingDate, &view.BookingTime,
		&view.PartySize, &view.TotalPriceCents, &view.ConfirmationCode,
		&specialRequests, &notes, &updatedBy,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.UpdatedBy = pgconv.UUIDPtrFromPgtype(updatedBy)
	return &view, nil
}

func toBookingListItem(view *queries.BookingView) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:               view.ID,
		ExperienceID:     view.ExperienceID,
		ExperienceTitle:  view.ExperienceTitle,
		OutletID:         view.OutletID,
		OutletName:       view.OutletName,
		Status:           view.Status,
		BookingDate:      view.BookingDate,
		BookingTime:      view.BookingTime,
		PartySize:        view.PartySize,
		TotalPriceCents:  view.TotalPriceCents,
		ConfirmationCode: view.ConfirmationCode,
		CreatedAt:        view.CreatedAt,
	}
}
