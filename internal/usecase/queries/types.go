package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	UserEmail        string     `json:"user_email"`
	ExperienceID     uuid.UUID  `json:"experience_id"`
	ExperienceTitle  string     `json:"experience_title"`
	OutletID         uuid.UUID  `json:"outlet_id"`
	OutletName       string     `json:"outlet_name"`
	Status           string     `json:"status"`
	BookingDate      time.Time  `json:"booking_date"`
	BookingTime      string     `json:"booking_time"`
	PartySize        int32      `json:"party_size"`
	TotalPriceCents  int64      `json:"total_price_cents"`
	ConfirmationCode string     `json:"confirmation_code"`
	SpecialRequests  *string    `json:"special_requests,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	UpdatedBy        *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	ExperienceID     uuid.UUID `json:"experience_id"`
	ExperienceTitle  string    `json:"experience_title"`
	OutletID         uuid.UUID `json:"outlet_id"`
	OutletName       string    `json:"outlet_name"`
	Status           string    `json:"status"`
	BookingDate      time.Time `json:"booking_date"`
	BookingTime      string    `json:"booking_time"`
	PartySize        int32     `json:"party_size"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

// BookingFilter narrows manager-facing booking listings.
type BookingFilter struct {
	Status   *string
	OutletID *uuid.UUID
	DateFrom *time.Time
	DateTo   *time.Time
}
