package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"pourup/internal/usecase/queries"
)

type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	UserEmail        string     `json:"userEmail"`
	ExperienceID     uuid.UUID  `json:"experienceId"`
	ExperienceTitle  string     `json:"experienceTitle"`
	OutletID         uuid.UUID  `json:"outletId"`
	OutletName       string     `json:"outletName"`
	Status           string     `json:"status"`
	BookingDate      string     `json:"bookingDate"`
	BookingTime      string     `json:"bookingTime"`
	PartySize        int32      `json:"partySize"`
	TotalPriceCents  int64      `json:"totalPriceCents"`
	ConfirmationCode string     `json:"confirmationCode"`
	SpecialRequests  *string    `json:"specialRequests,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	UpdatedBy        *uuid.UUID `json:"updatedBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID               uuid.UUID `json:"id"`
	ExperienceID     uuid.UUID `json:"experienceId"`
	ExperienceTitle  string    `json:"experienceTitle"`
	OutletID         uuid.UUID `json:"outletId"`
	OutletName       string    `json:"outletName"`
	Status           string    `json:"status"`
	BookingDate      string    `json:"bookingDate"`
	BookingTime      string    `json:"bookingTime"`
	PartySize        int32     `json:"partySize"`
	TotalPriceCents  int64     `json:"totalPriceCents"`
	ConfirmationCode string    `json:"confirmationCode"`
	CreatedAt        time.Time `json:"createdAt"`
}

const responseDateLayout = "2006-01-02"

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, rm)
	resp.BookingDate = rm.BookingDate.Format(responseDateLayout)
	return resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, rm)
	resp.BookingDate = rm.BookingDate.Format(responseDateLayout)
	return resp
}
