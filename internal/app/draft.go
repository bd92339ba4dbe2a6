package app

import (
	"context"

	"ceylon_stays/internal/domain"
)

type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftPartial
	DraftComplete
	DraftConfirmed
	DraftFailed
)

func (s DraftState) String() string {
	switch s {
	case DraftEmpty:
		return "empty"
	case DraftPartial:
		return "partial"
	case DraftComplete:
		return "complete"
	case DraftConfirmed:
		return "confirmed"
	case DraftFailed:
		return "failed"
	}
	return "unknown"
}

// Guest selector bounds, matching the booking form's choices.
const (
	minAdults   = 1
	maxAdults   = 6
	minChildren = 0
	maxChildren = 4
)

// BookingSubmitter is what a complete draft is handed to on submission.
type BookingSubmitter interface {
	Submit(ctx context.Context, d *BookingDraft) (domain.Booking, error)
}

// BookingDraft accumulates a booking intent field by field. Its state is
// re-evaluated after every mutation: Complete exactly when check-in,
// check-out and room are all set. Only a Complete draft may be submitted.
type BookingDraft struct {
	HotelID  string
	CheckIn  string
	CheckOut string
	Adults   int
	Children int
	RoomID   string

	confirmed bool
	failed    bool
	booking   domain.Booking
}

// NewBookingDraft starts an empty draft for one hotel with the form's
// default guest selection.
func NewBookingDraft(hotelID string) *BookingDraft {
	return &BookingDraft{HotelID: hotelID, Adults: 2, Children: 0}
}

func (d *BookingDraft) SetCheckIn(date string) {
	d.CheckIn = date
	d.failed = false
}

func (d *BookingDraft) SetCheckOut(date string) {
	d.CheckOut = date
	d.failed = false
}

func (d *BookingDraft) SetRoom(roomID string) {
	d.RoomID = roomID
	d.failed = false
}

// SetGuests clamps out-of-range counts to the selector bounds rather than
// storing them.
func (d *BookingDraft) SetGuests(adults, children int) {
	d.Adults = clamp(adults, minAdults, maxAdults)
	d.Children = clamp(children, minChildren, maxChildren)
	d.failed = false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *BookingDraft) State() DraftState {
	if d.confirmed {
		return DraftConfirmed
	}
	if d.failed {
		return DraftFailed
	}
	set := 0
	for _, f := range []string{d.CheckIn, d.CheckOut, d.RoomID} {
		if f != "" {
			set++
		}
	}
	switch set {
	case 0:
		return DraftEmpty
	case 3:
		return DraftComplete
	default:
		return DraftPartial
	}
}

// CanSubmit reports whether the submit action is enabled.
func (d *BookingDraft) CanSubmit() bool { return d.State() == DraftComplete }

// Submit finalizes the draft through svc. In any state other than Complete
// it returns ErrValidation without making a call. On success the draft is
// terminally Confirmed; on failure it is Failed until a field edit resets it.
func (d *BookingDraft) Submit(ctx context.Context, svc BookingSubmitter) (domain.Booking, error) {
	if !d.CanSubmit() {
		return domain.Booking{}, domain.ErrValidation
	}
	b, err := svc.Submit(ctx, d)
	if err != nil {
		d.failed = true
		return domain.Booking{}, err
	}
	d.confirmed = true
	d.booking = b
	return b, nil
}

// Booking returns the confirmed booking, valid only in the Confirmed state.
func (d *BookingDraft) Booking() (domain.Booking, bool) {
	return d.booking, d.confirmed
}
