package app_test

import (
	"context"
	"errors"
	"testing"

	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
)

type fakeSubmitter struct {
	err   error
	calls int
}

func (f *fakeSubmitter) Submit(ctx context.Context, d *app.BookingDraft) (domain.Booking, error) {
	f.calls++
	if f.err != nil {
		return domain.Booking{}, f.err
	}
	return domain.Booking{ID: "b1", RoomID: d.RoomID, Status: domain.BookingStatusConfirmed}, nil
}

func TestDraft_StateTransitions(t *testing.T) {
	d := app.NewBookingDraft("1")
	if d.State() != app.DraftEmpty {
		t.Fatalf("new draft should be empty, got %v", d.State())
	}
	d.SetCheckIn("2026-09-01")
	if d.State() != app.DraftPartial {
		t.Fatalf("one field set should be partial, got %v", d.State())
	}
	d.SetCheckOut("2026-09-03")
	d.SetRoom("102")
	if d.State() != app.DraftComplete {
		t.Fatalf("all fields set should be complete, got %v", d.State())
	}
	// clearing any field drops back to partial
	d.SetRoom("")
	if d.State() != app.DraftPartial {
		t.Fatalf("cleared room should be partial, got %v", d.State())
	}
}

func TestDraft_SubmitGating(t *testing.T) {
	sub := &fakeSubmitter{}
	d := app.NewBookingDraft("1")
	d.SetCheckIn("2026-09-01")

	if _, err := d.Submit(context.Background(), sub); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("partial draft must not submit, got %v", err)
	}
	if sub.calls != 0 {
		t.Fatalf("validation failure must not reach the network, calls=%d", sub.calls)
	}

	d.SetCheckOut("2026-09-03")
	d.SetRoom("102")
	b, err := d.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("complete draft submit: %v", err)
	}
	if b.Status != domain.BookingStatusConfirmed || d.State() != app.DraftConfirmed {
		t.Fatalf("expected confirmed, got %v / %v", b.Status, d.State())
	}

	// confirmation is terminal
	if _, err := d.Submit(context.Background(), sub); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("confirmed draft must reject resubmission, got %v", err)
	}
	if sub.calls != 1 {
		t.Fatalf("expected exactly one submission, got %d", sub.calls)
	}
}

func TestDraft_FailedThenEditRecovers(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("boom")}
	d := app.NewBookingDraft("1")
	d.SetCheckIn("2026-09-01")
	d.SetCheckOut("2026-09-03")
	d.SetRoom("102")

	if _, err := d.Submit(context.Background(), sub); err == nil {
		t.Fatal("expected submit failure")
	}
	if d.State() != app.DraftFailed {
		t.Fatalf("expected failed state, got %v", d.State())
	}

	// a field edit re-evaluates the draft
	sub.err = nil
	d.SetRoom("103")
	if d.State() != app.DraftComplete {
		t.Fatalf("edit after failure should be complete again, got %v", d.State())
	}
	if _, err := d.Submit(context.Background(), sub); err != nil {
		t.Fatalf("retry after edit: %v", err)
	}
}

func TestDraft_GuestClamping(t *testing.T) {
	d := app.NewBookingDraft("1")
	d.SetGuests(0, -3)
	if d.Adults != 1 || d.Children != 0 {
		t.Fatalf("low out-of-range not clamped: %d/%d", d.Adults, d.Children)
	}
	d.SetGuests(99, 99)
	if d.Adults != 6 || d.Children != 4 {
		t.Fatalf("high out-of-range not clamped: %d/%d", d.Adults, d.Children)
	}
	d.SetGuests(3, 2)
	if d.Adults != 3 || d.Children != 2 {
		t.Fatalf("in-range values must be stored as-is: %d/%d", d.Adults, d.Children)
	}
}
