package service

import (
	"testing"
	"time"

	"dealdesk/internal/services/calendar/domain"
)

func strPtr(s string) *string { return &s }

func testAppt() domain.Appointment {
	return domain.Appointment{
		ID:        "a1",
		Title:     "Final walkthrough",
		StartTime: time.Date(2025, 4, 1, 15, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 4, 1, 16, 0, 0, 0, time.UTC),
		Type:      domain.TypeShowing,
		Status:    domain.StatusScheduled,
		CreatedBy: "u1",
		UpdatedAt: time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestToExternalEvent_Basics(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.Description = strPtr("bring keys")
	appt.Location = strPtr("12 Main St")

	ev := s.ToExternalEvent(appt, nil)
	if ev.Summary != appt.Title {
		t.Fatalf("Summary = %q, want %q", ev.Summary, appt.Title)
	}
	if ev.Description == nil || *ev.Description != "bring keys" {
		t.Fatalf("Description not passed through: %v", ev.Description)
	}
	if !ev.Start.DateTime.Equal(appt.StartTime) || ev.Start.TimeZone != "UTC" {
		t.Fatalf("Start = %+v, want %s UTC", ev.Start, appt.StartTime)
	}
	if !ev.End.DateTime.Equal(appt.EndTime) || ev.End.TimeZone != "UTC" {
		t.Fatalf("End = %+v, want %s UTC", ev.End, appt.EndTime)
	}
	if ev.Status != "confirmed" {
		t.Fatalf("Status = %q, want confirmed", ev.Status)
	}
}

func TestToExternalEvent_AttendeesAbsentVsPresent(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()

	// no client at all: attendees absent, not empty
	if ev := s.ToExternalEvent(appt, nil); ev.Attendees != nil {
		t.Fatalf("expected absent attendees, got %v", ev.Attendees)
	}

	// client without email: still absent
	noMail := domain.Client{ID: "c1", Name: "Dana Reyes"}
	if ev := s.ToExternalEvent(appt, &noMail); ev.Attendees != nil {
		t.Fatalf("expected absent attendees for mail-less client, got %v", ev.Attendees)
	}

	withMail := domain.Client{ID: "c1", Name: "Dana Reyes", Email: strPtr("dana@example.com")}
	ev := s.ToExternalEvent(appt, &withMail)
	if len(ev.Attendees) != 1 {
		t.Fatalf("expected one attendee, got %v", ev.Attendees)
	}
	if ev.Attendees[0].Email != "dana@example.com" || ev.Attendees[0].DisplayName != "Dana Reyes" {
		t.Fatalf("unexpected attendee %+v", ev.Attendees[0])
	}
}

func TestToExternalEvent_RecurrencePassthrough(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.IsRecurring = true
	appt.RecurrenceRule = strPtr("FREQ=WEEKLY;BYDAY=MO,WE,FR")

	ev := s.ToExternalEvent(appt, nil)
	if len(ev.Recurrence) != 1 || ev.Recurrence[0] != "FREQ=WEEKLY;BYDAY=MO,WE,FR" {
		t.Fatalf("recurrence not passed through verbatim: %v", ev.Recurrence)
	}

	appt.IsRecurring = false
	if ev := s.ToExternalEvent(appt, nil); ev.Recurrence != nil {
		t.Fatalf("expected absent recurrence, got %v", ev.Recurrence)
	}
}

func TestToExternalEvent_CancelledStatus(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.Status = domain.StatusCancelled
	if ev := s.ToExternalEvent(appt, nil); ev.Status != "cancelled" {
		t.Fatalf("Status = %q, want cancelled", ev.Status)
	}
}

func TestToAppointment_BinaryStatusAndFixedType(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	ev := domain.ExternalEvent{
		ID:      "ext-9",
		Summary: "Inspection",
		Start:   domain.EventDateTime{DateTime: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC), TimeZone: "UTC"},
		End:     domain.EventDateTime{DateTime: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC), TimeZone: "UTC"},
		Status:  "tentative",
	}

	appt := s.ToAppointment(ev, "u7", nil)
	if appt.Type != domain.TypeMeeting {
		t.Fatalf("Type = %q, want fixed meeting classification", appt.Type)
	}
	if appt.Status != domain.StatusScheduled {
		t.Fatalf("Status = %q, want scheduled for non-cancelled provider status", appt.Status)
	}
	if appt.ExternalEventID == nil || *appt.ExternalEventID != "ext-9" {
		t.Fatalf("ExternalEventID = %v, want ext-9", appt.ExternalEventID)
	}
	if appt.ExternalCalendarID != nil {
		t.Fatalf("ExternalCalendarID should stay unset on ingest, got %v", appt.ExternalCalendarID)
	}
	if appt.CreatedBy != "u7" {
		t.Fatalf("CreatedBy = %q, want u7", appt.CreatedBy)
	}

	ev.Status = "cancelled"
	if a := s.ToAppointment(ev, "u7", nil); a.Status != domain.StatusCancelled {
		t.Fatalf("Status = %q, want cancelled", a.Status)
	}
}

func TestToAppointment_RecurrenceFromList(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	ev := domain.ExternalEvent{
		Summary:    "Weekly sync",
		Recurrence: []string{"FREQ=WEEKLY;BYDAY=TU"},
	}
	appt := s.ToAppointment(ev, "u1", nil)
	if !appt.IsRecurring || appt.RecurrenceRule == nil || *appt.RecurrenceRule != "FREQ=WEEKLY;BYDAY=TU" {
		t.Fatalf("recurrence not taken verbatim from list: %+v", appt)
	}

	ev.Recurrence = nil
	if a := s.ToAppointment(ev, "u1", nil); a.IsRecurring || a.RecurrenceRule != nil {
		t.Fatalf("expected non-recurring appointment, got %+v", a)
	}
}

func TestMapping_TypeIsLostOnRoundTrip(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.Type = domain.TypeShowing

	back := s.ToAppointment(s.ToExternalEvent(appt, nil), appt.CreatedBy, appt.ClientID)
	if back.Type == domain.TypeShowing {
		t.Fatalf("internal type survived the round trip; the outbound leg must discard it")
	}
	if back.Type != domain.TypeMeeting {
		t.Fatalf("inbound type = %q, want meeting", back.Type)
	}
}
