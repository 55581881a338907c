package service

import (
	"strings"
	"testing"
	"time"

	"dealdesk/internal/services/calendar/domain"
)

func TestExportICS_ContainsEventFields(t *testing.T) {
	t.Parallel()

	s := &Svc{config: Config{ProdID: "-//dealdesk//calendar//EN"}}
	appt := testAppt()
	appt.IsRecurring = true
	appt.RecurrenceRule = strPtr("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO")
	appt.Location = strPtr("Office 3B")

	out, err := s.ExportICS([]domain.Appointment{appt})
	if err != nil {
		t.Fatalf("ExportICS returned error: %v", err)
	}
	ics := string(out)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//dealdesk//calendar//EN",
		"SUMMARY:Final walkthrough",
		"LOCATION:Office 3B",
		"RRULE:FREQ=WEEKLY;INTERVAL=2;BYDAY=MO",
		"STATUS:CONFIRMED",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Fatalf("ICS output missing %q:\n%s", want, ics)
		}
	}
}

func TestExportICS_CancelledStatus(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.Status = domain.StatusCancelled

	out, err := s.ExportICS([]domain.Appointment{appt})
	if err != nil {
		t.Fatalf("ExportICS returned error: %v", err)
	}
	if !strings.Contains(string(out), "STATUS:CANCELLED") {
		t.Fatalf("cancelled appointment not tombstoned:\n%s", out)
	}
}

func TestExportICS_EmptyInput(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	if _, err := s.ExportICS(nil); err == nil {
		t.Fatalf("expected error for empty export")
	}
}

func TestAgenda_ExpandsRecurringWithinWindow(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	recurring := testAppt()
	recurring.ID = "rec"
	recurring.IsRecurring = true
	recurring.RecurrenceRule = strPtr("FREQ=DAILY")
	recurring.StartTime = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	recurring.EndTime = recurring.StartTime.Add(30 * time.Minute)

	single := testAppt()
	single.ID = "single"
	single.StartTime = time.Date(2025, 4, 2, 13, 0, 0, 0, time.UTC)
	single.EndTime = single.StartTime.Add(time.Hour)

	outside := testAppt()
	outside.ID = "outside"
	outside.StartTime = time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC)
	outside.EndTime = outside.StartTime.Add(time.Hour)

	cancelled := testAppt()
	cancelled.ID = "cancelled"
	cancelled.Status = domain.StatusCancelled
	cancelled.StartTime = single.StartTime

	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 3, 23, 59, 59, 0, time.UTC)

	occ, err := s.Agenda([]domain.Appointment{recurring, single, outside, cancelled}, from, to)
	if err != nil {
		t.Fatalf("Agenda returned error: %v", err)
	}

	// three daily instances plus the single appointment
	if len(occ) != 4 {
		t.Fatalf("got %d occurrences, want 4: %+v", len(occ), occ)
	}
	for i := 1; i < len(occ); i++ {
		if occ[i].Start.Before(occ[i-1].Start) {
			t.Fatalf("occurrences not sorted by start: %+v", occ)
		}
	}
	var recCount int
	for _, o := range occ {
		if o.AppointmentID == "rec" {
			recCount++
			if o.End.Sub(o.Start) != 30*time.Minute {
				t.Fatalf("occurrence did not preserve duration: %+v", o)
			}
		}
		if o.AppointmentID == "outside" || o.AppointmentID == "cancelled" {
			t.Fatalf("unexpected occurrence for %s", o.AppointmentID)
		}
	}
	if recCount != 3 {
		t.Fatalf("recurring appointment expanded %d times, want 3", recCount)
	}
}

func TestAgenda_HonorsRecurrenceEndDate(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	appt := testAppt()
	appt.IsRecurring = true
	appt.RecurrenceRule = strPtr("FREQ=DAILY")
	appt.StartTime = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	appt.EndTime = appt.StartTime.Add(time.Hour)
	end := time.Date(2025, 4, 2, 23, 0, 0, 0, time.UTC)
	appt.RecurrenceEndDate = &end

	occ, err := s.Agenda([]domain.Appointment{appt}, appt.StartTime, appt.StartTime.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("Agenda returned error: %v", err)
	}
	if len(occ) != 2 {
		t.Fatalf("got %d occurrences, want 2 (end date cuts the series): %+v", len(occ), occ)
	}
}

func TestAgenda_InvertedRange(t *testing.T) {
	t.Parallel()

	s := &Svc{}
	now := time.Now()
	if _, err := s.Agenda(nil, now, now.Add(-time.Hour)); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
