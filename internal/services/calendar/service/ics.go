package service

import (
	"fmt"

	ical "github.com/arran4/golang-ical"

	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/calendar/domain"
)

// ExportICS renders appointments as a VCALENDAR payload
// stored RRULE strings are embedded verbatim; cancelled appointments carry
// STATUS:CANCELLED so consumers can tombstone them
func (s *Svc) ExportICS(appointments []domain.Appointment) ([]byte, error) {
	if len(appointments) == 0 {
		return nil, perr.InvalidArgf("nothing to export")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(s.config.ProdID)

	for _, appt := range appointments {
		uid := appt.ID
		if appt.ExternalEventID != nil && *appt.ExternalEventID != "" {
			uid = *appt.ExternalEventID
		}
		ev := cal.AddEvent(fmt.Sprintf("%s@dealdesk", uid))
		ev.SetDtStampTime(appt.UpdatedAt)
		ev.SetStartAt(appt.StartTime)
		ev.SetEndAt(appt.EndTime)
		ev.SetSummary(appt.Title)
		if appt.Description != nil {
			ev.SetDescription(*appt.Description)
		}
		if appt.Location != nil {
			ev.SetLocation(*appt.Location)
		}
		switch appt.Status {
		case domain.StatusCancelled:
			ev.SetStatus(ical.ObjectStatusCancelled)
		default:
			ev.SetStatus(ical.ObjectStatusConfirmed)
		}
		if appt.IsRecurring && appt.RecurrenceRule != nil && *appt.RecurrenceRule != "" {
			ev.AddRrule(*appt.RecurrenceRule)
		}
	}

	return []byte(cal.Serialize()), nil
}
