// Package service contains calendar workflows: provider mapping, ICS export,
// and agenda expansion
package service

import (
	"dealdesk/internal/services/calendar/domain"
)

// utcLabel is the timezone label stamped on outbound events
// stored timestamps are already UTC so no conversion happens here
const utcLabel = "UTC"

// provider status vocabulary
const (
	providerConfirmed = "confirmed"
	providerCancelled = "cancelled"
)

// ToExternalEvent maps an appointment onto the provider representation
// the mapping is lossy on purpose; the internal Type never crosses outbound
func (s *Svc) ToExternalEvent(appt domain.Appointment, client *domain.Client) domain.ExternalEvent {
	ev := domain.ExternalEvent{
		Summary:     appt.Title,
		Description: appt.Description,
		Start:       domain.EventDateTime{DateTime: appt.StartTime, TimeZone: utcLabel},
		End:         domain.EventDateTime{DateTime: appt.EndTime, TimeZone: utcLabel},
		Location:    appt.Location,
		Status:      providerConfirmed,
	}
	if appt.ExternalEventID != nil {
		ev.ID = *appt.ExternalEventID
	}
	if appt.Status == domain.StatusCancelled {
		ev.Status = providerCancelled
	}

	// attendees stay absent unless the client carries a usable email
	// absent and empty are different things to provider SDKs
	if client != nil && client.Email != nil && *client.Email != "" {
		ev.Attendees = []domain.Attendee{{Email: *client.Email, DisplayName: client.Name}}
	}

	// the stored RRULE string is forwarded verbatim, never re-encoded
	if appt.IsRecurring && appt.RecurrenceRule != nil && *appt.RecurrenceRule != "" {
		ev.Recurrence = []string{*appt.RecurrenceRule}
	}
	return ev
}

// ToAppointment maps a provider event onto a fresh internal record
// inbound events always land as Meeting; the provider has no notion of the
// internal type taxonomy and we do not guess
func (s *Svc) ToAppointment(ev domain.ExternalEvent, createdBy string, clientID *string) domain.Appointment {
	appt := domain.Appointment{
		Title:       ev.Summary,
		Description: ev.Description,
		ClientID:    clientID,
		StartTime:   ev.Start.DateTime,
		EndTime:     ev.End.DateTime,
		Location:    ev.Location,
		Type:        domain.TypeMeeting,
		Status:      domain.StatusScheduled,
		CreatedBy:   createdBy,
	}
	// binary status crossing: cancelled maps, everything else is scheduled
	if ev.Status == providerCancelled {
		appt.Status = domain.StatusCancelled
	}
	if len(ev.Recurrence) > 0 {
		appt.IsRecurring = true
		rule := ev.Recurrence[0]
		appt.RecurrenceRule = &rule
	}
	if ev.ID != "" {
		id := ev.ID
		appt.ExternalEventID = &id
	}
	return appt
}
