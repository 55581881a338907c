// Package domain defines calendar types and the public ports for the calendar service
package domain

import "time"

// AppointmentType classifies what kind of engagement an appointment is
type AppointmentType string

// Appointment types
const (
	TypeShowing    AppointmentType = "showing"
	TypeMeeting    AppointmentType = "meeting"
	TypeCall       AppointmentType = "call"
	TypeDeadline   AppointmentType = "deadline"
	TypeInspection AppointmentType = "inspection"
)

// AppointmentStatus is the internal lifecycle state
type AppointmentStatus string

// Appointment statuses
const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is the internal scheduling record
// all stored timestamps are treated as UTC
type Appointment struct {
	ID          string
	Title       string
	Description *string
	ClientID    *string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	Type        AppointmentType
	Status      AppointmentStatus
	IsRecurring bool

	// RecurrenceRule is the stored RRULE string, required when IsRecurring
	RecurrenceRule    *string
	RecurrenceEndDate *time.Time

	ExternalEventID    *string
	ExternalCalendarID *string

	CreatedBy string
	UpdatedAt time.Time
}

// Client is the appointment's customer reference
type Client struct {
	ID      string
	Name    string
	Email   *string
	AgentID *string
}

// EventDateTime is a provider-side timestamp plus timezone label
type EventDateTime struct {
	DateTime time.Time
	TimeZone string
}

// Attendee is a provider-side event participant
type Attendee struct {
	Email       string
	DisplayName string
}

// ExternalEvent is the provider-side event representation
// optional slices distinguish absent from empty; provider SDKs consume that
// distinction
type ExternalEvent struct {
	ID          string
	Summary     string
	Description *string
	Start       EventDateTime
	End         EventDateTime
	Location    *string
	Attendees   []Attendee
	Recurrence  []string
	Status      string
}

// Occurrence is one concrete instance of a possibly recurring appointment
type Occurrence struct {
	AppointmentID string
	Title         string
	Start         time.Time
	End           time.Time
}
