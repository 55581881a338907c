// Package domain defines notification types and the public ports for the
// notify service
package domain

import "dealdesk/internal/core/urgency"

// Channel identifies a delivery transport
type Channel string

// Supported channels
const (
	ChannelInApp Channel = "inapp"
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// ParseChannel maps a config token to a channel
func ParseChannel(s string) (Channel, bool) {
	switch Channel(s) {
	case ChannelInApp, ChannelEmail, ChannelSMS:
		return Channel(s), true
	}
	return "", false
}

// Recipient carries the per-channel identities of the notification target
// a channel whose identity is empty cannot be attempted
type Recipient struct {
	UserID string
	Email  string
	Phone  string
}

// Notification is the logical message before per-channel payload shaping
type Notification struct {
	Title     string       `validate:"required"`
	Message   string       `validate:"required"`
	Urgency   urgency.Tier `validate:"required"`
	Recipient Recipient
	ActionURL string `validate:"omitempty,url"`
}

// ChannelFailure records one failed channel attempt
type ChannelFailure struct {
	Channel Channel
	Reason  string
}

// DispatchResult aggregates per-channel outcomes of one logical send
type DispatchResult struct {
	Sent   []Channel
	Failed []ChannelFailure
}

// InAppPayload is the persisted in-app notification record
type InAppPayload struct {
	UserID    string
	Title     string
	Message   string
	Urgency   urgency.Tier
	ActionURL string
}

// EmailPayload is what the email transport consumes
type EmailPayload struct {
	To      string
	Subject string
	Body    string
	Urgency urgency.Tier
}

// SMSPayload is what the SMS transport consumes
type SMSPayload struct {
	To   string
	Body string
}
