package domain

import "context"

// DispatcherPort fans one logical notification out across channels
type DispatcherPort interface {
	Dispatch(ctx context.Context, n Notification, channels []Channel) (DispatchResult, error)
}

// InAppPort persists an in-app notification record
type InAppPort interface {
	SendInApp(ctx context.Context, p InAppPayload) error
}

// EmailPort hands a message to the email provider
type EmailPort interface {
	SendEmail(ctx context.Context, p EmailPayload) error
}

// SMSPort hands a message to the SMS provider
type SMSPort interface {
	SendSMS(ctx context.Context, p SMSPayload) error
}
