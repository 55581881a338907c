// Package service contains the notification dispatcher
package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"dealdesk/internal/modkit"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/notify/domain"
	"dealdesk/internal/services/notify/repo"
)

// Service aggregates the notify ports
type Service interface {
	domain.DispatcherPort
}

// Transports bundles the channel collaborators
// a nil transport disables its channel
type Transports struct {
	InApp domain.InAppPort
	Email domain.EmailPort
	SMS   domain.SMSPort
}

// Svc implements the notification dispatcher
type Svc struct {
	deps     modkit.Deps
	tr       Transports
	validate *validator.Validate
}

// New constructs a notify service
// when no in-app transport is supplied the pg-backed repo is used
func New(deps modkit.Deps, tr Transports) *Svc {
	if tr.InApp == nil && deps.PG != nil {
		tr.InApp = inAppRepo{r: repo.NewPG().Bind(deps.PG)}
	}
	return &Svc{
		deps:     deps,
		tr:       tr,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// inAppRepo adapts the pg repo to the InAppPort transport
type inAppRepo struct{ r repo.Repo }

func (a inAppRepo) SendInApp(ctx context.Context, p domain.InAppPayload) error {
	return a.r.Insert(ctx, p)
}

// Dispatch fans n out across the requested channels, fire all collect all
// partial failure never returns an error; the only error case is a
// notification that is structurally unusable for every requested channel
func (s *Svc) Dispatch(ctx context.Context, n domain.Notification, channels []domain.Channel) (domain.DispatchResult, error) {
	var res domain.DispatchResult

	if len(channels) == 0 {
		return res, perr.InvalidArgf("no channels requested")
	}
	if err := s.validate.Struct(n); err != nil {
		return res, perr.Wrap(err, perr.ErrorCodeValidation, "notification failed structural validation")
	}
	if !s.addressableForAny(n, channels) {
		return res, perr.Validationf("notification carries no recipient identity for any of the requested channels")
	}

	for _, ch := range channels {
		if err := s.send(ctx, n, ch); err != nil {
			s.deps.Log.Warn().
				Str("channel", string(ch)).
				Err(err).
				Msg("notification channel failed")
			res.Failed = append(res.Failed, domain.ChannelFailure{Channel: ch, Reason: err.Error()})
			continue
		}
		res.Sent = append(res.Sent, ch)
	}
	return res, nil
}

// addressableForAny reports whether at least one requested channel has a
// usable recipient identity
func (s *Svc) addressableForAny(n domain.Notification, channels []domain.Channel) bool {
	for _, ch := range channels {
		switch ch {
		case domain.ChannelInApp:
			if n.Recipient.UserID != "" {
				return true
			}
		case domain.ChannelEmail:
			if n.Recipient.Email != "" {
				return true
			}
		case domain.ChannelSMS:
			if n.Recipient.Phone != "" {
				return true
			}
		}
	}
	return false
}

func (s *Svc) send(ctx context.Context, n domain.Notification, ch domain.Channel) error {
	switch ch {
	case domain.ChannelInApp:
		if s.tr.InApp == nil {
			return perr.Dispatchf("in-app transport not configured")
		}
		if n.Recipient.UserID == "" {
			return perr.Dispatchf("recipient has no user id")
		}
		return s.tr.InApp.SendInApp(ctx, domain.InAppPayload{
			UserID:    n.Recipient.UserID,
			Title:     n.Title,
			Message:   n.Message,
			Urgency:   n.Urgency,
			ActionURL: n.ActionURL,
		})
	case domain.ChannelEmail:
		if s.tr.Email == nil {
			return perr.Dispatchf("email transport not configured")
		}
		if n.Recipient.Email == "" {
			return perr.Dispatchf("recipient has no email address")
		}
		return s.tr.Email.SendEmail(ctx, domain.EmailPayload{
			To:      n.Recipient.Email,
			Subject: n.Title,
			Body:    n.Message,
			Urgency: n.Urgency,
		})
	case domain.ChannelSMS:
		if s.tr.SMS == nil {
			return perr.Dispatchf("sms transport not configured")
		}
		if n.Recipient.Phone == "" {
			return perr.Dispatchf("recipient has no phone number")
		}
		return s.tr.SMS.SendSMS(ctx, domain.SMSPayload{
			To:   n.Recipient.Phone,
			Body: n.Title + ": " + n.Message,
		})
	default:
		return perr.Dispatchf("unknown channel %q", ch)
	}
}
