package service

import (
	"context"
	"testing"

	"dealdesk/internal/core/urgency"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/notify/domain"
)

type fakeInApp struct {
	calls []domain.InAppPayload
	err   error
}

func (f *fakeInApp) SendInApp(_ context.Context, p domain.InAppPayload) error {
	f.calls = append(f.calls, p)
	return f.err
}

type fakeEmail struct {
	calls []domain.EmailPayload
	err   error
}

func (f *fakeEmail) SendEmail(_ context.Context, p domain.EmailPayload) error {
	f.calls = append(f.calls, p)
	return f.err
}

type fakeSMS struct {
	calls []domain.SMSPayload
	err   error
}

func (f *fakeSMS) SendSMS(_ context.Context, p domain.SMSPayload) error {
	f.calls = append(f.calls, p)
	return f.err
}

func testNotification() domain.Notification {
	return domain.Notification{
		Title:   "Deadline approaching",
		Message: "Prospect stage deadline for Dana Reyes is due in 2 hours",
		Urgency: urgency.Critical,
		Recipient: domain.Recipient{
			UserID: "u1",
			Email:  "agent@example.com",
			Phone:  "+15550100",
		},
	}
}

func allChannels() []domain.Channel {
	return []domain.Channel{domain.ChannelInApp, domain.ChannelEmail, domain.ChannelSMS}
}

func newTestSvc(tr Transports) *Svc {
	return New(testDeps(), tr)
}

func TestDispatch_AllChannelsSucceed(t *testing.T) {
	t.Parallel()

	inapp := &fakeInApp{}
	email := &fakeEmail{}
	sms := &fakeSMS{}
	s := newTestSvc(Transports{InApp: inapp, Email: email, SMS: sms})

	res, err := s.Dispatch(context.Background(), testNotification(), allChannels())
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if len(res.Sent) != 3 || len(res.Failed) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(inapp.calls) != 1 || len(email.calls) != 1 || len(sms.calls) != 1 {
		t.Fatalf("each transport should be invoked exactly once")
	}
	if email.calls[0].Subject != "Deadline approaching" {
		t.Fatalf("email subject = %q", email.calls[0].Subject)
	}
	if sms.calls[0].To != "+15550100" {
		t.Fatalf("sms to = %q", sms.calls[0].To)
	}
}

func TestDispatch_PartialFailureDoesNotAbort(t *testing.T) {
	t.Parallel()

	inapp := &fakeInApp{}
	email := &fakeEmail{err: perr.Dispatchf("smtp relay down")}
	sms := &fakeSMS{}
	s := newTestSvc(Transports{InApp: inapp, Email: email, SMS: sms})

	res, err := s.Dispatch(context.Background(), testNotification(), allChannels())
	if err != nil {
		t.Fatalf("partial failure must not surface an error, got %v", err)
	}
	if len(res.Sent) != 2 {
		t.Fatalf("Sent = %v, want inapp and sms", res.Sent)
	}
	if len(res.Failed) != 1 || res.Failed[0].Channel != domain.ChannelEmail {
		t.Fatalf("Failed = %+v, want one email failure", res.Failed)
	}
	if len(sms.calls) != 1 {
		t.Fatalf("sms channel should still be attempted after email failed")
	}
}

func TestDispatch_MissingIdentityForOneChannel(t *testing.T) {
	t.Parallel()

	inapp := &fakeInApp{}
	sms := &fakeSMS{}
	s := newTestSvc(Transports{InApp: inapp, SMS: sms})

	n := testNotification()
	n.Recipient.Phone = ""

	res, err := s.Dispatch(context.Background(), n, []domain.Channel{domain.ChannelInApp, domain.ChannelSMS})
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if len(res.Sent) != 1 || res.Sent[0] != domain.ChannelInApp {
		t.Fatalf("Sent = %v, want inapp only", res.Sent)
	}
	if len(res.Failed) != 1 || res.Failed[0].Channel != domain.ChannelSMS {
		t.Fatalf("Failed = %+v, want sms identity failure", res.Failed)
	}
	if len(sms.calls) != 0 {
		t.Fatalf("sms transport must not be invoked without a phone number")
	}
}

func TestDispatch_NoIdentityForAnyChannel(t *testing.T) {
	t.Parallel()

	s := newTestSvc(Transports{InApp: &fakeInApp{}, Email: &fakeEmail{}, SMS: &fakeSMS{}})

	n := testNotification()
	n.Recipient = domain.Recipient{}

	if _, err := s.Dispatch(context.Background(), n, allChannels()); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected Validation error for unaddressable notification, got %v", err)
	}
}

func TestDispatch_StructurallyInvalid(t *testing.T) {
	t.Parallel()

	s := newTestSvc(Transports{InApp: &fakeInApp{}})

	n := testNotification()
	n.Title = ""

	if _, err := s.Dispatch(context.Background(), n, allChannels()); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected Validation error for missing title, got %v", err)
	}

	n = testNotification()
	n.ActionURL = "not a url"
	if _, err := s.Dispatch(context.Background(), n, allChannels()); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected Validation error for malformed action url, got %v", err)
	}
}

func TestDispatch_NoChannels(t *testing.T) {
	t.Parallel()

	s := newTestSvc(Transports{})
	if _, err := s.Dispatch(context.Background(), testNotification(), nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected InvalidArgument for empty channel set, got %v", err)
	}
}
