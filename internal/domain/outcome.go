package domain

import (
	"errors"
	"fmt"
)

// Outcome classifies how a single webhook notification settled.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	OutcomeException Outcome = "exception"
	// OutcomeSkipped means no request was sent: the control was already
	// busy or the client hit the notification rate limit.
	OutcomeSkipped Outcome = "skipped"
)

var (
	ErrEmptyLabel  = errors.New("intent label is required")
	ErrUnknownPlan = errors.New("unknown plan")
	ErrControlBusy = errors.New("control is busy")
	ErrRateLimited = errors.New("notification rate limited")
)

// NotificationDeliveryFailure covers network-level failures and non-success
// responses from the webhook endpoint. It is always recovered locally.
type NotificationDeliveryFailure struct {
	StatusCode int
	Err        error
}

func (f *NotificationDeliveryFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("webhook delivery failed: %v", f.Err)
	}
	return fmt.Sprintf("webhook delivery failed: status %d", f.StatusCode)
}

func (f *NotificationDeliveryFailure) Unwrap() error {
	return f.Err
}
