package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Priya8975/pawpal-landing/internal/clock"
	"github.com/Priya8975/pawpal-landing/internal/domain"
	"github.com/google/uuid"
)

// Navigator moves the user to a route once a notification has settled.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

// Recorder counts settled notifications per surface.
type Recorder interface {
	RecordOutcome(ctx context.Context, surface string, outcome domain.Outcome) error
}

// Limiter decides whether a client may trigger another webhook call.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int) bool
}

// Request describes one click on a purchase control.
type Request struct {
	Surface     domain.Surface
	Label       string
	TargetRoute string
	UserAgent   string
	ClientID    string
}

// Control returns the id of the control that raised the request.
func (r Request) Control() string {
	return domain.ControlID(r.Surface, r.Label)
}

// Result reports how the notification settled. Callers never gate on it.
type Result struct {
	Outcome    domain.Outcome
	StatusCode int
	Err        error
}

// Notifier sends best-effort purchase intent notifications and always
// navigates afterwards.
type Notifier struct {
	sender   WebhookSender
	busy     BusyStore
	clock    clock.Clock
	logger   *slog.Logger
	observer BusyObserver
	recorder Recorder
	limiter  Limiter
	limit    int
}

// Option configures optional Notifier collaborators.
type Option func(*Notifier)

// WithObserver publishes busy transitions to o.
func WithObserver(o BusyObserver) Option {
	return func(n *Notifier) { n.observer = o }
}

// WithRecorder counts every settled outcome with r.
func WithRecorder(r Recorder) Option {
	return func(n *Notifier) { n.recorder = r }
}

// WithLimiter skips the webhook when a client exceeds limit calls per second.
func WithLimiter(l Limiter, limit int) Option {
	return func(n *Notifier) {
		n.limiter = l
		n.limit = limit
	}
}

func New(sender WebhookSender, busy BusyStore, clk clock.Clock, logger *slog.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		sender: sender,
		busy:   busy,
		clock:  clk,
		logger: logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyAndProceed marks the invoked control busy, posts the purchase intent
// to the webhook and navigates to req.TargetRoute. Navigation happens exactly
// once whatever the outcome.
func (n *Notifier) NotifyAndProceed(ctx context.Context, req Request, nav Navigator) Result {
	// The call runs to completion even if the client goes away.
	ctx = context.WithoutCancel(ctx)

	control := req.Control()
	key := BusyKey(req.ClientID, control)

	res := Result{Outcome: domain.OutcomeSkipped}
	// holder is set once this invocation owns the busy slot.
	var holder string
	defer func() { n.settle(ctx, req, key, holder, res, nav) }()

	if req.Label == "" {
		res.Err = domain.ErrEmptyLabel
		return res
	}

	token := uuid.NewString()
	acquired, err := n.busy.Acquire(ctx, key, token)
	switch {
	case err != nil:
		// Busy tracking is advisory; a broken store must not cost the event.
		n.logger.Warn("busy store unavailable", "error", err, "control", control)
	case !acquired:
		res.Err = domain.ErrControlBusy
		return res
	default:
		holder = token
		n.publish(req.ClientID, control, true)
	}

	res = n.deliver(ctx, req)
	return res
}

// deliver performs the single webhook call and classifies it as success,
// failure or exception.
func (n *Notifier) deliver(ctx context.Context, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Outcome: domain.OutcomeException,
				Err:     &domain.NotificationDeliveryFailure{Err: fmt.Errorf("panic: %v", r)},
			}
		}
	}()

	if n.limiter != nil && !n.limiter.Allow(ctx, req.ClientID, n.limit) {
		return Result{Outcome: domain.OutcomeSkipped, Err: domain.ErrRateLimited}
	}

	event := domain.NewPurchaseIntentEvent(req.Surface, req.Label, req.UserAgent, n.clock.Now())

	status, err := n.sender.Send(ctx, event)
	switch {
	case err != nil:
		return Result{
			Outcome: domain.OutcomeException,
			Err:     &domain.NotificationDeliveryFailure{Err: err},
		}
	case status < 200 || status > 299:
		return Result{
			Outcome:    domain.OutcomeFailure,
			StatusCode: status,
			Err:        &domain.NotificationDeliveryFailure{StatusCode: status},
		}
	default:
		return Result{Outcome: domain.OutcomeSuccess, StatusCode: status}
	}
}

// settle is the single exit of NotifyAndProceed: release busy state, report
// the outcome, navigate.
func (n *Notifier) settle(ctx context.Context, req Request, key, holder string, res Result, nav Navigator) {
	if holder != "" {
		if err := n.busy.Release(ctx, key, holder); err != nil {
			n.logger.Error("failed to release busy state", "error", err, "key", key)
		}
		n.publish(req.ClientID, req.Control(), false)
	}

	n.report(ctx, req, res)

	nav.Navigate(req.TargetRoute)
}

func (n *Notifier) report(ctx context.Context, req Request, res Result) {
	attrs := []any{
		"source", req.Surface.Source,
		req.Surface.LabelField, req.Label,
		"client_id", req.ClientID,
		"outcome", string(res.Outcome),
	}

	switch res.Outcome {
	case domain.OutcomeSuccess:
		n.logger.Info("purchase intent delivered", append(attrs, "status_code", res.StatusCode)...)
	case domain.OutcomeFailure:
		n.logger.Warn("purchase intent notification failed", append(attrs, "status_code", res.StatusCode, "error", res.Err)...)
	case domain.OutcomeException:
		n.logger.Error("purchase intent notification errored", append(attrs, "error", res.Err)...)
	default:
		n.logger.Info("purchase intent notification skipped", append(attrs, "reason", res.Err)...)
	}

	if n.recorder != nil {
		if err := n.recorder.RecordOutcome(ctx, req.Surface.Name, res.Outcome); err != nil {
			n.logger.Error("failed to record outcome", "error", err)
		}
	}
}

func (n *Notifier) publish(clientID, control string, busy bool) {
	if n.observer != nil {
		n.observer.BusyChanged(clientID, control, busy)
	}
}
