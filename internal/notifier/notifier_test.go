package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Priya8975/pawpal-landing/internal/clock"
	"github.com/Priya8975/pawpal-landing/internal/domain"
)

const registerRoute = "/owner/register"

func testLogger(buf *bytes.Buffer) *slog.Logger {
	var w io.Writer = io.Discard
	if buf != nil {
		w = buf
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// recordingNavigator counts navigations and checks busy state at the moment
// of navigation.
type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) assertOnce(t *testing.T, want string) {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) != 1 {
		t.Fatalf("expected exactly 1 navigation, got %d (%v)", len(n.routes), n.routes)
	}
	if n.routes[0] != want {
		t.Errorf("navigated to %q, want %q", n.routes[0], want)
	}
}

type capturedRequest struct {
	Payload     map[string]string
	ContentType string
}

// webhookServer records every POST and answers with status.
func webhookServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var received []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("webhook received invalid JSON: %v", err)
		}
		mu.Lock()
		received = append(received, capturedRequest{Payload: payload, ContentType: r.Header.Get("Content-Type")})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), received...)
	}
}

func newTestNotifier(url string, busy BusyStore, logBuf *bytes.Buffer, opts ...Option) *Notifier {
	logger := testLogger(logBuf)
	sender := NewHTTPSender(url, "", 5*time.Second, logger)
	return New(sender, busy, clock.NewSystem(), logger, opts...)
}

func ctaRequest() Request {
	return Request{
		Surface:     domain.SurfaceCTA,
		Label:       domain.CTAAction,
		TargetRoute: registerRoute,
		UserAgent:   "Mozilla/5.0 (test)",
		ClientID:    "client-1",
	}
}

func planRequest(plan string) Request {
	return Request{
		Surface:     domain.SurfacePricing,
		Label:       plan,
		TargetRoute: registerRoute,
		UserAgent:   "Mozilla/5.0 (test)",
		ClientID:    "client-1",
	}
}

func TestNotifyAndProceed_CTASuccess(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	busy := NewMemoryBusyStore()
	n := newTestNotifier(server.URL, busy, nil)
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if res.Outcome != domain.OutcomeSuccess {
		t.Errorf("outcome = %s, want success (err=%v)", res.Outcome, res.Err)
	}
	nav.assertOnce(t, registerRoute)

	reqs := received()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 POST, got %d", len(reqs))
	}
	if reqs[0].ContentType != "application/json" {
		t.Errorf("Content-Type = %q", reqs[0].ContentType)
	}
	if reqs[0].Payload["source"] != "landing_cta" {
		t.Errorf("source = %q, want landing_cta", reqs[0].Payload["source"])
	}
	if reqs[0].Payload["action"] != domain.CTAAction {
		t.Errorf("action = %q, want %q", reqs[0].Payload["action"], domain.CTAAction)
	}
	if reqs[0].Payload["userAgent"] != "Mozilla/5.0 (test)" {
		t.Errorf("userAgent = %q", reqs[0].Payload["userAgent"])
	}
	if _, err := time.Parse(time.RFC3339, reqs[0].Payload["timestamp"]); err != nil {
		t.Errorf("timestamp %q is not ISO-8601", reqs[0].Payload["timestamp"])
	}
}

func TestNotifyAndProceed_MonthlyPlanServerError(t *testing.T) {
	server, received := webhookServer(t, http.StatusInternalServerError)
	var logs bytes.Buffer
	busy := NewMemoryBusyStore()
	n := newTestNotifier(server.URL, busy, &logs)
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), planRequest("monthly"), nav)

	if res.Outcome != domain.OutcomeFailure {
		t.Errorf("outcome = %s, want failure", res.Outcome)
	}
	if res.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.StatusCode)
	}
	var failure *domain.NotificationDeliveryFailure
	if !errors.As(res.Err, &failure) {
		t.Errorf("expected NotificationDeliveryFailure, got %v", res.Err)
	}

	nav.assertOnce(t, registerRoute)

	reqs := received()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 POST, got %d", len(reqs))
	}
	if reqs[0].Payload["package"] != "monthly" {
		t.Errorf("package = %q, want monthly", reqs[0].Payload["package"])
	}
	if reqs[0].Payload["source"] != "pricing_section" {
		t.Errorf("source = %q, want pricing_section", reqs[0].Payload["source"])
	}

	if !strings.Contains(logs.String(), "purchase intent notification failed") {
		t.Errorf("failure should be logged, logs: %s", logs.String())
	}

	if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "plan:monthly")); isBusy {
		t.Error("busy state should be cleared after failure")
	}
}

func TestNotifyAndProceed_NetworkError(t *testing.T) {
	// A closed server refuses connections.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var logs bytes.Buffer
	busy := NewMemoryBusyStore()
	n := newTestNotifier(url, busy, &logs)
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if res.Outcome != domain.OutcomeException {
		t.Errorf("outcome = %s, want exception", res.Outcome)
	}
	nav.assertOnce(t, registerRoute)

	if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "cta")); isBusy {
		t.Error("busy state should be cleared after a network error")
	}
	if !strings.Contains(logs.String(), "purchase intent notification errored") {
		t.Errorf("exception should be logged, logs: %s", logs.String())
	}
}

func TestNotifyAndProceed_BusyWhileInFlight(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadGateway} {
		busy := NewMemoryBusyStore()
		var busyDuringCall atomic.Bool

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isBusy, _ := busy.IsBusy(r.Context(), BusyKey("client-1", "cta"))
			busyDuringCall.Store(isBusy)
			w.WriteHeader(status)
		}))

		n := newTestNotifier(server.URL, busy, nil)
		nav := NavigatorFunc(func(string) {
			if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "cta")); isBusy {
				t.Errorf("status %d: busy state should be cleared before navigation", status)
			}
		})

		n.NotifyAndProceed(context.Background(), ctaRequest(), nav)
		server.Close()

		if !busyDuringCall.Load() {
			t.Errorf("status %d: control should be busy while the webhook call is in flight", status)
		}
		if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "cta")); isBusy {
			t.Errorf("status %d: busy state should be cleared after settlement", status)
		}
	}
}

func TestNotifyAndProceed_IndependentPlans(t *testing.T) {
	busy := NewMemoryBusyStore()
	release := make(chan struct{})
	monthlyInFlight := make(chan struct{})

	var mu sync.Mutex
	var packages []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		packages = append(packages, payload["package"])
		mu.Unlock()

		if payload["package"] == "monthly" {
			close(monthlyInFlight)
			<-release
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := newTestNotifier(server.URL, busy, nil)
	monthlyNav := &recordingNavigator{}
	annualNav := &recordingNavigator{}

	done := make(chan Result, 1)
	go func() {
		done <- n.NotifyAndProceed(context.Background(), planRequest("monthly"), monthlyNav)
	}()
	<-monthlyInFlight

	ctx := context.Background()
	if isBusy, _ := busy.IsBusy(ctx, BusyKey("client-1", "plan:monthly")); !isBusy {
		t.Error("monthly control should be busy")
	}
	if isBusy, _ := busy.IsBusy(ctx, BusyKey("client-1", "plan:annual")); isBusy {
		t.Error("annual control must not inherit monthly's busy state")
	}

	annual := n.NotifyAndProceed(ctx, planRequest("annual"), annualNav)
	if annual.Outcome != domain.OutcomeSuccess {
		t.Errorf("annual outcome = %s, want success", annual.Outcome)
	}
	annualNav.assertOnce(t, registerRoute)

	close(release)
	monthly := <-done
	if monthly.Outcome != domain.OutcomeSuccess {
		t.Errorf("monthly outcome = %s, want success", monthly.Outcome)
	}
	monthlyNav.assertOnce(t, registerRoute)

	mu.Lock()
	defer mu.Unlock()
	if len(packages) != 2 || packages[0] != "monthly" || packages[1] != "annual" {
		t.Errorf("expected payloads for monthly then annual, got %v", packages)
	}
}

func TestNotifyAndProceed_DuplicateClickStillNavigates(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	busy := NewMemoryBusyStore()
	n := newTestNotifier(server.URL, busy, nil)
	nav := &recordingNavigator{}

	key := BusyKey("client-1", "cta")
	if _, err := busy.Acquire(context.Background(), key, "in-flight"); err != nil {
		t.Fatal(err)
	}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if res.Outcome != domain.OutcomeSkipped || !errors.Is(res.Err, domain.ErrControlBusy) {
		t.Errorf("result = %+v, want skipped/ErrControlBusy", res)
	}
	if len(received()) != 0 {
		t.Error("a busy control must not send a second payload")
	}
	nav.assertOnce(t, registerRoute)

	// The in-flight owner still holds the slot.
	if isBusy, _ := busy.IsBusy(context.Background(), key); !isBusy {
		t.Error("duplicate click must not release another invocation's busy state")
	}
}

func TestNotifyAndProceed_EmptyLabel(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	n := newTestNotifier(server.URL, NewMemoryBusyStore(), nil)
	nav := &recordingNavigator{}

	req := planRequest("")
	res := n.NotifyAndProceed(context.Background(), req, nav)

	if !errors.Is(res.Err, domain.ErrEmptyLabel) {
		t.Errorf("err = %v, want ErrEmptyLabel", res.Err)
	}
	if len(received()) != 0 {
		t.Error("no payload should be sent without a label")
	}
	nav.assertOnce(t, registerRoute)
}

type panickingSender struct{}

func (panickingSender) Send(context.Context, domain.PurchaseIntentEvent) (int, error) {
	panic("encoder exploded")
}

func TestNotifyAndProceed_PanicIsAnException(t *testing.T) {
	busy := NewMemoryBusyStore()
	n := New(panickingSender{}, busy, clock.NewSystem(), testLogger(nil))
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if res.Outcome != domain.OutcomeException {
		t.Errorf("outcome = %s, want exception", res.Outcome)
	}
	nav.assertOnce(t, registerRoute)
	if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "cta")); isBusy {
		t.Error("busy state should be cleared after a panic")
	}
}

type capturingSender struct {
	events []domain.PurchaseIntentEvent
}

func (s *capturingSender) Send(_ context.Context, e domain.PurchaseIntentEvent) (int, error) {
	s.events = append(s.events, e)
	return http.StatusOK, nil
}

func TestNotifyAndProceed_TimestampFromClock(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	sender := &capturingSender{}
	n := New(sender, NewMemoryBusyStore(), clock.NewFixed(now), testLogger(nil))

	n.NotifyAndProceed(context.Background(), ctaRequest(), &recordingNavigator{})

	if len(sender.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sender.events))
	}
	if !sender.events[0].Timestamp.Equal(now) {
		t.Errorf("timestamp = %s, want %s", sender.events[0].Timestamp, now)
	}
}

type busyTransition struct {
	ClientID string
	Control  string
	Busy     bool
}

type recordingObserver struct {
	mu          sync.Mutex
	transitions []busyTransition
}

func (o *recordingObserver) BusyChanged(clientID, control string, busy bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.transitions = append(o.transitions, busyTransition{clientID, control, busy})
}

type countingRecorder struct {
	mu     sync.Mutex
	counts map[domain.Outcome]int
}

func (r *countingRecorder) RecordOutcome(_ context.Context, _ string, outcome domain.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[domain.Outcome]int)
	}
	r.counts[outcome]++
	return nil
}

func TestNotifyAndProceed_ObserverAndRecorder(t *testing.T) {
	server, _ := webhookServer(t, http.StatusServiceUnavailable)
	observer := &recordingObserver{}
	recorder := &countingRecorder{}
	n := newTestNotifier(server.URL, NewMemoryBusyStore(), nil, WithObserver(observer), WithRecorder(recorder))

	n.NotifyAndProceed(context.Background(), planRequest("annual"), &recordingNavigator{})

	want := []busyTransition{
		{"client-1", "plan:annual", true},
		{"client-1", "plan:annual", false},
	}
	if len(observer.transitions) != len(want) {
		t.Fatalf("transitions = %+v, want %+v", observer.transitions, want)
	}
	for i := range want {
		if observer.transitions[i] != want[i] {
			t.Errorf("transition %d = %+v, want %+v", i, observer.transitions[i], want[i])
		}
	}

	if recorder.counts[domain.OutcomeFailure] != 1 {
		t.Errorf("failure count = %d, want 1", recorder.counts[domain.OutcomeFailure])
	}
}

type denyLimiter struct{}

func (denyLimiter) Allow(context.Context, string, int) bool { return false }

func TestNotifyAndProceed_RateLimitedSkipsWebhook(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	busy := NewMemoryBusyStore()
	n := newTestNotifier(server.URL, busy, nil, WithLimiter(denyLimiter{}, 1))
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if !errors.Is(res.Err, domain.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", res.Err)
	}
	if len(received()) != 0 {
		t.Error("rate limited click must not reach the webhook")
	}
	nav.assertOnce(t, registerRoute)
	if isBusy, _ := busy.IsBusy(context.Background(), BusyKey("client-1", "cta")); isBusy {
		t.Error("busy state should be cleared")
	}
}

type brokenBusyStore struct{}

func (brokenBusyStore) Acquire(context.Context, string, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (brokenBusyStore) Release(context.Context, string, string) error { return nil }
func (brokenBusyStore) IsBusy(context.Context, string) (bool, error)  { return false, nil }

func TestNotifyAndProceed_BrokenBusyStoreStillNotifies(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	n := newTestNotifier(server.URL, brokenBusyStore{}, nil)
	nav := &recordingNavigator{}

	res := n.NotifyAndProceed(context.Background(), ctaRequest(), nav)

	if res.Outcome != domain.OutcomeSuccess {
		t.Errorf("outcome = %s, want success", res.Outcome)
	}
	if len(received()) != 1 {
		t.Errorf("expected 1 POST, got %d", len(received()))
	}
	nav.assertOnce(t, registerRoute)
}

func TestNotifyAndProceed_CancelledContextStillDelivers(t *testing.T) {
	server, received := webhookServer(t, http.StatusOK)
	n := newTestNotifier(server.URL, NewMemoryBusyStore(), nil)
	nav := &recordingNavigator{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := n.NotifyAndProceed(ctx, ctaRequest(), nav)

	if res.Outcome != domain.OutcomeSuccess {
		t.Errorf("outcome = %s, want success", res.Outcome)
	}
	if len(received()) != 1 {
		t.Errorf("expected 1 POST, got %d", len(received()))
	}
	nav.assertOnce(t, registerRoute)
}
