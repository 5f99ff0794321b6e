package lead

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock captures scheduled callbacks so tests fire them explicitly
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{delay: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// fireAll runs every timer that has not been stopped
func (c *fakeClock) fireAll() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// mockGateway records inserts
type mockGateway struct {
	mu         sync.Mutex
	records    []SubmissionRecord
	insertFunc func(ctx context.Context, record SubmissionRecord) error
}

func (m *mockGateway) Insert(ctx context.Context, record SubmissionRecord) error {
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()
	if m.insertFunc != nil {
		return m.insertFunc(ctx, record)
	}
	return nil
}

func (m *mockGateway) calls() []SubmissionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SubmissionRecord(nil), m.records...)
}

type captureLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *captureLogger) Info(string, ...interface{}) {}

func (l *captureLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
}

var janeDoe = FormState{
	Name:    "Jane Doe",
	Email:   "jane@example.com",
	Phone:   "5551234567",
	Service: "Growth",
	Message: "",
}

func newTestSession(gw Gateway, opts ...Option) (*Session, *fakeClock, *int) {
	clock := &fakeClock{}
	closed := 0
	opts = append([]Option{
		WithAfterFunc(clock.AfterFunc),
		WithOnClose(func() { closed++ }),
	}, opts...)
	return NewSession(gw, opts...), clock, &closed
}

func TestSessionChange(t *testing.T) {
	s, _, _ := newTestSession(&mockGateway{})

	assert.Equal(t, MsgPhoneInvalid, s.Change(FieldPhone, "555-123-4567"))
	assert.Equal(t, MsgPhoneInvalid, s.Errors().Phone)
	assert.Empty(t, s.Errors().Name, "other fields stay untouched")

	assert.Empty(t, s.Change(FieldPhone, "5551234567"))
	assert.Empty(t, s.Errors().Phone)
	assert.Equal(t, "5551234567", s.Values().Phone)
	assert.Equal(t, StatusIdle, s.Status())
}

func TestSessionSubmitBlockedByValidation(t *testing.T) {
	gw := &mockGateway{}
	s, clock, _ := newTestSession(gw)
	s.Fill(FormState{Name: "", Email: "a@b.com", Phone: "1234567890", Service: "Starter"})

	res, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Full Name is required", verr.Errors.Name)
	assert.Equal(t, "Full Name is required", s.Errors().Name)

	assert.Equal(t, StatusIdle, res.Status)
	assert.Empty(t, gw.calls(), "gateway must not be called")
	assert.Zero(t, clock.pending())
}

func TestSessionSubmitRequiresPlan(t *testing.T) {
	gw := &mockGateway{}
	s, _, _ := newTestSession(gw)
	s.Fill(FormState{Name: "Jane", Email: "jane@example.com", Phone: "5551234567"})

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgPlanRequired, s.Errors().Service)
	assert.Empty(t, gw.calls())
}

func TestSessionSubmitSuccess(t *testing.T) {
	gw := &mockGateway{}
	s, clock, closed := newTestSession(gw)
	s.Fill(janeDoe)

	res, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.NoError(t, res.Err)

	calls := gw.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, SubmissionRecord{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Service: "Growth",
		Message: "",
	}, calls[0])

	assert.Equal(t, FormState{}, s.Values(), "form resets after success")
	assert.Equal(t, StatusSuccess, s.Status())
	assert.False(t, s.Submitting())

	require.Equal(t, 1, clock.pending())
	assert.Equal(t, DefaultCloseDelay, clock.timers[0].delay)

	clock.fireAll()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, 1, *closed)
}

func TestSessionSubmitGatewayFailure(t *testing.T) {
	gwErr := errors.New("connection refused")
	gw := &mockGateway{insertFunc: func(context.Context, SubmissionRecord) error { return gwErr }}
	logger := &captureLogger{}
	s, clock, closed := newTestSession(gw, WithLogger(logger))
	s.Fill(janeDoe)

	res, err := s.Submit(context.Background())
	require.NoError(t, err, "failures are swallowed by default")
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, ErrSubmission)
	assert.ErrorIs(t, res.Err, gwErr)
	assert.Len(t, logger.errors, 1)

	assert.Equal(t, janeDoe, s.Values(), "values are kept on failure")
	assert.True(t, s.Errors().Empty(), "no field-level error on failure")
	assert.False(t, s.Submitting())

	clock.fireAll()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, 1, *closed)
}

func TestSessionSubmitSurfaceFailures(t *testing.T) {
	gwErr := errors.New("boom")
	gw := &mockGateway{insertFunc: func(context.Context, SubmissionRecord) error { return gwErr }}
	s, clock, _ := newTestSession(gw, WithSurfaceFailures(true))
	s.Fill(janeDoe)

	res, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmission)
	assert.ErrorIs(t, err, gwErr)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 1, clock.pending(), "delayed close still scheduled")
}

func TestSessionSubmitGatewayPanic(t *testing.T) {
	gw := GatewayFunc(func(context.Context, SubmissionRecord) error { panic("nil client") })
	s, clock, closed := newTestSession(gw)
	s.Fill(janeDoe)

	var res Result
	require.NotPanics(t, func() {
		res, _ = s.Submit(context.Background())
	})
	assert.Equal(t, StatusFailed, res.Status)
	assert.False(t, s.Submitting())

	clock.fireAll()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, 1, *closed)
}

func TestSessionSubmitInProgress(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	gw := &mockGateway{insertFunc: func(context.Context, SubmissionRecord) error {
		close(started)
		<-release
		return nil
	}}
	s, _, _ := newTestSession(gw)
	s.Fill(janeDoe)

	done := make(chan Result)
	go func() {
		res, _ := s.Submit(context.Background())
		done <- res
	}()

	<-started
	assert.True(t, s.Submitting())
	assert.Equal(t, StatusSubmitting, s.Status())

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(release)
	res := <-done
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Len(t, gw.calls(), 1)
}

func TestSessionCloseCancelsDelayedClose(t *testing.T) {
	s, clock, closed := newTestSession(&mockGateway{})
	s.Fill(janeDoe)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, clock.pending())

	s.Close()
	assert.Equal(t, StatusIdle, s.Status())
	assert.Equal(t, 1, *closed)
	assert.Zero(t, clock.pending())

	clock.fireAll()
	assert.Equal(t, 1, *closed, "cancelled timer never fires")
}

func TestSessionStaleTimerIsNoop(t *testing.T) {
	clock := &fakeClock{}
	closed := 0
	s := NewSession(&mockGateway{}, WithAfterFunc(clock.AfterFunc), WithOnClose(func() { closed++ }))
	s.Fill(janeDoe)
	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	stale := clock.timers[0]
	s.Close()
	stale.fn()
	assert.Equal(t, 1, closed)
}

func TestSessionCloseDuringSubmit(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	gw := &mockGateway{insertFunc: func(context.Context, SubmissionRecord) error {
		close(started)
		<-release
		return nil
	}}
	s, clock, closed := newTestSession(gw)
	s.Fill(janeDoe)

	done := make(chan Result)
	go func() {
		res, _ := s.Submit(context.Background())
		done <- res
	}()

	<-started
	s.Close()
	close(release)
	res := <-done

	assert.Equal(t, StatusSuccess, res.Status, "in-flight call runs to completion")
	assert.Equal(t, StatusIdle, s.Status())
	assert.Zero(t, clock.pending())
	assert.Equal(t, 1, *closed)
}

func TestSessionResubmitAfterSuccessNeedsNewInput(t *testing.T) {
	gw := &mockGateway{}
	s, clock, _ := newTestSession(gw)
	s.Fill(janeDoe)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	_, err = s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrValidation, "form was reset")
	assert.Len(t, gw.calls(), 1)
	assert.Equal(t, 1, clock.pending())
}

func TestSessionMessageLength(t *testing.T) {
	s, _, _ := newTestSession(&mockGateway{})

	assert.Equal(t, MsgMessageTooLong, s.Change(FieldMessage, strings.Repeat("m", 301)))
	assert.Empty(t, s.Change(FieldMessage, strings.Repeat("m", 300)))
}

func TestSessionRealTimer(t *testing.T) {
	closed := make(chan struct{})
	s := NewSession(&mockGateway{},
		WithCloseDelay(10*time.Millisecond),
		WithOnClose(func() { close(closed) }),
	)
	s.Fill(janeDoe)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("session did not close after delay")
	}
	assert.Equal(t, StatusIdle, s.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
