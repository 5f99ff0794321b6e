package lead

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCloseDelay is how long a finished submission stays visible before
// the session closes itself.
const DefaultCloseDelay = 2 * time.Second

// Gateway inserts a validated record into the external store
type Gateway interface {
	Insert(ctx context.Context, record SubmissionRecord) error
}

// GatewayFunc adapts a function to the Gateway interface
type GatewayFunc func(ctx context.Context, record SubmissionRecord) error

func (f GatewayFunc) Insert(ctx context.Context, record SubmissionRecord) error {
	return f(ctx, record)
}

// Logger is the subset of logging.Logger the session needs
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Status is the state of the submit lifecycle
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes one completed submit attempt
type Result struct {
	Status Status
	Record SubmissionRecord
	// Err is the gateway failure when Status is StatusFailed
	Err error
}

// Option configures a Session
type Option func(*Session)

// WithCloseDelay overrides DefaultCloseDelay
func WithCloseDelay(d time.Duration) Option {
	return func(s *Session) {
		s.closeDelay = d
	}
}

// WithOnClose registers a callback run every time the session closes
func WithOnClose(fn func()) Option {
	return func(s *Session) {
		s.onClose = fn
	}
}

func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAfterFunc replaces the timer used for the delayed close
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.afterFunc = fn
		}
	}
}

// WithSurfaceFailures makes Submit return gateway failures as errors.
// By default a failed insert is only logged and reported through Result.
func WithSurfaceFailures(surface bool) Option {
	return func(s *Session) {
		s.surfaceFailures = surface
	}
}

// Session owns the form values and errors of one demo-request form and
// drives it through Idle → Submitting → {Success, Failed} → Idle.
type Session struct {
	gateway         Gateway
	logger          Logger
	closeDelay      time.Duration
	onClose         func()
	afterFunc       AfterFunc
	surfaceFailures bool

	mu         sync.Mutex
	values     FormState
	errors     ErrorState
	status     Status
	submitting bool
	closing    bool
	closeTimer Timer
	generation uint64
}

// NewSession creates an idle session that submits through gateway
func NewSession(gateway Gateway, opts ...Option) *Session {
	s := &Session{
		gateway:    gateway,
		logger:     nopLogger{},
		closeDelay: DefaultCloseDelay,
		afterFunc:  stdAfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Change stores value for f and revalidates that field only. It returns the
// field's new error message.
func (s *Session) Change(f Field, value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values.Set(f, value)
	msg := ValidateField(f, value)
	s.errors.Set(f, msg)
	return msg
}

// Fill applies Change to every field of state
func (s *Session) Fill(state FormState) ErrorState {
	for _, f := range fields {
		s.Change(f, state.Get(f))
	}
	return s.Errors()
}

// Submit validates the whole form and, when it is clean, inserts it through
// the gateway. Validation failures return a *ValidationErrors without
// touching the gateway. Gateway failures are logged; they are returned as an
// error only when WithSurfaceFailures is set. In both outcomes the session
// closes itself after the close delay.
func (s *Session) Submit(ctx context.Context) (Result, error) {
	record, err := s.begin()
	if err != nil {
		return Result{Status: s.Status()}, err
	}
	defer s.endSubmit()

	insertErr := s.insert(ctx, record)
	return s.complete(record, insertErr)
}

func (s *Session) begin() (SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return SubmissionRecord{}, ErrSubmitInProgress
	}

	s.errors = ValidateForm(s.values)
	if !s.errors.Empty() {
		return SubmissionRecord{}, &ValidationErrors{Errors: s.errors}
	}

	s.stopTimerLocked()
	s.submitting = true
	s.closing = false
	s.status = StatusSubmitting
	return s.values.Record(), nil
}

// insert calls the gateway, turning a panic into an error
func (s *Session) insert(ctx context.Context, record SubmissionRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gateway panic: %v", r)
		}
	}()
	return s.gateway.Insert(ctx, record)
}

func (s *Session) complete(record SubmissionRecord, insertErr error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if insertErr != nil {
		subErr := &SubmissionError{Err: insertErr}
		s.logger.Error("Error saving demo request for %s: %v", record.Email, insertErr)
		s.status = StatusFailed
		res := Result{Status: StatusFailed, Record: record, Err: subErr}
		if s.surfaceFailures {
			return res, subErr
		}
		return res, nil
	}

	s.logger.Info("Demo request saved for %s (%s plan)", record.Email, record.Service)
	s.status = StatusSuccess
	s.values = FormState{}
	return Result{Status: StatusSuccess, Record: record}, nil
}

// endSubmit always runs after the gateway call: it clears the submitting
// flag and schedules the delayed close.
func (s *Session) endSubmit() {
	s.mu.Lock()
	s.submitting = false

	if s.closing {
		s.closing = false
		s.status = StatusIdle
		s.mu.Unlock()
		return
	}

	s.generation++
	gen := s.generation
	s.closeTimer = s.afterFunc(s.closeDelay, func() { s.autoClose(gen) })
	s.mu.Unlock()
}

func (s *Session) autoClose(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.submitting {
		s.mu.Unlock()
		return
	}
	s.closeTimer = nil
	s.status = StatusIdle
	onClose := s.onClose
	s.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

// Close closes the form manually. A pending delayed close is cancelled.
// Closing during a submission lets the gateway call finish but skips the
// delayed close.
func (s *Session) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	if s.submitting {
		s.closing = true
	} else {
		s.status = StatusIdle
	}
	onClose := s.onClose
	s.mu.Unlock()

	if onClose != nil {
		onClose()
	}
}

func (s *Session) stopTimerLocked() {
	s.generation++
	if s.closeTimer != nil {
		s.closeTimer.Stop()
		s.closeTimer = nil
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submitting reports whether a gateway call is in flight
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Values returns a snapshot of the form values
func (s *Session) Values() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// Errors returns a snapshot of the per-field errors
func (s *Session) Errors() ErrorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors
}
