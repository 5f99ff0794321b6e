package service

import (
	"context"
	"fmt"

	"medisync/internal/config"
	"medisync/internal/db"
	"medisync/internal/lead"
	"medisync/internal/logging"
	"medisync/internal/repository"
)

// Notifier is told about every stored demo request
type Notifier interface {
	NotifyDemoRequest(ctx context.Context, record lead.SubmissionRecord) error
}

// DemoRequestService is the Submission Gateway used by form sessions: it
// stores the record and then notifies the sales team.
type DemoRequestService struct {
	store     repository.DemoRequestRepository
	notifiers []Notifier
	logger    *logging.Logger
}

// NewDemoRequestService creates the gateway. Nil notifiers are skipped.
func NewDemoRequestService(store repository.DemoRequestRepository, logger *logging.Logger, notifiers ...Notifier) *DemoRequestService {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	s := &DemoRequestService{store: store, logger: logger}
	for _, n := range notifiers {
		if n != nil {
			s.notifiers = append(s.notifiers, n)
		}
	}
	return s
}

// Insert implements lead.Gateway. Notification failures are logged and never
// fail an insert that already succeeded.
func (s *DemoRequestService) Insert(ctx context.Context, record lead.SubmissionRecord) error {
	if err := s.store.Insert(ctx, record); err != nil {
		return logging.WrapError(err, "store demo request")
	}

	for _, n := range s.notifiers {
		if err := n.NotifyDemoRequest(ctx, record); err != nil {
			s.logger.Warn("Failed to notify about demo request from %s: %v", record.Email, err)
		}
	}
	return nil
}

// Ping checks the underlying store
func (s *DemoRequestService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// OpenStore builds the store selected by cfg.Gateway. The returned close
// function releases its resources.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.DemoRequestRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Gateway {
	case config.GatewaySupabase:
		return NewSupabaseService(SupabaseConfig{
			URL:     cfg.SupabaseURL,
			Key:     cfg.SupabaseKey,
			Table:   cfg.SupabaseTable,
			Timeout: cfg.SupabaseTimeout,
		}), noop, nil
	case config.GatewayPostgres:
		database, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewDemoRequestRepository(database), database.Close, nil
	case config.GatewayMemory:
		return repository.NewMemoryRepository(), noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: unknown gateway %q", logging.ErrInvalidConfig, cfg.Gateway)
	}
}

// NewGateway wires the configured store with the Telegram notifier
func NewGateway(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*DemoRequestService, func() error, error) {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	store, closeFn, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, closeFn, err
	}

	var notifiers []Notifier
	if telegram := NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID); telegram.Enabled() {
		notifiers = append(notifiers, telegram)
	} else {
		logger.Debug("Telegram notifications disabled")
	}

	return NewDemoRequestService(store, logger, notifiers...), closeFn, nil
}
