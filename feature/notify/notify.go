package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier sends a report to subscribers.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// New returns a Telegram notifier when the config enables one, and Noop otherwise.
func New(cfg Config, logger *zap.Logger) Notifier {
	if !cfg.Enabled() {
		return Noop{Logger: logger}
	}
	return NewTelegram(cfg, logger)
}

// Noop logs reports instead of sending them.
type Noop struct {
	Logger *zap.Logger
}

// Notify logs the report size at debug level.
func (n Noop) Notify(_ context.Context, text string) error {
	if n.Logger != nil {
		n.Logger.Debug("Notifications disabled, report dropped", zap.Int("length", len(text)))
	}
	return nil
}
