package engine

import (
	"log/slog"

	"github.com/leengari/colstore/internal/logging"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer. A nil logger means slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: logging.WithComponent(logger, "engine"),
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		"event", event.Type,
		"op_id", event.OpID,
		"seq", event.Seq,
		"kind", event.Kind,
		"target", event.Target,
	}

	switch event.Type {
	case EventOpStart:
		lo.logger.Debug("operation_lifecycle", attrs...)
	case EventOpEnd:
		attrs = append(attrs, "elapsed", event.Elapsed)
		if event.Err != nil {
			lo.logger.Warn("operation_lifecycle", append(attrs, "error", event.Err)...)
			return
		}
		lo.logger.Info("operation_lifecycle", attrs...)
	case EventTableGrow:
		if g, ok := event.Data.(Growth); ok {
			attrs = append(attrs, "table", g.Table, "from", g.From, "to", g.To)
		}
		lo.logger.Info("operation_lifecycle", attrs...)
	default:
		lo.logger.Info("operation_lifecycle", append(attrs, "data", event.Data)...)
	}
}
