package notify

import (
	"vitalsync-client/internal/app/contracts"

	"go.uber.org/zap"
)

// logNotifier renders notifications into the structured log. The
// graphical toast layer is a drop-in replacement behind the same port.
type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) contracts.Notifier {
	return &logNotifier{log: logger}
}

func (n *logNotifier) Success(message string) {
	n.log.Info("notification", zap.String("kind", "success"), zap.String("message", message))
}

func (n *logNotifier) Warning(message string) {
	n.log.Warn("notification", zap.String("kind", "warning"), zap.String("message", message))
}

func (n *logNotifier) Error(message string) {
	n.log.Error("notification", zap.String("kind", "error"), zap.String("message", message))
}
