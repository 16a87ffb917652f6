package contracts

// Notifier is the presentation-facing notification channel (toasts in the
// original UI). Implementations must be safe for concurrent use; the
// scheduler calls them from its fetch goroutine.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// SessionInvalidHandler is invoked by the HTTP core when any request
// comes back 401. It must be idempotent; several in-flight requests can
// fail at once.
type SessionInvalidHandler func()
