package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout free for label output).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WarnLog emits format-spec warnings at most once per distinct cause.
// The dedup state is owned by whoever constructs it (not process-wide), so a
// caller silences warnings simply by passing a discarded logger.
type WarnLog struct {
	mu     sync.Mutex
	logger *slog.Logger
	seen   map[domain.WarningCause]struct{}
}

// NewWarnLog creates a warning sink writing to the given logger.
// A nil logger discards everything.
func NewWarnLog(logger *slog.Logger) *WarnLog {
	if logger == nil {
		logger = NewNop()
	}
	return &WarnLog{
		logger: logger,
		seen:   make(map[domain.WarningCause]struct{}),
	}
}

// Report logs each warning whose cause has not been reported before.
func (w *WarnLog) Report(warns ...domain.Warning) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, warn := range warns {
		if _, ok := w.seen[warn.Cause]; ok {
			continue
		}
		w.seen[warn.Cause] = struct{}{}
		w.logger.Warn(warn.Detail, "cause", string(warn.Cause))
	}
}
