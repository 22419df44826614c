// Package corelog is the diagnostic channel of the property value engine.
//
// Conversion failures, ambiguous textual values and non-fatal warnings are
// reported here, keyed by a named logging domain, and never through the
// values themselves. By default nothing is logged.
package corelog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Logging domains, attached to every record as the "domain" attribute.
const (
	DomainCore    = "CoreLog"
	DomainDebug   = "Debug"
	DomainRuntime = "Runtime"
)

// DomainKey is the attribute key carrying the logging domain.
const DomainKey = "domain"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by every package of the engine.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: converter construction, registry size
//   - [slog.LevelWarn]: appending into non-empty lists, generating into existing values
//   - [slog.LevelError]: failed conversions (overflow, ambiguous text, unsupported pairs)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger without a domain attached.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// CoreLog returns the logger for the core domain (data handling warnings).
func CoreLog() *slog.Logger { return domain(DomainCore) }

// Debug returns the logger for the debug domain (engine internals).
func Debug() *slog.Logger { return domain(DomainDebug) }

// Runtime returns the logger for the runtime domain (failed conversions).
func Runtime() *slog.Logger { return domain(DomainRuntime) }

func domain(name string) *slog.Logger {
	return Logger().With(slog.String(DomainKey, name))
}
