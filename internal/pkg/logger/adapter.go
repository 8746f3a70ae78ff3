package logger

import "object_explorer/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level functions,
// prefixing every record with a fixed set of attributes.
type slogAdapter struct {
	attrs []any
}

// NewSlogAdapter creates a port.Logger. attrs are key/value pairs added to
// every message, e.g. NewSlogAdapter("component", "fetcher").
func NewSlogAdapter(attrs ...any) port.Logger {
	return &slogAdapter{attrs: attrs}
}

func (a *slogAdapter) with(args []any) []any {
	if len(a.attrs) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(a.attrs)+len(args)), a.attrs...), args...)
}

func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, a.with(args)...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, a.with(args)...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, a.with(args)...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, a.with(args)...)
}

// Nop is a port.Logger that discards everything; handy in tests.
type Nop struct{}

func (Nop) Info(string, ...any)  {}
func (Nop) Debug(string, ...any) {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
