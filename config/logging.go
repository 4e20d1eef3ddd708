package config

import (
	"io"
	"log/slog"
)

// logger is an alias so options.go can reference *slog.Logger without every
// caller of markupfmt needing to import log/slog just to leave it nil.
type logger = *slog.Logger

// discardLogger is the fallback used when Options.Logger is nil, following
// the teacher's pattern in pages.go of routing to a discard handler rather
// than leaving the pointer nil and special-casing every call site.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Log returns o.Logger, or a discard logger when unset.
func (o Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}
