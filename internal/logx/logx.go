// Package logx holds the pslog helpers shared by the editor, toolbar and
// status monitor.
package logx

import (
	"context"
	"io"
	"strings"

	"pkt.systems/pslog"
)

// Config configures a logger built by New.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn or error.
	// Unknown values fall back to info.
	Level string
	// JSON selects structured output instead of console output.
	JSON bool
	// NoColor disables colored console output.
	NoColor bool
}

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) pslog.Logger {
	opts := pslog.Options{
		Mode:    pslog.ModeConsole,
		NoColor: cfg.NoColor,
	}
	if cfg.JSON {
		opts.Mode = pslog.ModeStructured
		opts.VerboseFields = true
		opts.NoColor = true
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		opts.MinLevel = pslog.InfoLevel
	}
	return pslog.NewWithOptions(w, opts)
}

// Or returns l, or the logger carried by a background context when l is nil.
func Or(l pslog.Logger) pslog.Logger {
	if l == nil {
		return pslog.Ctx(context.Background())
	}
	return l
}

// WithCommand binds a toolbar command name.
func WithCommand(l pslog.Logger, name string) pslog.Logger {
	return Or(l).With("command", name)
}

// WithProcess binds a server process id.
func WithProcess(l pslog.Logger, id string) pslog.Logger {
	return Or(l).With("process", id)
}
