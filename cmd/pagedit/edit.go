package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/config"
	"github.com/dshills/pagedit/internal/logx"
	"github.com/dshills/pagedit/internal/procstatus"
	"github.com/dshills/pagedit/internal/term"
	"github.com/dshills/pagedit/internal/toolbar"
)

func newEditCmd(root *rootOptions) *cobra.Command {
	var (
		logFile   string
		processID string
	)
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a wiki page in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}

			// The screen owns stderr while the editor runs.
			logger, closeLog, err := editorLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			path := args[0]
			content, err := readPage(path)
			if err != nil {
				return err
			}

			table, err := toolbar.FromConfig(cfg.Toolbar)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				_ = table.Close()
				return err
			}
			if err := screen.Init(); err != nil {
				_ = table.Close()
				return err
			}
			defer screen.Fini()
			screen.EnableMouse()

			ed, err := term.NewEditor(screen, path, content, table,
				term.WithLogger(logger),
				term.WithTabWidth(cfg.Editor.TabWidth),
				term.WithToolbar(cfg.Editor.ShowToolbar),
			)
			if err != nil {
				_ = table.Close()
				return err
			}
			defer ed.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if cfg.Path != "" {
				go watchToolbar(ctx, cfg.Path, ed, logger)
			}
			if processID != "" {
				m := procstatus.FromConfig(processID, cfg.Status, ed.StatusRenderer(), procstatus.WithLogger(logger))
				go m.Run(ctx)
			}

			logger.Info("editor started", "path", path, "buttons", len(ed.Toolbar().Commands()))
			if err := ed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (overrides log.file)")
	cmd.Flags().StringVar(&processID, "process", "", "Show the status of this server process in the status row")
	return cmd
}

// readPage returns the contents of path, or "" for a new file.
func readPage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// editorLogger returns a logger writing to the configured file, or one
// that discards everything when no file is set.
func editorLogger(cfg config.Log) (pslog.Logger, func(), error) {
	lc := logx.Config{Level: cfg.Level, JSON: cfg.JSON, NoColor: true}
	if cfg.File == "" {
		return logx.New(io.Discard, lc), func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logx.New(f, lc), func() { _ = f.Close() }, nil
}

// watchToolbar rebinds the editor's toolbar whenever the config file changes.
func watchToolbar(ctx context.Context, path string, ed *term.Editor, logger pslog.Logger) {
	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err != nil {
			logger.Warn("config reload failed", "err", err)
			_ = ed.Notify(err)
			return
		}
		table, err := toolbar.FromConfig(cfg.Toolbar)
		if err != nil {
			logger.Warn("toolbar rebuild failed", "err", err)
			_ = ed.Notify(err)
			return
		}
		if err := ed.Reload(table); err != nil {
			_ = table.Close()
		}
	})
	if err != nil {
		logger.Warn("config watch stopped", "err", err)
	}
}
