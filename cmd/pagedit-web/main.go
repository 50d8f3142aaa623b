//go:build js && wasm

// Command pagedit-web instruments a wiki page in the browser. Build it with
// GOOS=js GOARCH=wasm and load it with the Go wasm_exec.js support script
// on the page editing form.
package main

import (
	"context"
	"os"

	"github.com/dshills/pagedit/internal/config"
	"github.com/dshills/pagedit/internal/logx"
	"github.com/dshills/pagedit/internal/procstatus"
	"github.com/dshills/pagedit/internal/toolbar"
	"github.com/dshills/pagedit/internal/web"
)

func main() {
	web.Ready(func() { start(web.Global()) })
	// Button listeners and the monitor live as long as the page.
	select {}
}

func start(doc web.Document) {
	cfg := config.Default()
	logger := logx.New(os.Stderr, logx.Config{Level: cfg.Log.Level, NoColor: true})

	table, err := toolbar.FromConfig(cfg.Toolbar)
	if err != nil {
		logger.Error("toolbar setup failed", "err", err)
		return
	}
	tb, err := web.InstrumentPageEdit(doc, table, toolbar.WithLogger(logger))
	if err != nil {
		logger.Error("page instrumentation failed", "err", err)
	} else if tb != nil {
		logger.Debug("page edit instrumented", "buttons", len(tb.Buttons()))
	}

	web.StartProcessStatus(context.Background(), doc, cfg.Status, procstatus.WithLogger(logger))
}
