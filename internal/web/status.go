package web

import (
	"context"
	"html"

	"github.com/dshills/pagedit/internal/config"
	"github.com/dshills/pagedit/internal/procstatus"
)

// StatusID is the id of the element showing process status.
const StatusID = "process-status"

// SpinnerURL is the busy indicator shown next to in-progress messages.
var SpinnerURL = "/images/spinner.gif"

// StatusRenderer writes monitor messages into el.
func StatusRenderer(el Element) procstatus.Renderer {
	return procstatus.RendererFunc(func(m procstatus.Message) {
		body := html.EscapeString(m.Text)
		if m.Spinner {
			body = `<img src="` + html.EscapeString(SpinnerURL) + `" /> ` + body
		}
		el.Set("innerHTML", body)
	})
}

// StartProcessStatus starts polling the process named by the status
// element's "js-process-id-N" class. It returns nil when the page has no
// such element. The monitor runs until it finishes or ctx is done.
func StartProcessStatus(ctx context.Context, doc Document, cfg config.Status, opts ...procstatus.Option) *procstatus.Monitor {
	el := doc.ElementByID(StatusID)
	if el == nil {
		return nil
	}
	id, ok := procstatus.ParseProcessID(el.ClassName())
	if !ok {
		return nil
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}

	m := procstatus.FromConfig(id, cfg, StatusRenderer(el), opts...)
	go m.Run(ctx)
	return m
}
