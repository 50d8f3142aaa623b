package term

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/engine/textarea"
	"github.com/dshills/pagedit/internal/logx"
	"github.com/dshills/pagedit/internal/procstatus"
	"github.com/dshills/pagedit/internal/toolbar"
)

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleToolbar   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleButton    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

const spinnerGlyph = "* "

// Editor is a full-screen markup editor: a toolbar row, the text body and
// a status row. All methods must be called from the goroutine running Run,
// except Reload, Notify and the renderer from StatusRenderer, which post
// events to the screen.
type Editor struct {
	screen tcell.Screen
	area   *TextArea
	text   *textarea.Text
	bar    *toolbar.Toolbar
	table  toolbar.Table
	logger pslog.Logger

	path        string
	tabWidth    int
	showToolbar bool

	status    string
	spinner   bool
	dirty     bool
	quitArmed bool
	dragging  bool
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithLogger sets the editor's logger. It must not write to the screen's
// terminal.
func WithLogger(l pslog.Logger) EditorOption {
	return func(e *Editor) {
		e.logger = l
	}
}

// WithTabWidth sets the display width of a tab stop.
func WithTabWidth(n int) EditorOption {
	return func(e *Editor) {
		if n > 0 {
			e.tabWidth = n
		}
	}
}

// WithToolbar shows or hides the toolbar row. Function keys work either way.
func WithToolbar(show bool) EditorOption {
	return func(e *Editor) {
		e.showToolbar = show
	}
}

// NewEditor creates an editor for content, saved to path. The editor takes
// ownership of table and closes it on Close or when it is replaced.
// The caller initializes and finalizes screen.
func NewEditor(screen tcell.Screen, path, content string, table toolbar.Table, opts ...EditorOption) (*Editor, error) {
	e := &Editor{
		screen:      screen,
		path:        path,
		table:       table,
		tabWidth:    4,
		showToolbar: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logx.Or(e.logger)

	e.area = NewTextArea(content, e.tabWidth)
	text, err := textarea.New(textarea.FromPoints(e.area))
	if err != nil {
		return nil, err
	}
	e.text = text
	// Every button is drawn, so every definition is bound.
	e.bar = toolbar.New(text, table, toolbar.AllButtons, toolbar.WithLogger(e.logger))
	e.area.Focus()
	return e, nil
}

// Area returns the text body.
func (e *Editor) Area() *TextArea {
	return e.area
}

// Toolbar returns the bound toolbar.
func (e *Editor) Toolbar() *toolbar.Toolbar {
	return e.bar
}

// Status returns the status row message.
func (e *Editor) Status() string {
	return e.status
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Close releases the command table.
func (e *Editor) Close() error {
	return e.table.Close()
}

// Reload asks the running editor to rebind its toolbar to table.
func (e *Editor) Reload(table toolbar.Table) error {
	return e.screen.PostEvent(tcell.NewEventInterrupt(table))
}

// Notify asks the running editor to show err in the status row.
func (e *Editor) Notify(err error) error {
	return e.screen.PostEvent(tcell.NewEventInterrupt(err))
}

// StatusRenderer returns a process status renderer that shows messages in
// the status row. It is safe to use from any goroutine.
func (e *Editor) StatusRenderer() procstatus.Renderer {
	return procstatus.RendererFunc(func(m procstatus.Message) {
		_ = e.screen.PostEvent(tcell.NewEventInterrupt(m))
	})
}

// Run draws the editor and handles events until the user quits or ctx is
// done. Quitting returns nil.
func (e *Editor) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	e.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if e.HandleEvent(ev) {
				return nil
			}
			e.Draw()
		}
	}
}

// HandleEvent applies one screen event and reports whether the editor
// should quit.
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return e.handleKey(ev)
	case *tcell.EventMouse:
		e.handleMouse(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventInterrupt:
		e.handleInterrupt(ev.Data())
	}
	return false
}

func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	if isCtrl(ev, 'q', tcell.KeyCtrlQ) {
		if e.dirty && !e.quitArmed {
			e.quitArmed = true
			e.setStatus("Unsaved changes. Press Ctrl+Q again to quit.")
			return false
		}
		return true
	}
	e.quitArmed = false

	if isCtrl(ev, 's', tcell.KeyCtrlS) {
		_ = e.Save()
		return false
	}

	extend := ev.Modifiers()&tcell.ModShift != 0
	switch k := ev.Key(); {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		e.clickIndex(int(k - tcell.KeyF1))
	case k == tcell.KeyLeft:
		e.area.MoveLeft(extend)
	case k == tcell.KeyRight:
		e.area.MoveRight(extend)
	case k == tcell.KeyUp:
		e.area.MoveUp(extend)
	case k == tcell.KeyDown:
		e.area.MoveDown(extend)
	case k == tcell.KeyHome:
		e.area.Home(extend)
	case k == tcell.KeyEnd:
		e.area.End(extend)
	case k == tcell.KeyEnter:
		e.insert("\n")
	case k == tcell.KeyTab:
		e.insert("\t")
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		e.area.Backspace()
		e.dirty = true
	case k == tcell.KeyDelete:
		e.area.Delete()
		e.dirty = true
	case k == tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			e.insert(string(ev.Rune()))
		}
	}
	return false
}

// isCtrl matches Ctrl+r whether the terminal reports it as a control key
// or as a rune with the Ctrl modifier.
func isCtrl(ev *tcell.EventKey, r rune, key tcell.Key) bool {
	if ev.Key() == key {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == r
}

func (e *Editor) insert(s string) {
	e.area.Insert(s)
	e.dirty = true
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		e.dragging = false
		return
	}
	x, y := ev.Position()
	w, h := e.screen.Size()

	if e.showToolbar && y == 0 {
		if !e.dragging {
			if b, ok := hitButton(e.buttons(w), x); ok {
				e.click(b.ID)
			}
		}
		return
	}

	row := y - e.bodyTop()
	if row < 0 || row >= e.bodyHeight(h) {
		return
	}
	line := e.area.ScrollTop() + row
	if last := e.area.LineCount() - 1; line > last {
		line = last
	}
	p := textarea.Point{Line: line, Column: xToColumn(e.area.line(line), x, e.tabWidth)}
	if e.dragging {
		e.area.moveHead(e.area.clampPoint(p), true)
		return
	}
	e.area.SetCaret(p)
	e.dragging = true
}

func (e *Editor) handleInterrupt(data any) {
	switch v := data.(type) {
	case toolbar.Table:
		old := e.table
		e.table = v
		e.bar.Rebind(v)
		if err := old.Close(); err != nil {
			e.logger.Warn("close replaced toolbar", "err", err)
		}
		e.setStatus(fmt.Sprintf("Toolbar reloaded (%d buttons)", len(e.bar.Commands())))
	case procstatus.Message:
		e.status = v.Text
		e.spinner = v.Spinner
	case error:
		e.setStatus("Error: " + v.Error())
	}
}

func (e *Editor) clickIndex(i int) {
	ids := e.bar.Buttons()
	if i < 0 || i >= len(ids) {
		return
	}
	e.click(ids[i])
}

func (e *Editor) click(id string) {
	res := e.bar.Click(id)
	switch res.Status {
	case toolbar.StatusOK:
		e.dirty = true
		e.setStatus("")
	default:
		e.setStatus(res.String())
	}
}

// Save writes the text to the editor's file.
func (e *Editor) Save() error {
	if e.path == "" {
		e.setStatus("Save failed: no file name")
		return ErrNoPath
	}
	if err := os.WriteFile(e.path, []byte(e.area.Value()), 0o644); err != nil {
		e.logger.Error("save failed", "path", e.path, "err", err)
		e.setStatus("Save failed: " + err.Error())
		return fmt.Errorf("save %s: %w", e.path, err)
	}
	e.dirty = false
	e.logger.Info("saved", "path", e.path, "bytes", len(e.area.Value()))
	e.setStatus("Saved " + filepath.Base(e.path))
	return nil
}

func (e *Editor) setStatus(s string) {
	e.status = s
	e.spinner = false
}

func (e *Editor) bodyTop() int {
	if e.showToolbar {
		return 1
	}
	return 0
}

func (e *Editor) bodyHeight(screenHeight int) int {
	h := screenHeight - e.bodyTop() - 1
	if h < 0 {
		return 0
	}
	return h
}

func (e *Editor) buttons(width int) []ButtonSpan {
	return layoutButtons(e.bar.Buttons(), e.bar.Commands(), width)
}

// Draw renders the editor to the screen.
func (e *Editor) Draw() {
	s := e.screen
	s.Clear()
	w, h := s.Size()

	if e.showToolbar {
		e.drawToolbar(w)
	}

	bodyH := e.bodyHeight(h)
	e.area.EnsureVisible(bodyH)
	top := e.area.ScrollTop()
	lines := e.area.Lines()
	for row := 0; row < bodyH && top+row < len(lines); row++ {
		e.drawLine(e.bodyTop()+row, top+row, lines[top+row], w)
	}

	e.drawStatus(h-1, w)

	head := e.area.Head()
	if row := head.Line - top; row >= 0 && row < bodyH {
		s.ShowCursor(columnToX(lines[head.Line], head.Column, e.tabWidth), e.bodyTop()+row)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (e *Editor) drawToolbar(w int) {
	fill(e.screen, 0, w, styleToolbar)
	for _, b := range e.buttons(w) {
		drawString(e.screen, b.X, 0, b.Label, styleButton)
	}
}

func (e *Editor) drawLine(y, n int, line string, w int) {
	start, end := e.area.SelectionPoints()
	x, col := 0, 0
	for _, c := range clusters(line, e.tabWidth) {
		if x >= w {
			return
		}
		p := textarea.Point{Line: n, Column: col}
		style := styleText
		if p.Compare(start) >= 0 && p.Compare(end) < 0 {
			style = styleSelection
		}
		switch {
		case c.text == "\t":
			for i := 0; i < c.width && x+i < w; i++ {
				e.screen.SetContent(x+i, y, ' ', nil, style)
			}
		case c.width > 0:
			runes := []rune(c.text)
			e.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += c.width
		col += c.runes
	}
}

func (e *Editor) drawStatus(y, w int) {
	fill(e.screen, y, w, styleStatus)

	name := filepath.Base(e.path)
	if e.path == "" {
		name = "[no file]"
	}
	if e.dirty {
		name += " [+]"
	}
	head := e.area.Head()
	right := fmt.Sprintf("%s %d:%d", name, head.Line+1, head.Column+1)

	left := e.status
	if e.spinner {
		left = spinnerGlyph + left
	}

	rw := stringWidth(right)
	if rw+1 < w {
		drawString(e.screen, w-rw, y, right, styleStatus)
		left = fitWidth(left, w-rw-1)
	} else {
		left = fitWidth(left, w)
	}
	drawString(e.screen, 0, y, left, styleStatus)
}
