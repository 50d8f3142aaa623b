package toolbar

import (
	"fmt"
	"time"

	"pkt.systems/pslog"

	"github.com/dshills/pagedit/internal/engine/textarea"
	"github.com/dshills/pagedit/internal/logx"
	"github.com/dshills/pagedit/internal/markup"
)

// Toolbar dispatches button clicks to markup commands applied to one text
// buffer. Only buttons the host offers are bound; the rest of the table is
// skipped silently.
//
// Toolbar is not safe for concurrent use.
type Toolbar struct {
	text   *textarea.Text
	lookup Lookup
	logger pslog.Logger

	table  Table
	bound  Table
	byName map[string]markup.Command
}

// Option configures a Toolbar.
type Option func(*Toolbar)

// WithLogger sets the logger used for dispatch records.
func WithLogger(l pslog.Logger) Option {
	return func(tb *Toolbar) {
		tb.logger = l
	}
}

// New creates a toolbar over text. A nil lookup binds every definition.
func New(text *textarea.Text, table Table, lookup Lookup, opts ...Option) *Toolbar {
	if lookup == nil {
		lookup = AllButtons
	}
	tb := &Toolbar{
		text:   text,
		lookup: lookup,
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.logger = logx.Or(tb.logger)
	tb.bind(table)
	return tb
}

// bind rebuilds the bound set from table.
func (tb *Toolbar) bind(table Table) {
	tb.table = table
	tb.bound = make(Table, 0, len(table))
	tb.byName = make(map[string]markup.Command, len(table))

	for _, d := range table {
		if d.Command == nil || !tb.lookup.Has(ButtonID(d.Name)) {
			continue
		}
		if _, dup := tb.byName[d.Name]; dup {
			continue
		}
		tb.bound = append(tb.bound, d)
		tb.byName[d.Name] = d.Command
	}
	tb.logger.Debug("toolbar bound", "buttons", len(tb.bound), "defined", len(table))
}

// Rebind replaces the command table, keeping the text and lookup.
func (tb *Toolbar) Rebind(table Table) {
	tb.bind(table)
}

// Text returns the buffer the toolbar edits.
func (tb *Toolbar) Text() *textarea.Text {
	return tb.text
}

// Table returns the full table the toolbar was bound from.
func (tb *Toolbar) Table() Table {
	return tb.table
}

// Commands returns the names of bound commands in table order.
func (tb *Toolbar) Commands() []string {
	return tb.bound.Names()
}

// Buttons returns the ids of bound buttons in table order.
func (tb *Toolbar) Buttons() []string {
	ids := make([]string, len(tb.bound))
	for i, d := range tb.bound {
		ids[i] = ButtonID(d.Name)
	}
	return ids
}

// Bound reports whether a command is bound under name.
func (tb *Toolbar) Bound(name string) bool {
	_, ok := tb.byName[name]
	return ok
}

// Click dispatches a click on the button with the given id.
func (tb *Toolbar) Click(id string) Result {
	name, ok := NameFromButtonID(id)
	if !ok {
		return tb.unbound(id)
	}
	return tb.Invoke(name)
}

// Invoke runs the command bound under name.
func (tb *Toolbar) Invoke(name string) Result {
	cmd, ok := tb.byName[name]
	if !ok {
		return tb.unbound(name)
	}
	return tb.run(name, cmd)
}

func (tb *Toolbar) unbound(name string) Result {
	tb.logger.Debug("toolbar click ignored", "command", name)
	return Result{
		Status:  StatusNoOp,
		Command: name,
		Err:     fmt.Errorf("%w: %s", ErrUnknownCommand, name),
		Caret:   tb.caret(),
	}
}

// run applies cmd. Errors are returned, never swallowed; a panic still
// propagates but the selection is first pulled back into range.
func (tb *Toolbar) run(name string, cmd markup.Command) Result {
	log := logx.WithCommand(tb.logger, name)
	start := time.Now()

	completed := false
	defer func() {
		if !completed && tb.text != nil {
			tb.text.Normalize()
		}
	}()

	if err := cmd.Apply(tb.text); err != nil {
		log.Warn("toolbar command failed", "err", err)
		return Result{Status: StatusError, Command: name, Err: err, Caret: tb.caret()}
	}
	completed = true

	caret := tb.caret()
	log.Debug("toolbar command", "caret", caret, "elapsed", time.Since(start))
	return Result{Status: StatusOK, Command: name, Caret: caret}
}

func (tb *Toolbar) caret() int {
	if tb.text == nil {
		return 0
	}
	return tb.text.CaretPosition()
}
