package toolbar

import (
	"errors"
	"io"
	"strings"

	"github.com/dshills/pagedit/internal/markup"
)

// buttonSuffix is appended to a command name to form its button id.
const buttonSuffix = "-button"

// Definition binds a command name to a markup command.
type Definition struct {
	Name    string
	Command markup.Command
}

// Table is an ordered list of definitions. Order is the order buttons are
// shown and bound.
type Table []Definition

// DefaultTable returns the built-in wiki toolbar.
func DefaultTable() Table {
	return Table{
		{Name: "h2", Command: markup.Header{Marker: "##"}},
		{Name: "h3", Command: markup.Header{Marker: "###"}},
		{Name: "h4", Command: markup.Header{Marker: "####"}},
		{Name: "bold", Command: markup.Wrap{Open: "**", Close: "**"}},
		{Name: "italic", Command: markup.Wrap{Open: "*", Close: "*"}},
		{Name: "code", Command: markup.Wrap{Open: "`", Close: "`"}},
		{Name: "blockquote", Command: markup.Blockquote},
		{Name: "bullet-list", Command: markup.ListItem{Bullet: "*"}},
		{Name: "number-list", Command: markup.ListItem{Bullet: "1."}},
	}
}

// ButtonID returns the host element id for a command name.
func ButtonID(name string) string {
	return name + buttonSuffix
}

// NameFromButtonID returns the command name for a button id.
func NameFromButtonID(id string) (string, bool) {
	name, ok := strings.CutSuffix(id, buttonSuffix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Find returns the command bound to name.
func (t Table) Find(name string) (markup.Command, bool) {
	for _, d := range t {
		if d.Name == name {
			return d.Command, true
		}
	}
	return nil, false
}

// Names returns the command names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, d := range t {
		names[i] = d.Name
	}
	return names
}

// Merge returns a new table with other's definitions layered over t.
// A name already in t keeps its position but takes other's command;
// new names are appended in other's order.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t), len(t)+len(other))
	copy(out, t)

	index := make(map[string]int, len(out))
	for i, d := range out {
		index[d.Name] = i
	}
	for _, d := range other {
		if i, ok := index[d.Name]; ok {
			out[i] = d
			continue
		}
		index[d.Name] = len(out)
		out = append(out, d)
	}
	return out
}

// Close releases commands that hold resources, such as scripts.
func (t Table) Close() error {
	var errs []error
	for _, d := range t {
		if c, ok := d.Command.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
