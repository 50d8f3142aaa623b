// Package toolbar binds named buttons to markup commands.
//
// A Table lists command definitions in display order. New binds the
// definitions whose button ("<name>-button") the host offers and skips the
// rest without error:
//
//	tb := toolbar.New(text, toolbar.DefaultTable(), lookup)
//	res := tb.Click("bold-button")
//
// Command failures are returned in Result.Err; the selection is clamped
// back into range before Click returns.
package toolbar
