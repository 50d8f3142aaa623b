// Package markup implements the toolbar's markup commands.
//
// A Command edits a textarea.Text in place. There are two families:
//
//   - Inline wrap (Wrap): surround the trimmed selection with an open and
//     close delimiter, e.g. "**" / "**" for bold.
//   - Block (Header, ListItem, Block, Script): insert a line prefix at the
//     beginning of the caret's line and reposition the caret.
//
// Block commands are split in two steps. A pure function inspects the
// buffer through the read-only Buffer interface and returns an Edit;
// applyEdit then performs the mutation. This keeps the line logic
// testable without a host control.
//
// Commands never toggle delimiters off. Applying "**" to already-bold
// text wraps it again.
package markup
