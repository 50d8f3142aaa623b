package markup

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/pagedit/internal/engine/textarea"
	plua "github.com/dshills/pagedit/internal/plugin/lua"
)

// commandFunc is the global a script must define.
const commandFunc = "command"

// Script is a block command implemented in Lua.
//
// The script defines a global function command(buf). buf is a table with
// the fields selected_text, caret, previous_line and mid_line, and the
// function buf.move_caret_after(s), which sets Edit.CaretAfter. The
// function returns the text to insert at the beginning of the line, an
// optional caret delta and an optional keep_caret flag, with the same
// meaning as the fields of Edit.
//
//	function command(buf)
//	  if buf.mid_line then
//	    return "- [ ] ", 0, true
//	  end
//	  return "- [ ] \n", -1
//	end
type Script struct {
	name  string
	state *plua.State
}

// NewScript compiles source into a Script named name.
func NewScript(name, source string, opts ...plua.StateOption) (*Script, error) {
	state := plua.NewState(opts...)
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, &ScriptError{Name: name, Err: err}
	}
	return newScript(name, state)
}

// LoadScript compiles the Lua file at path into a Script named name.
func LoadScript(name, path string, opts ...plua.StateOption) (*Script, error) {
	state := plua.NewState(opts...)
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, &ScriptError{Name: name, Err: err}
	}
	return newScript(name, state)
}

func newScript(name string, state *plua.State) (*Script, error) {
	if state.L.GetGlobal(commandFunc).Type() != lua.LTFunction {
		state.Close()
		return nil, &ScriptError{Name: name, Err: ErrNoCommandFunction}
	}
	return &Script{name: name, state: state}, nil
}

// Name returns the script's name.
func (s *Script) Name() string {
	return s.name
}

// Edit runs command(buf) against b.
func (s *Script) Edit(b Buffer) (Edit, error) {
	buf := s.state.NewTable()
	buf.RawSetString("selected_text", lua.LString(b.SelectedText()))
	buf.RawSetString("caret", lua.LNumber(b.CaretPosition()))
	buf.RawSetString("previous_line", lua.LString(b.PreviousLine()))
	buf.RawSetString("mid_line", lua.LBool(b.CaretIsMidLine()))

	var after string
	buf.RawSetString("move_caret_after", s.state.NewFunction(func(L *lua.LState) int {
		after = L.CheckString(1)
		return 0
	}))

	results, err := s.state.Call(commandFunc, buf)
	if err != nil {
		return Edit{}, &ScriptError{Name: s.name, Err: err}
	}
	e, err := s.decode(results)
	if err != nil {
		return Edit{}, err
	}
	e.CaretAfter = after
	return e, nil
}

func (s *Script) decode(results []lua.LValue) (Edit, error) {
	if len(results) == 0 {
		return Edit{}, &ScriptError{Name: s.name, Err: fmt.Errorf("%w: no text returned", ErrBadScriptResult)}
	}

	text, ok := results[0].(lua.LString)
	if !ok {
		return Edit{}, &ScriptError{
			Name: s.name,
			Err:  fmt.Errorf("%w: text is %s, want string", ErrBadScriptResult, results[0].Type()),
		}
	}
	e := Edit{Text: string(text)}

	if len(results) > 1 && results[1] != lua.LNil {
		delta, ok := results[1].(lua.LNumber)
		if !ok {
			return Edit{}, &ScriptError{
				Name: s.name,
				Err:  fmt.Errorf("%w: caret delta is %s, want number", ErrBadScriptResult, results[1].Type()),
			}
		}
		e.CaretDelta = int(delta)
	}
	if len(results) > 2 {
		e.KeepCaret = lua.LVAsBool(results[2])
	}
	return e, nil
}

// Apply implements Command. The buffer is left untouched when the script
// fails.
func (s *Script) Apply(t *textarea.Text) error {
	if t == nil {
		return textarea.ErrNotTextInput
	}
	e, err := s.Edit(t)
	if err != nil {
		return err
	}
	applyEdit(t, e)
	return nil
}

// Close releases the script's Lua state.
func (s *Script) Close() error {
	return s.state.Close()
}
