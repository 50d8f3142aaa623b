//go:build js && wasm

package web

import (
	"syscall/js"
)

// Global returns the page document.
func Global() Document {
	return jsDocument{v: js.Global().Get("document")}
}

// Ready runs fn once the page has been parsed.
func Ready(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", cb)
}

type jsDocument struct {
	v js.Value
}

func (d jsDocument) ElementByID(id string) Element {
	el := d.v.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil
	}
	return jsElement{v: el}
}

type jsElement struct {
	v js.Value
}

func (e jsElement) TagName() string           { return e.v.Get("tagName").String() }
func (e jsElement) ClassName() string         { return e.v.Get("className").String() }
func (e jsElement) String(prop string) string { return e.v.Get(prop).String() }
func (e jsElement) Int(prop string) int       { return e.v.Get(prop).Int() }
func (e jsElement) Set(prop string, v any)    { e.v.Set(prop, v) }

func (e jsElement) Call(method string, args ...any) {
	e.v.Call(method, args...)
}

// OnClick keeps the listener for the life of the page.
func (e jsElement) OnClick(fn func()) {
	e.v.Call("addEventListener", "click", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		fn()
		return nil
	}))
}
