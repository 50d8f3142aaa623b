// Package web is the browser host, compiled with GOOS=js GOARCH=wasm.
//
// InstrumentPageEdit wires the toolbar buttons of a wiki edit page to its
// textarea, and StartProcessStatus drives the "process-status" element.
// Both work on the Document and Element interfaces; Global returns the
// page document under js/wasm. Offsets cross the DOM boundary as UTF-16
// code units and are converted with ByteOffset and UTF16Offset.
package web
