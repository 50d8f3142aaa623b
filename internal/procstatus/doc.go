// Package procstatus polls a server-side process until it finishes.
//
// A Monitor asks a Fetcher for the status of one process on a fixed
// interval and reports every visible change to a Renderer. It stops on
// completion, on the first fetch failure, or when the reported status has
// not changed for longer than the stall timeout:
//
//	f := &procstatus.HTTPFetcher{BaseURL: "https://wiki.example.com"}
//	m := procstatus.New("42", f, renderer)
//	state, err := m.Run(ctx)
//
// Polls are serialized: a tick that fires while a request is outstanding
// is dropped.
package procstatus
