// Package lua provides a sandboxed gopher-lua runtime for scripted
// toolbar commands.
//
// A State opens only the base, table, string and math libraries and
// removes the loaders (dofile, loadfile, load, loadstring, require), so a
// script can compute text but cannot touch the file system or network.
// Every call runs under a deadline; a script that runs past it is aborted.
//
// State is safe for concurrent use; calls are serialized by a mutex.
package lua
