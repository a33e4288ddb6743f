// Package cli provides the interactive Chunk terminal client.
//
// It wires configuration, the local session database, the REST API client,
// the realtime bridge and the role guard into a REPL. Typical flow: sign
// in (or resume the persisted session), land on the role's home view, and
// work from there: customers manage junk removal requests, drivers browse
// and accept jobs, both can chat per job and follow live updates.
//
// Navigation goes through the guard: 'go <path>' on a protected path is
// allowed or denied against the current role, and a denial prints a notice
// and lands the user on their own home view.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
