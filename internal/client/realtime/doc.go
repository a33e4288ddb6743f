// Package realtime manages the client's single live connection to the
// backend event channel and a per-event fan-out on top of it.
//
// # Overview
//
//  1. Bridge owns the Connection: Open authenticates with the current
//     access token and tries the configured transports in preference
//     order; Close tears the connection down and cancels every
//     subscription. No reconnect is attempted here; that belongs to the
//     transport, if anywhere.
//  2. Subscribe(event) returns a cancellable Subscription delivering the
//     payloads for one event name, in arrival order. Cancelling detaches
//     exactly that listener.
//  3. Emit sends fire-and-forget frames; emitting while disconnected is a
//     logged no-op.
//
// # Ordering
//
// Payloads for one event name are delivered to each subscriber in the
// order the transport produced them. Nothing is guaranteed across
// different event names.
//
// # Lifecycle events
//
// Transport-level closure synthesizes "error" (when the closure was not a
// clean EOF) and "disconnect" events, delivers them to their subscribers,
// and then closes all subscription channels.
package realtime
