package realtime

import "encoding/json"

// Event names fixed by the backend socket contract.
const (
	// Outbound.
	EventJoinChat           = "join-chat"
	EventLeaveChat          = "leave-chat"
	EventSendMessage        = "send-message"
	EventTyping             = "typing"
	EventUpdateDriverStatus = "updateDriverStatus"

	// Inbound.
	EventNewMessage     = "new-message"
	EventJobUpdate      = "job-update"
	EventDriverLocation = "driver-location"
	EventNewJob         = "new-job"
	EventBidUpdate      = "bid-update"

	// Connection lifecycle, synthesized locally.
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
	EventError      = "error"
)

// Frame is the wire envelope: an event name plus its JSON payload.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}
