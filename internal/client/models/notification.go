package models

import (
	"encoding/json"
	"time"
)

// Notification is a persisted user notification.
type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Message   string          `json:"message"`
	Type      string          `json:"type"` // info | success | warning | error
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data,omitempty"`
}
