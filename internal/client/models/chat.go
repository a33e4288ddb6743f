package models

import "time"

// ChatMessage is a single message in a job chat room.
type ChatMessage struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
}

// TypingEvent signals that a participant started or stopped typing.
type TypingEvent struct {
	JobID    string `json:"jobId"`
	UserID   string `json:"userId,omitempty"`
	IsTyping bool   `json:"isTyping"`
}

// OutgoingMessage is the payload of a send-message emission.
type OutgoingMessage struct {
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}
