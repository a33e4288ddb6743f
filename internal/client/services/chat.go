package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/client/realtime"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// Subscriber is the realtime subscription surface the chat service consumes.
// Satisfied by *realtime.Bridge.
type Subscriber interface {
	Emitter
	Subscribe(eventName string) (*realtime.Subscription, error)
}

// MessageFeed is a typed view over a raw subscription. Cancel stops
// delivery and closes C.
type MessageFeed struct {
	C      <-chan models.ChatMessage
	cancel func()
}

func (f *MessageFeed) Cancel() { f.cancel() }

// TypingFeed delivers typing indicator events for the joined rooms.
type TypingFeed struct {
	C      <-chan models.TypingEvent
	cancel func()
}

func (f *TypingFeed) Cancel() { f.cancel() }

// ChatService is the per-job chat surface: room membership, message and
// typing emissions, and typed inbound feeds.
type ChatService interface {
	Join(ctx context.Context, jobID string)
	Leave(ctx context.Context, jobID string)
	Send(ctx context.Context, jobID, message string) error
	Typing(ctx context.Context, jobID string, isTyping bool)
	Messages() (*MessageFeed, error)
	TypingEvents() (*TypingFeed, error)
}

type chatService struct {
	bridge Subscriber
	log    logging.Logger
}

// NewChatService constructs a ChatService over the given realtime bridge.
func NewChatService(bridge Subscriber, log logging.Logger) ChatService {
	return &chatService{bridge: bridge, log: log}
}

func (s *chatService) Join(ctx context.Context, jobID string) {
	s.bridge.Emit(ctx, realtime.EventJoinChat, jobID)
}

func (s *chatService) Leave(ctx context.Context, jobID string) {
	s.bridge.Emit(ctx, realtime.EventLeaveChat, jobID)
}

func (s *chatService) Send(ctx context.Context, jobID, message string) error {
	if strings.TrimSpace(message) == "" {
		return common.ErrValidationFailed
	}
	s.bridge.Emit(ctx, realtime.EventSendMessage, models.OutgoingMessage{
		JobID:   jobID,
		Message: message,
	})
	return nil
}

func (s *chatService) Typing(ctx context.Context, jobID string, isTyping bool) {
	s.bridge.Emit(ctx, realtime.EventTyping, models.TypingEvent{
		JobID:    jobID,
		IsTyping: isTyping,
	})
}

// Messages subscribes to inbound chat messages. Payloads that fail to
// decode are logged and skipped rather than tearing the feed down.
func (s *chatService) Messages() (*MessageFeed, error) {
	sub, err := s.bridge.Subscribe(realtime.EventNewMessage)
	if err != nil {
		return nil, err
	}
	out := make(chan models.ChatMessage)
	done := make(chan struct{})
	go func() {
		defer close(out)
		for data := range sub.C {
			var msg models.ChatMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				s.log.Warn(context.Background(), "chat: dropping malformed message", "err", err)
				continue
			}
			// A cancelled consumer stops draining; done lets the relay
			// exit instead of blocking on an in-flight payload.
			select {
			case out <- msg:
			case <-done:
				return
			}
		}
	}()
	return &MessageFeed{C: out, cancel: feedCancel(sub, done)}, nil
}

// TypingEvents subscribes to inbound typing indicators.
func (s *chatService) TypingEvents() (*TypingFeed, error) {
	sub, err := s.bridge.Subscribe(realtime.EventTyping)
	if err != nil {
		return nil, err
	}
	out := make(chan models.TypingEvent)
	done := make(chan struct{})
	go func() {
		defer close(out)
		for data := range sub.C {
			var ev models.TypingEvent
			if err := json.Unmarshal(data, &ev); err != nil {
				s.log.Warn(context.Background(), "chat: dropping malformed typing event", "err", err)
				continue
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return &TypingFeed{C: out, cancel: feedCancel(sub, done)}, nil
}

// feedCancel detaches the raw subscription and releases the relay
// goroutine. Safe to call more than once.
func feedCancel(sub *realtime.Subscription, done chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			sub.Cancel()
			close(done)
		})
	}
}
