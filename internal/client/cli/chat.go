package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Chat opens the chat room for a job. Lines the user types are sent as
// messages; incoming messages and typing indicators print as they arrive.
// "/exit" leaves the room.
func (a *App) Chat(ctx context.Context, jobID string, scanner *bufio.Scanner) {
	messages, err := a.chat.Messages()
	if err != nil {
		fmt.Fprintf(a.out, "Chat unavailable: %v\n", err)
		return
	}
	typing, err := a.chat.TypingEvents()
	if err != nil {
		messages.Cancel()
		fmt.Fprintf(a.out, "Chat unavailable: %v\n", err)
		return
	}

	a.chat.Join(ctx, jobID)
	fmt.Fprintf(a.out, "Joined chat for job %s. Type a message, or /exit to leave.\n", jobID)

	me := ""
	if u := a.store.Current(); u != nil {
		me = u.ID
	}

	go func() {
		for msg := range messages.C {
			if msg.JobID != jobID || msg.SenderID == me {
				continue
			}
			fmt.Fprintf(a.out, "[%s] %s: %s\n", msg.Timestamp.Format("15:04"), msg.SenderName, msg.Message)
		}
	}()
	go func() {
		for ev := range typing.C {
			if ev.JobID != jobID || !ev.IsTyping {
				continue
			}
			fmt.Fprintln(a.out, "... typing")
		}
	}()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "/exit" {
			break
		}
		if line == "" {
			continue
		}
		a.chat.Typing(ctx, jobID, true)
		if err := a.chat.Send(ctx, jobID, line); err != nil {
			fmt.Fprintf(a.out, "Not sent: %v\n", err)
		}
		a.chat.Typing(ctx, jobID, false)
	}

	a.chat.Leave(ctx, jobID)
	messages.Cancel()
	typing.Cancel()
	fmt.Fprintf(a.out, "Left chat for job %s.\n", jobID)
}
