package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/client/realtime"
)

// Watch streams the live events relevant to the signed-in role until the
// user presses Enter. Customers follow their jobs and incoming bids;
// drivers follow new jobs and job changes.
func (a *App) Watch(ctx context.Context, scanner *bufio.Scanner) {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}

	var events []string
	switch u.Role {
	case models.RoleCustomer:
		events = []string{realtime.EventJobUpdate, realtime.EventBidUpdate, realtime.EventNewMessage}
	case models.RoleDriver:
		events = []string{realtime.EventNewJob, realtime.EventJobUpdate}
	default:
		events = []string{realtime.EventJobUpdate}
	}

	subs := make([]*realtime.Subscription, 0, len(events))
	for _, event := range events {
		sub, err := a.bridge.Subscribe(event)
		if err != nil {
			fmt.Fprintf(a.out, "Live updates unavailable: %v\n", err)
			for _, s := range subs {
				s.Cancel()
			}
			return
		}
		subs = append(subs, sub)
		go a.printEvents(event, sub)
	}

	fmt.Fprintln(a.out, "Watching for updates... (press Enter to stop)")
	scanner.Scan()

	for _, s := range subs {
		s.Cancel()
	}
}

func (a *App) printEvents(event string, sub *realtime.Subscription) {
	for data := range sub.C {
		switch event {
		case realtime.EventJobUpdate:
			var up models.JobUpdate
			if json.Unmarshal(data, &up) == nil {
				line := fmt.Sprintf("* job %s -> %s", up.JobID, up.Status)
				if up.ETA != "" {
					line += " (ETA " + up.ETA + ")"
				}
				fmt.Fprintln(a.out, line)
				continue
			}
		case realtime.EventBidUpdate:
			var bid models.Bid
			if json.Unmarshal(data, &bid) == nil {
				fmt.Fprintf(a.out, "* bid on job %s: $%.2f from %s\n", bid.JobID, bid.Amount, bid.DriverName)
				continue
			}
		case realtime.EventNewJob:
			var job models.Job
			if json.Unmarshal(data, &job) == nil {
				fmt.Fprintf(a.out, "* new job %s: %s (%s)\n", job.ID, job.Title, job.PickupAddress)
				continue
			}
		case realtime.EventNewMessage:
			var msg models.ChatMessage
			if json.Unmarshal(data, &msg) == nil {
				fmt.Fprintf(a.out, "* message from %s on job %s: %s\n", msg.SenderName, msg.JobID, msg.Message)
				continue
			}
		}
		fmt.Fprintf(a.out, "* %s: %s\n", event, data)
	}
}
