package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/madil51/chunk-client/internal/client/guard"
	"github.com/madil51/chunk-client/internal/client/models"
)

func (a *App) getStatus() string {
	u := a.store.Current()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Email, u.Role)
}

// Root runs the interactive command loop. If a session survived from a
// previous run the user starts signed in, on their role's home view.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Chunk (type 'help' for commands)")

	if u := a.store.Current(); u != nil {
		fmt.Fprintf(a.out, "Resuming session for %s\n", u.Email)
		a.openRealtime(ctx)
		a.goTo(guard.HomeRouteFor(u.Role))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprintf(a.out, "chunk %s %s> ", a.getStatus(), a.route)
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "forgot":
			_ = a.Forgot(ctx)
		case "reset":
			_ = a.Reset(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "go":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: go <path>")
				continue
			}
			a.goTo(args[0])

		case "whoami":
			a.Whoami(ctx)

		case "notifications", "notif":
			_ = a.NotificationsCommand(ctx, args)

		case "request":
			_ = a.NewRequest(ctx)
		case "requests":
			_ = a.MyRequests(ctx)
		case "estimate":
			_ = a.Estimate(ctx)
		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upload <file>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "jobs":
			_ = a.Jobs(ctx)
		case "accept":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: accept <job-id>")
				continue
			}
			_ = a.Accept(ctx, args[0])
		case "bid":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: bid <job-id> <amount>")
				continue
			}
			_ = a.Bid(ctx, args[0], args[1])
		case "status":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: status <available|busy|offline>")
				continue
			}
			_ = a.Status(ctx, args[0])

		case "watch":
			a.Watch(ctx, scanner)
		case "chat":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: chat <job-id>")
				continue
			}
			a.Chat(ctx, args[0], scanner)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: login, register, forgot, reset, exit")
		return
	}
	shared := "go <path>, whoami, notifications, watch, chat <job-id>, logout, exit"
	switch a.store.Current().Role {
	case models.RoleCustomer:
		fmt.Fprintln(a.out, "Available commands: request, requests, estimate, upload <file>,", shared)
	case models.RoleDriver:
		fmt.Fprintln(a.out, "Available commands: jobs, accept <id>, bid <id> <amount>, status <s>,", shared)
	default:
		fmt.Fprintln(a.out, "Available commands:", shared)
	}
}
