package cli

import (
	"context"
	"fmt"
)

// NotificationsCommand dispatches the notification subcommands:
//
//	notifications             — list
//	notifications read <id>   — mark one read
//	notifications readall     — mark everything read
//	notifications rm <id>     — delete one
//	notifications clear       — delete everything
func (a *App) NotificationsCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listNotifications(ctx)
	}

	switch args[0] {
	case "read":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: notifications read <id>")
			return nil
		}
		if err := a.notifications.MarkRead(ctx, args[1]); err != nil {
			a.printAuthError(err)
			return err
		}
		fmt.Fprintln(a.out, "Marked as read.")
	case "readall":
		if err := a.notifications.MarkAllRead(ctx); err != nil {
			a.printAuthError(err)
			return err
		}
		fmt.Fprintln(a.out, "All notifications marked as read.")
	case "rm":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: notifications rm <id>")
			return nil
		}
		if err := a.notifications.Delete(ctx, args[1]); err != nil {
			a.printAuthError(err)
			return err
		}
		fmt.Fprintln(a.out, "Deleted.")
	case "clear":
		if err := a.notifications.ClearAll(ctx); err != nil {
			a.printAuthError(err)
			return err
		}
		fmt.Fprintln(a.out, "All notifications cleared.")
	default:
		fmt.Fprintln(a.out, "Usage: notifications [read <id> | readall | rm <id> | clear]")
	}
	return nil
}

func (a *App) listNotifications(ctx context.Context) error {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	list, err := a.notifications.List(ctx, u.Role)
	if err != nil {
		a.printAuthError(err)
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}

	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-12s %-8s %-16s %s\n",
			marker, n.ID, n.Type, n.CreatedAt.Format("Jan 02 15:04"), n.Message)
	}
	return nil
}
