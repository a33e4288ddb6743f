package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Jobs lists the jobs currently open to drivers.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.driver.AvailableJobs(ctx)
	if err != nil {
		a.printAuthError(err)
		return err
	}
	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No open jobs right now.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(a.out, "%-12s %-24s %6.0fkg  $%.2f  %s\n",
			j.ID, j.ScheduledTime.Format("2006-01-02 15:04"), j.EstimatedWeight, j.TotalCost, j.Title)
		fmt.Fprintf(a.out, "%12s %s\n", "", j.PickupAddress)
	}
	return nil
}

// Accept claims a job for the signed-in driver.
func (a *App) Accept(ctx context.Context, jobID string) error {
	if err := a.driver.AcceptJob(ctx, jobID); err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintf(a.out, "Job %s is yours. Open 'chat %s' to talk to the customer.\n", jobID, jobID)
	return nil
}

// Bid places a counter-offer on a job.
func (a *App) Bid(ctx context.Context, jobID, amountText string) error {
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Amount must be a number")
		return err
	}

	bid, err := a.driver.PlaceBid(ctx, jobID, amount)
	if err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintf(a.out, "Bid %s placed: $%.2f on job %s (%s)\n", bid.ID, bid.Amount, bid.JobID, bid.Status)
	return nil
}

// Status publishes the driver's availability, over HTTP and the socket.
func (a *App) Status(ctx context.Context, status string) error {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err := a.driver.UpdateStatus(ctx, u.ID, status); err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintf(a.out, "Status set to %s\n", status)
	return nil
}
