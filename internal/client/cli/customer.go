package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
)

// NewRequest walks the user through a junk removal request draft and
// submits it.
func (a *App) NewRequest(ctx context.Context) error {
	draft, err := a.readDraft()
	if err != nil {
		return err
	}

	req, err := a.customer.CreateRequest(ctx, draft)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Request %s created (status: %s)\n", req.ID, req.Status)
	return nil
}

// MyRequests lists the customer's requests newest first, the way the
// backend orders them.
func (a *App) MyRequests(ctx context.Context) error {
	requests, err := a.customer.MyRequests(ctx)
	if err != nil {
		a.printAuthError(err)
		return err
	}
	if len(requests) == 0 {
		fmt.Fprintln(a.out, "No requests yet. Use 'request' to create one.")
		return nil
	}

	for _, r := range requests {
		fmt.Fprintf(a.out, "%-12s %-12s %-24s $%.2f  %s\n",
			r.ID, r.Status, r.ScheduledTime.Format("2006-01-02 15:04"), r.TotalCost, r.Title)
		if r.DriverName != "" {
			fmt.Fprintf(a.out, "%12s driver: %s\n", "", r.DriverName)
		}
	}
	return nil
}

// Estimate prices a draft without creating a request.
func (a *App) Estimate(ctx context.Context) error {
	draft, err := a.readDraft()
	if err != nil {
		return err
	}

	est, err := a.customer.Estimate(ctx, draft)
	if err != nil {
		a.printAuthError(err)
		return err
	}

	fmt.Fprintf(a.out, "Estimated total: $%.2f (confidence %.0f%%)\n", est.TotalCost, est.Confidence*100)
	for _, line := range est.Breakdown {
		fmt.Fprintf(a.out, "  %-16s $%8.2f  %s\n", line.Category, line.Amount, line.Description)
	}
	return nil
}

// Upload sends a local photo to the media endpoint and prints the stored URL.
func (a *App) Upload(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return err
	}

	url, err := a.customer.UploadPhoto(ctx, filepath.Base(path), content)
	if err != nil {
		a.printAuthError(err)
		return err
	}
	fmt.Fprintf(a.out, "Uploaded: %s\n", url)
	return nil
}

func (a *App) readDraft() (models.CreateRequestData, error) {
	var draft models.CreateRequestData

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return draft, err
	}
	description, err := GetMultiline(a.reader, "Describe the junk", a.out)
	if err != nil {
		return draft, err
	}
	address, err := getSimpleText(a.reader, "Pickup address", a.out)
	if err != nil {
		return draft, err
	}
	when, err := getSimpleText(a.reader, "Pickup time (YYYY-MM-DD HH:MM, empty = tomorrow 9:00)", a.out)
	if err != nil {
		return draft, err
	}
	scheduled, err := parseScheduledTime(when)
	if err != nil {
		fmt.Fprintln(a.out, "Unrecognized time, expected YYYY-MM-DD HH:MM")
		return draft, common.ErrValidationFailed
	}
	weight, err := GetFloat(a.reader, "Estimated weight, kg (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Weight must be a number")
		return draft, common.ErrValidationFailed
	}
	kind, err := getSimpleText(a.reader, "Type (furniture/appliances/construction/general)", a.out)
	if err != nil {
		return draft, err
	}
	if kind == "" {
		kind = "general"
	}

	draft = models.CreateRequestData{
		Title:           title,
		Description:     description,
		PickupAddress:   address,
		ScheduledTime:   scheduled,
		EstimatedWeight: weight,
		Type:            kind,
	}
	return draft, nil
}

func parseScheduledTime(text string) (time.Time, error) {
	if text == "" {
		tomorrow := time.Now().AddDate(0, 0, 1)
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, time.Local), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", text, time.Local)
	if err != nil {
		return time.Time{}, errors.New("unrecognized time format")
	}
	return t, nil
}
