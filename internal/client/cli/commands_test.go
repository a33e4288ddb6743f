package cli

import (
	"context"
	"testing"
	"time"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/client/services"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriverService struct {
	jobs      []models.Job
	bid       *models.Bid
	err       error
	lastJobID string
	lastBid   float64
	status    string
}

func (f *fakeDriverService) AvailableJobs(context.Context) ([]models.Job, error) {
	return f.jobs, f.err
}

func (f *fakeDriverService) AcceptJob(_ context.Context, jobID string) error {
	f.lastJobID = jobID
	return f.err
}

func (f *fakeDriverService) PlaceBid(_ context.Context, jobID string, amount float64) (*models.Bid, error) {
	f.lastJobID = jobID
	f.lastBid = amount
	return f.bid, f.err
}

func (f *fakeDriverService) UpdateStatus(_ context.Context, _, status string) error {
	f.status = status
	return f.err
}

var _ services.DriverService = (*fakeDriverService)(nil)

type fakeNotificationService struct {
	list   []models.Notification
	err    error
	calls  []string
	lastID string
}

func (f *fakeNotificationService) List(_ context.Context, _ models.Role) ([]models.Notification, error) {
	f.calls = append(f.calls, "list")
	return f.list, f.err
}

func (f *fakeNotificationService) MarkRead(_ context.Context, id string) error {
	f.calls = append(f.calls, "read")
	f.lastID = id
	return f.err
}

func (f *fakeNotificationService) MarkAllRead(context.Context) error {
	f.calls = append(f.calls, "readall")
	return f.err
}

func (f *fakeNotificationService) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "rm")
	f.lastID = id
	return f.err
}

func (f *fakeNotificationService) ClearAll(context.Context) error {
	f.calls = append(f.calls, "clear")
	return f.err
}

var _ services.NotificationService = (*fakeNotificationService)(nil)

func signIn(t *testing.T, a *App) {
	t.Helper()
	promptInputs(t, "a@b.com")
	require.NoError(t, a.Login(context.Background()))
}

func TestApp_Jobs_RendersList(t *testing.T) {
	a, out := newTestApp(t)
	a.driver = &fakeDriverService{jobs: []models.Job{{
		ID:            "j1",
		Title:         "Old fridge",
		PickupAddress: "12 Main St",
		ScheduledTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}}}

	require.NoError(t, a.Jobs(context.Background()))
	assert.Contains(t, out.String(), "j1")
	assert.Contains(t, out.String(), "Old fridge")
	assert.Contains(t, out.String(), "12 Main St")
}

func TestApp_Jobs_EmptyList(t *testing.T) {
	a, out := newTestApp(t)
	a.driver = &fakeDriverService{}

	require.NoError(t, a.Jobs(context.Background()))
	assert.Contains(t, out.String(), "No open jobs")
}

func TestApp_Bid(t *testing.T) {
	a, out := newTestApp(t)
	svc := &fakeDriverService{bid: &models.Bid{ID: "b1", JobID: "j1", Amount: 55, Status: "pending"}}
	a.driver = svc

	require.NoError(t, a.Bid(context.Background(), "j1", "55"))
	assert.Equal(t, "j1", svc.lastJobID)
	assert.InDelta(t, 55, svc.lastBid, 0.001)
	assert.Contains(t, out.String(), "Bid b1 placed")

	require.Error(t, a.Bid(context.Background(), "j1", "lots"))
	assert.Contains(t, out.String(), "Amount must be a number")
}

func TestApp_Status_RequiresSession(t *testing.T) {
	a, out := newTestApp(t)
	svc := &fakeDriverService{}
	a.driver = svc

	require.NoError(t, a.Status(context.Background(), "available"))
	assert.Contains(t, out.String(), "Not signed in")
	assert.Empty(t, svc.status)

	signIn(t, a)
	require.NoError(t, a.Status(context.Background(), "available"))
	assert.Equal(t, "available", svc.status)
}

func TestApp_Notifications_List(t *testing.T) {
	a, out := newTestApp(t)
	signIn(t, a)
	a.notifications = &fakeNotificationService{list: []models.Notification{
		{ID: "n1", Type: "info", Message: "Driver assigned", CreatedAt: time.Now()},
		{ID: "n2", Type: "success", Message: "Job completed", Read: true, CreatedAt: time.Now()},
	}}

	require.NoError(t, a.NotificationsCommand(context.Background(), nil))
	assert.Contains(t, out.String(), "Driver assigned")
	assert.Contains(t, out.String(), "Job completed")
}

func TestApp_Notifications_Subcommands(t *testing.T) {
	a, _ := newTestApp(t)
	signIn(t, a)
	svc := &fakeNotificationService{}
	a.notifications = svc

	ctx := context.Background()
	require.NoError(t, a.NotificationsCommand(ctx, []string{"read", "n1"}))
	assert.Equal(t, "n1", svc.lastID)
	require.NoError(t, a.NotificationsCommand(ctx, []string{"readall"}))
	require.NoError(t, a.NotificationsCommand(ctx, []string{"rm", "n2"}))
	assert.Equal(t, "n2", svc.lastID)
	require.NoError(t, a.NotificationsCommand(ctx, []string{"clear"}))

	assert.Equal(t, []string{"read", "readall", "rm", "clear"}, svc.calls)
}

func TestApp_Notifications_ErrorSurfaces(t *testing.T) {
	a, out := newTestApp(t)
	signIn(t, a)
	a.notifications = &fakeNotificationService{err: common.ErrNetwork}

	require.Error(t, a.NotificationsCommand(context.Background(), nil))
	assert.Contains(t, out.String(), "Cannot reach the server")
}
