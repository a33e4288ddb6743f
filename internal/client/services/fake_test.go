package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/logging"
)

var _ api.Client = (*fakeClient)(nil)

// fakeClient implements api.Client for the service unit tests. Each method
// returns the configured result and records the arguments it saw.
type fakeClient struct {
	LoginResp *models.AuthResponse
	LoginErr  error

	RegisterResp *models.AuthResponse
	RegisterErr  error

	RefreshResp *models.AuthResponse
	RefreshErr  error

	ResetRequestErr  error
	ResetCompleteErr error

	CreateRequestResp *models.JunkRemovalRequest
	CreateRequestErr  error

	MyRequestsResp []models.JunkRemovalRequest
	MyRequestsErr  error

	EstimateResp *models.RequestEstimate
	EstimateErr  error

	UploadResp string
	UploadErr  error

	JobsResp []models.Job
	JobsErr  error

	AcceptErr error

	BidResp *models.Bid
	BidErr  error

	StatusErr error

	NotificationsResp []models.Notification
	NotificationsErr  error

	NotifOpErr error

	LastLoginEmail    string
	LastRegister      models.RegisterData
	LastRefreshToken  string
	LastResetEmail    string
	LastCreateRequest models.CreateRequestData
	LastUploadName    string
	LastUploadBytes   []byte
	LastAcceptJobID   string
	LastBidJobID      string
	LastBidAmount     float64
	LastStatus        string
	LastAudience      string
	LastNotifID       string
}

func (f *fakeClient) Login(_ context.Context, email, _ string) (*models.AuthResponse, error) {
	f.LastLoginEmail = email
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	f.LastRegister = data
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Refresh(_ context.Context, refreshToken string) (*models.AuthResponse, error) {
	f.LastRefreshToken = refreshToken
	return f.RefreshResp, f.RefreshErr
}

func (f *fakeClient) RequestPasswordReset(_ context.Context, email string) error {
	f.LastResetEmail = email
	return f.ResetRequestErr
}

func (f *fakeClient) CompletePasswordReset(_ context.Context, _, _ string) error {
	return f.ResetCompleteErr
}

func (f *fakeClient) CreateRequest(_ context.Context, data models.CreateRequestData) (*models.JunkRemovalRequest, error) {
	f.LastCreateRequest = data
	return f.CreateRequestResp, f.CreateRequestErr
}

func (f *fakeClient) MyRequests(context.Context) ([]models.JunkRemovalRequest, error) {
	return f.MyRequestsResp, f.MyRequestsErr
}

func (f *fakeClient) EstimateRequest(_ context.Context, data models.CreateRequestData) (*models.RequestEstimate, error) {
	f.LastCreateRequest = data
	return f.EstimateResp, f.EstimateErr
}

func (f *fakeClient) UploadPhoto(_ context.Context, filename string, content []byte) (string, error) {
	f.LastUploadName = filename
	f.LastUploadBytes = content
	return f.UploadResp, f.UploadErr
}

func (f *fakeClient) AvailableJobs(context.Context) ([]models.Job, error) {
	return f.JobsResp, f.JobsErr
}

func (f *fakeClient) AcceptJob(_ context.Context, jobID string) error {
	f.LastAcceptJobID = jobID
	return f.AcceptErr
}

func (f *fakeClient) PlaceBid(_ context.Context, jobID string, amount float64) (*models.Bid, error) {
	f.LastBidJobID = jobID
	f.LastBidAmount = amount
	return f.BidResp, f.BidErr
}

func (f *fakeClient) UpdateDriverStatus(_ context.Context, status string) error {
	f.LastStatus = status
	return f.StatusErr
}

func (f *fakeClient) Notifications(_ context.Context, audience string) ([]models.Notification, error) {
	f.LastAudience = audience
	return f.NotificationsResp, f.NotificationsErr
}

func (f *fakeClient) MarkNotificationRead(_ context.Context, id string) error {
	f.LastNotifID = id
	return f.NotifOpErr
}

func (f *fakeClient) MarkAllNotificationsRead(context.Context) error {
	return f.NotifOpErr
}

func (f *fakeClient) DeleteNotification(_ context.Context, id string) error {
	f.LastNotifID = id
	return f.NotifOpErr
}

func (f *fakeClient) ClearNotifications(context.Context) error {
	return f.NotifOpErr
}

// fakeEmitter records realtime emissions.
type fakeEmitter struct {
	events   []string
	payloads []any
}

func (f *fakeEmitter) Emit(_ context.Context, eventName string, payload any) {
	f.events = append(f.events, eventName)
	f.payloads = append(f.payloads, payload)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}
