package api

import (
	"context"

	"github.com/madil51/chunk-client/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the Chunk
// backend REST API. The concrete implementation is HTTPClient.
type Client interface {
	// Auth exchanges.
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, password string) error

	// Customer surface.
	CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.JunkRemovalRequest, error)
	MyRequests(ctx context.Context) ([]models.JunkRemovalRequest, error)
	EstimateRequest(ctx context.Context, data models.CreateRequestData) (*models.RequestEstimate, error)
	UploadPhoto(ctx context.Context, filename string, content []byte) (string, error)

	// Driver surface.
	AvailableJobs(ctx context.Context) ([]models.Job, error)
	AcceptJob(ctx context.Context, jobID string) error
	PlaceBid(ctx context.Context, jobID string, amount float64) (*models.Bid, error)
	UpdateDriverStatus(ctx context.Context, status string) error

	// Notifications.
	Notifications(ctx context.Context, audience string) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
	ClearNotifications(ctx context.Context) error
}
