package services

import (
	"context"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
)

// NotificationService covers the persisted notification surface for the
// signed-in role.
type NotificationService interface {
	List(ctx context.Context, role models.Role) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

type notificationService struct {
	client api.Client
}

// NewNotificationService constructs a NotificationService over the given
// API client.
func NewNotificationService(client api.Client) NotificationService {
	return &notificationService{client: client}
}

// List fetches the notification feed for the role's audience. Admin and
// super-admin share the admin feed.
func (s *notificationService) List(ctx context.Context, role models.Role) ([]models.Notification, error) {
	var audience string
	switch role {
	case models.RoleCustomer:
		audience = "customer"
	case models.RoleDriver:
		audience = "driver"
	case models.RoleAdmin, models.RoleSuperAdmin:
		audience = "admin"
	default:
		return nil, common.ErrValidationFailed
	}
	return s.client.Notifications(ctx, audience)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrValidationFailed
	}
	return s.client.MarkNotificationRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.client.MarkAllNotificationsRead(ctx)
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return common.ErrValidationFailed
	}
	return s.client.DeleteNotification(ctx, id)
}

func (s *notificationService) ClearAll(ctx context.Context) error {
	return s.client.ClearNotifications(ctx)
}
