// Package services contains the application services of the Chunk client.
// This file defines the authentication gateway: login, registration, token
// refresh, password reset, and logout, all funnelled through the session
// store so the rest of the client observes a single source of truth.
package services

import (
	"context"
	"fmt"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/client/session"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// AuthService defines the authentication operations available to the CLI.
//
// Contract:
//   - Login / Register: authenticate against the backend and persist the
//     resulting session.
//   - Refresh: exchange the stored refresh token for a fresh pair; a failed
//     refresh clears the session before the error propagates.
//   - Logout: clear the session; safe to call when already signed out.
//
// All methods honor context cancellation and timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, data models.RegisterData) (*models.User, error)
	Refresh(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, token, password string) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login authenticates with the backend and stores the returned session.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.store.SetSession(ctx, resp.User, resp.Token, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "signed in", "email", resp.User.Email, "role", resp.User.Role)
	return &resp.User, nil
}

// Register creates an account and stores the session the backend returns.
func (a *authService) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	resp, err := a.client.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	if err := a.store.SetSession(ctx, resp.User, resp.Token, resp.RefreshToken); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	a.log.Info(ctx, "registered", "email", resp.User.Email, "role", resp.User.Role)
	return &resp.User, nil
}

// Refresh exchanges the stored refresh token for a new token pair. When the
// exchange fails for any reason the session is cleared before the error is
// returned, so callers never keep working against dead credentials.
func (a *authService) Refresh(ctx context.Context) error {
	refreshToken := a.store.RefreshToken()
	if refreshToken == "" {
		_ = a.store.ClearSession(ctx)
		return common.ErrInvalidCredentials
	}

	resp, err := a.client.Refresh(ctx, refreshToken)
	if err != nil {
		a.log.Warn(ctx, "token refresh failed, signing out", "err", err)
		if clearErr := a.store.ClearSession(ctx); clearErr != nil {
			a.log.Error(ctx, "clearing session after failed refresh", "err", clearErr)
		}
		return err
	}

	if err := a.store.SetSession(ctx, resp.User, resp.Token, resp.RefreshToken); err != nil {
		return fmt.Errorf("persisting refreshed session: %w", err)
	}
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.RequestPasswordReset(ctx, email)
}

func (a *authService) CompletePasswordReset(ctx context.Context, token, password string) error {
	return a.client.CompletePasswordReset(ctx, token, password)
}

// Logout clears the stored session. Calling it while signed out is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	a.log.Info(ctx, "signed out")
	return nil
}
