package services

import (
	"context"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/client/realtime"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// DriverStatus values accepted by the backend.
const (
	DriverStatusAvailable = "available"
	DriverStatusBusy      = "busy"
	DriverStatusOffline   = "offline"
)

// Emitter is the realtime side channel a service pushes events through.
// Satisfied by *realtime.Bridge.
type Emitter interface {
	Emit(ctx context.Context, eventName string, payload any)
}

// DriverService covers the driver-facing operations: browsing and accepting
// jobs, bidding, and publishing availability.
type DriverService interface {
	AvailableJobs(ctx context.Context) ([]models.Job, error)
	AcceptJob(ctx context.Context, jobID string) error
	PlaceBid(ctx context.Context, jobID string, amount float64) (*models.Bid, error)
	// UpdateStatus persists the new status over HTTP and mirrors it on the
	// realtime channel so dispatch sees it immediately.
	UpdateStatus(ctx context.Context, driverID, status string) error
}

type driverService struct {
	client  api.Client
	emitter Emitter
	log     logging.Logger
}

// NewDriverService constructs a DriverService over the given API client and
// realtime emitter.
func NewDriverService(client api.Client, emitter Emitter, log logging.Logger) DriverService {
	return &driverService{client: client, emitter: emitter, log: log}
}

func (s *driverService) AvailableJobs(ctx context.Context) ([]models.Job, error) {
	return s.client.AvailableJobs(ctx)
}

func (s *driverService) AcceptJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return common.ErrValidationFailed
	}
	if err := s.client.AcceptJob(ctx, jobID); err != nil {
		return err
	}
	s.log.Info(ctx, "job accepted", "jobId", jobID)
	return nil
}

func (s *driverService) PlaceBid(ctx context.Context, jobID string, amount float64) (*models.Bid, error) {
	if jobID == "" || amount <= 0 {
		return nil, common.ErrValidationFailed
	}
	bid, err := s.client.PlaceBid(ctx, jobID, amount)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "bid placed", "jobId", jobID, "amount", amount)
	return bid, nil
}

func (s *driverService) UpdateStatus(ctx context.Context, driverID, status string) error {
	switch status {
	case DriverStatusAvailable, DriverStatusBusy, DriverStatusOffline:
	default:
		return common.ErrValidationFailed
	}
	if err := s.client.UpdateDriverStatus(ctx, status); err != nil {
		return err
	}
	s.emitter.Emit(ctx, realtime.EventUpdateDriverStatus, models.DriverStatusUpdate{
		DriverID: driverID,
		Status:   status,
	})
	return nil
}
