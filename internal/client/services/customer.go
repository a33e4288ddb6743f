package services

import (
	"context"
	"strings"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// CustomerService covers the customer-facing operations: creating junk
// removal requests, listing the customer's own requests, price estimates
// and photo uploads.
type CustomerService interface {
	CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.JunkRemovalRequest, error)
	MyRequests(ctx context.Context) ([]models.JunkRemovalRequest, error)
	Estimate(ctx context.Context, data models.CreateRequestData) (*models.RequestEstimate, error)
	UploadPhoto(ctx context.Context, filename string, content []byte) (string, error)
}

type customerService struct {
	client api.Client
	log    logging.Logger
}

// NewCustomerService constructs a CustomerService over the given API client.
func NewCustomerService(client api.Client, log logging.Logger) CustomerService {
	return &customerService{client: client, log: log}
}

// CreateRequest validates the draft locally, then submits it. Local
// validation failures carry the same kind as backend ones so the CLI
// renders them uniformly.
func (s *customerService) CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.JunkRemovalRequest, error) {
	if err := validateRequestData(data); err != nil {
		return nil, err
	}
	req, err := s.client.CreateRequest(ctx, data)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "request created", "id", req.ID, "status", req.Status)
	return req, nil
}

func (s *customerService) MyRequests(ctx context.Context) ([]models.JunkRemovalRequest, error) {
	return s.client.MyRequests(ctx)
}

func (s *customerService) Estimate(ctx context.Context, data models.CreateRequestData) (*models.RequestEstimate, error) {
	if err := validateRequestData(data); err != nil {
		return nil, err
	}
	return s.client.EstimateRequest(ctx, data)
}

func (s *customerService) UploadPhoto(ctx context.Context, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", common.ErrValidationFailed
	}
	url, err := s.client.UploadPhoto(ctx, filename, content)
	if err != nil {
		return "", err
	}
	s.log.Debug(ctx, "photo uploaded", "filename", filename, "url", url)
	return url, nil
}

func validateRequestData(data models.CreateRequestData) error {
	if strings.TrimSpace(data.Title) == "" {
		return common.ErrValidationFailed
	}
	if strings.TrimSpace(data.PickupAddress) == "" {
		return common.ErrValidationFailed
	}
	return nil
}
