package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
)

// HTTPClient talks JSON over HTTP to the Chunk backend. The access token is
// read through a callback on every request so the client always sends
// whatever the session currently holds.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	token   func() string
	log     logging.Logger
}

// NewHTTPClient builds an HTTPClient rooted at baseURL. token may be nil for
// unauthenticated use; timeout is the transport-level request timeout
// (zero means none).
func NewHTTPClient(baseURL string, timeout time.Duration, token func() string, log logging.Logger) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// backendError is the error envelope the backend returns. Some endpoints
// put the message at the top level, some nest it under "error".
type backendError struct {
	Message string `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return newError(common.ErrUnknown, fmt.Sprintf("encode request: %v", err))
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return newError(common.ErrUnknown, fmt.Sprintf("build request: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return newError(common.ErrNetwork, fmt.Sprintf("request %s %s: %v", method, path, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(common.ErrNetwork, fmt.Sprintf("read response: %v", err))
	}
	c.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromStatus(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return newError(common.ErrUnknown, fmt.Sprintf("decode response: %v", err))
		}
	}
	return nil
}

func errorFromStatus(status int, body []byte) error {
	message := ""
	var be backendError
	if err := json.Unmarshal(body, &be); err == nil {
		if be.Error != nil && be.Error.Message != "" {
			message = be.Error.Message
		} else {
			message = be.Message
		}
	}

	switch {
	case status == http.StatusUnauthorized:
		return newError(common.ErrInvalidCredentials, message)
	case status == http.StatusConflict:
		return newError(common.ErrConflict, message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return newError(common.ErrValidationFailed, message)
	default:
		if message == "" {
			message = fmt.Sprintf("unexpected status %d", status)
		}
		return newError(common.ErrUnknown, message)
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/forgot-password", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) CompletePasswordReset(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/reset-password", body, nil)
}

func (c *HTTPClient) CreateRequest(ctx context.Context, data models.CreateRequestData) (*models.JunkRemovalRequest, error) {
	var resp models.JunkRemovalRequest
	if err := c.do(ctx, http.MethodPost, "/requests", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) MyRequests(ctx context.Context) ([]models.JunkRemovalRequest, error) {
	var resp []models.JunkRemovalRequest
	if err := c.do(ctx, http.MethodGet, "/requests/mine", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) EstimateRequest(ctx context.Context, data models.CreateRequestData) (*models.RequestEstimate, error) {
	var resp models.RequestEstimate
	if err := c.do(ctx, http.MethodPost, "/requests/estimate", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadPhoto sends one photo as multipart form data and returns the URL
// the backend stored it under.
func (c *HTTPClient) UploadPhoto(ctx context.Context, filename string, content []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", newError(common.ErrUnknown, fmt.Sprintf("build upload: %v", err))
	}
	if _, err := part.Write(content); err != nil {
		return "", newError(common.ErrUnknown, fmt.Sprintf("build upload: %v", err))
	}
	if err := mw.Close(); err != nil {
		return "", newError(common.ErrUnknown, fmt.Sprintf("build upload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/media/upload", &buf)
	if err != nil {
		return "", newError(common.ErrUnknown, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", newError(common.ErrNetwork, fmt.Sprintf("upload: %v", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(common.ErrNetwork, fmt.Sprintf("read response: %v", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorFromStatus(resp.StatusCode, data)
	}

	var uploaded struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &uploaded); err != nil {
		return "", newError(common.ErrUnknown, fmt.Sprintf("decode response: %v", err))
	}
	return uploaded.URL, nil
}

func (c *HTTPClient) AvailableJobs(ctx context.Context) ([]models.Job, error) {
	var resp []models.Job
	if err := c.do(ctx, http.MethodGet, "/drivers/available-jobs", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) AcceptJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/accept", nil, nil)
}

func (c *HTTPClient) PlaceBid(ctx context.Context, jobID string, amount float64) (*models.Bid, error) {
	var resp models.Bid
	body := map[string]float64{"amount": amount}
	if err := c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/bids", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateDriverStatus(ctx context.Context, status string) error {
	return c.do(ctx, http.MethodPut, "/drivers/status", map[string]string{"status": status}, nil)
}

func (c *HTTPClient) Notifications(ctx context.Context, audience string) ([]models.Notification, error) {
	var resp []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(audience), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, nil)
}

func (c *HTTPClient) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ClearNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/notifications/clear-all", nil, nil)
}
