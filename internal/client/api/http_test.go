package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/madil51/chunk-client/internal/client/models"
	"github.com/madil51/chunk-client/internal/common"
	"github.com/madil51/chunk-client/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tok := func() string { return token }
	return NewHTTPClient(srv.URL, 5*time.Second, tok, testLogger())
}

func TestHTTPClient_Login_Success(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(models.AuthResponse{
			User:         models.User{ID: "u1", Email: "a@b.com", Role: models.RoleCustomer},
			Token:        "tok",
			RefreshToken: "ref",
		})
	}, "")

	resp, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "tok", resp.Token)
}

func TestHTTPClient_StatusToErrorKind(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   error
		msg    string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad password"}`, common.ErrInvalidCredentials, "bad password"},
		{"conflict", http.StatusConflict, `{"error":{"message":"email taken"}}`, common.ErrConflict, "email taken"},
		{"bad request", http.StatusBadRequest, `{"message":"missing field"}`, common.ErrValidationFailed, "missing field"},
		{"unprocessable", http.StatusUnprocessableEntity, `{}`, common.ErrValidationFailed, ""},
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`, common.ErrUnknown, "boom"},
		{"teapot no body", http.StatusTeapot, ``, common.ErrUnknown, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}, "")

			_, err := c.Login(context.Background(), "a@b.com", "x")
			require.ErrorIs(t, err, tc.kind)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
		})
	}
}

func TestHTTPClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := NewHTTPClient(srv.URL, time.Second, nil, testLogger())

	_, err := c.MyRequests(context.Background())
	require.ErrorIs(t, err, common.ErrNetwork)
}

func TestHTTPClient_BearerTokenInjected(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		io.WriteString(w, `[]`)
	}, "session-token")

	_, err := c.MyRequests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.NotEmpty(t, gotReqID, "every request carries a correlation id")
}

func TestHTTPClient_NoTokenNoHeader(t *testing.T) {
	var sawAuth bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		io.WriteString(w, `[]`)
	}, "")

	_, err := c.MyRequests(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestHTTPClient_JobPathsEscaped(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		io.WriteString(w, `{}`)
	}, "t")

	require.NoError(t, c.AcceptJob(context.Background(), "j/1"))
	assert.Equal(t, "/jobs/j%2F1/accept", gotPath)
}

func TestHTTPClient_PlaceBid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs/j1/bids", r.URL.Path)
		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(models.Bid{ID: "b1", JobID: "j1", Amount: body["amount"]})
	}, "t")

	bid, err := c.PlaceBid(context.Background(), "j1", 42.5)
	require.NoError(t, err)
	assert.Equal(t, "b1", bid.ID)
	assert.InDelta(t, 42.5, bid.Amount, 0.001)
}

func TestHTTPClient_UploadPhoto(t *testing.T) {
	content := []byte{0xFF, 0xD8, 0xFF}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/media/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "p1.jpg", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, data)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example/p1.jpg"})
	}, "t")

	url, err := c.UploadPhoto(context.Background(), "p1.jpg", content)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/p1.jpg", url)
}

func TestHTTPClient_NotificationRoutes(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		io.WriteString(w, `[]`)
	}, "t")

	ctx := context.Background()
	_, err := c.Notifications(ctx, "driver")
	require.NoError(t, err)
	require.NoError(t, c.MarkNotificationRead(ctx, "n1"))
	require.NoError(t, c.MarkAllNotificationsRead(ctx))
	require.NoError(t, c.DeleteNotification(ctx, "n1"))
	require.NoError(t, c.ClearNotifications(ctx))

	assert.Equal(t, []string{
		"GET /notifications/driver",
		"PUT /notifications/n1/read",
		"PUT /notifications/mark-all-read",
		"DELETE /notifications/n1",
		"DELETE /notifications/clear-all",
	}, calls)
}
