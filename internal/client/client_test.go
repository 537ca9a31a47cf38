package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anamtn/portfolio-api/internal/api/dto/v1/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validForm = contact.SubmissionRequest{
	Name:    "Ana",
	Email:   "ana@example.com",
	Subject: "Hello there",
	Message: "This is a test message.",
}

func newTestServer(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/contact", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitSuccessClearsForm(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"success":true}`, nil)

	s := NewSubmitter(srv.URL, WithSuccessResetDelay(0))
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, state)
	assert.Equal(t, StateSuccess, s.State())
	assert.Equal(t, contact.SubmissionRequest{}, s.Form(), "fields should be cleared on success")
}

func TestSubmitSuccessAutoReverts(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"success":true}`, nil)

	s := NewSubmitter(srv.URL, WithSuccessResetDelay(30*time.Millisecond))
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateSuccess, state)

	assert.Eventually(t, func() bool {
		return s.State() == StateIdle
	}, time.Second, 5*time.Millisecond, "success indicator should auto-revert to idle")
}

func TestSubmitLocalValidationSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, http.StatusOK, `{"success":true}`, &hits)

	s := NewSubmitter(srv.URL)
	s.SetForm(contact.SubmissionRequest{
		Name:    "A",
		Email:   "bad",
		Subject: "Hi",
		Message: "short",
	})

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateError, state)

	reason, msg := s.Error()
	assert.Equal(t, ReasonValidation, reason)
	assert.NotEmpty(t, msg)
	assert.Equal(t, int32(0), hits.Load(), "invalid form must not reach the network")
}

func TestSubmitRateLimitedMapping(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{"error":"Too many requests. Please try again later."}`, nil)

	s := NewSubmitter(srv.URL)
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateError, state)

	reason, msg := s.Error()
	assert.Equal(t, ReasonRateLimited, reason)
	assert.Equal(t, "Too many requests. Please try again later.", msg)
}

func TestSubmitServerErrorMessageVerbatim(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"error":"subject must be at least 5 characters"}`, nil)

	s := NewSubmitter(srv.URL)
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateError, state)

	reason, msg := s.Error()
	assert.Equal(t, ReasonServer, reason)
	assert.Equal(t, "subject must be at least 5 characters", msg)
}

func TestSubmitUnstructuredErrorIsGeneric(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `upstream timeout`, nil)

	s := NewSubmitter(srv.URL)
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateError, state)

	reason, msg := s.Error()
	assert.Equal(t, ReasonUnknown, reason)
	assert.NotEmpty(t, msg)
}

func TestSubmitNetworkError(t *testing.T) {
	// Nothing listens here; the request never completes
	s := NewSubmitter("http://127.0.0.1:1", WithHTTPClient(&http.Client{Timeout: time.Second}))
	s.SetForm(validForm)

	state, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateError, state)

	reason, msg := s.Error()
	assert.Equal(t, ReasonNetwork, reason)
	assert.NotEmpty(t, msg)
}

func TestSubmitWhileInFlightIsNoOp(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	entered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		close(entered)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() {
		select {
		case <-release:
		default:
			close(release)
		}
	})

	s := NewSubmitter(srv.URL, WithSuccessResetDelay(0))
	s.SetForm(validForm)

	done := make(chan State, 1)
	go func() {
		state, _ := s.Submit(context.Background())
		done <- state
	}()

	<-entered
	assert.Equal(t, StateSubmitting, s.State())

	// Second submit while in flight: rejected, no duplicate request
	state, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, StateSubmitting, state)

	close(release)
	assert.Equal(t, StateSuccess, <-done)
	assert.Equal(t, int32(1), hits.Load(), "only one request must be issued")
}
