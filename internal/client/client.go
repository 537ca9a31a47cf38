package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/anamtn/portfolio-api/internal/api/dto/v1/contact"
	"github.com/anamtn/portfolio-api/internal/api/validation"

	"github.com/go-playground/validator/v10"
)

// State is the submission flow's UI state
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrorReason classifies a failed submission
type ErrorReason string

const (
	// ReasonValidation means a field failed locally; no request was sent
	ReasonValidation ErrorReason = "validation"
	// ReasonRateLimited means the server answered 429
	ReasonRateLimited ErrorReason = "rate_limited"
	// ReasonServer means the server answered non-2xx with an error message
	ReasonServer ErrorReason = "server"
	// ReasonNetwork means the request never reached the server
	ReasonNetwork ErrorReason = "network"
	// ReasonUnknown covers everything else
	ReasonUnknown ErrorReason = "unknown"
)

// ErrSubmitInFlight is returned when Submit is called while a submission is
// already in progress; the call is a no-op.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Exactly one human-readable message per failure category
const (
	msgNetwork     = "Network error. Please check your connection and try again."
	msgRateLimited = "You have sent too many messages. Please try again later."
	msgGeneric     = "Something went wrong. Please try again."
)

// DefaultSuccessResetDelay is how long the success state lingers before the
// flow reverts to idle
const DefaultSuccessResetDelay = 5 * time.Second

// Submitter drives the contact submission flow: collect fields, validate
// locally, submit, and map the result onto one of four mutually exclusive
// states. Safe for concurrent use; a second Submit while one is in flight is
// rejected without issuing a request.
type Submitter struct {
	mu         sync.Mutex
	state      State
	reason     ErrorReason
	message    string
	form       contact.SubmissionRequest
	resetTimer *time.Timer

	baseURL           string
	httpClient        *http.Client
	validate          *validator.Validate
	successResetDelay time.Duration
}

// Option configures a Submitter
type Option func(*Submitter)

// WithHTTPClient overrides the HTTP client (used by tests)
func WithHTTPClient(c *http.Client) Option {
	return func(s *Submitter) { s.httpClient = c }
}

// WithSuccessResetDelay overrides how long the success state lingers.
// Zero disables the automatic revert to idle.
func WithSuccessResetDelay(d time.Duration) Option {
	return func(s *Submitter) { s.successResetDelay = d }
}

// NewSubmitter creates a submitter targeting the API at baseURL
func NewSubmitter(baseURL string, opts ...Option) *Submitter {
	// Mirror the server's field rules so failures surface immediately.
	// The server remains authoritative.
	v := validator.New()
	v.SetTagName("binding")
	validation.RegisterValidators(v)

	s := &Submitter{
		state:             StateIdle,
		baseURL:           baseURL,
		httpClient:        &http.Client{Timeout: 15 * time.Second},
		validate:          v,
		successResetDelay: DefaultSuccessResetDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetForm replaces the current field values
func (s *Submitter) SetForm(form contact.SubmissionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// Form returns the current field values
func (s *Submitter) Form() contact.SubmissionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// State returns the current flow state
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Error returns the failure classification and its message. Both are empty
// unless the state is StateError.
func (s *Submitter) Error() (ErrorReason, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateError {
		return "", ""
	}
	return s.reason, s.message
}

// Reset returns the flow to idle
func (s *Submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toIdleLocked()
}

func (s *Submitter) toIdleLocked() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.state = StateIdle
	s.reason = ""
	s.message = ""
}

// Submit validates the current form and sends it. The returned state is the
// state the flow settled in. No retry is performed; the caller must resubmit
// manually after a failure.
func (s *Submitter) Submit(ctx context.Context) (State, error) {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return StateSubmitting, ErrSubmitInFlight
	}
	s.toIdleLocked()

	form := s.form
	if err := s.validate.Struct(form); err != nil {
		s.state = StateError
		s.reason = ReasonValidation
		s.message = validation.ErrorMessage(err)
		s.mu.Unlock()
		return StateError, nil
	}

	s.state = StateSubmitting
	s.mu.Unlock()

	return s.send(ctx, form), nil
}

func (s *Submitter) send(ctx context.Context, form contact.SubmissionRequest) State {
	body, err := json.Marshal(form)
	if err != nil {
		return s.finishError(ReasonUnknown, msgGeneric)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/contact", bytes.NewReader(body))
	if err != nil {
		return s.finishError(ReasonUnknown, msgGeneric)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// The request never completed; distinct from a server rejection
		return s.finishError(ReasonNetwork, msgNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return s.finishSuccess()
	}

	var errBody struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errBody)

	if resp.StatusCode == http.StatusTooManyRequests {
		message := errBody.Error
		if message == "" {
			message = msgRateLimited
		}
		return s.finishError(ReasonRateLimited, message)
	}

	if errBody.Error != "" {
		// Surface the server's structured message verbatim
		return s.finishError(ReasonServer, errBody.Error)
	}

	return s.finishError(ReasonUnknown, fmt.Sprintf("%s (status %d)", msgGeneric, resp.StatusCode))
}

func (s *Submitter) finishSuccess() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateSuccess
	s.reason = ""
	s.message = ""
	s.form = contact.SubmissionRequest{}

	if s.successResetDelay > 0 {
		s.resetTimer = time.AfterFunc(s.successResetDelay, s.Reset)
	}

	return s.state
}

func (s *Submitter) finishError(reason ErrorReason, message string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateError
	s.reason = reason
	s.message = message

	return s.state
}
