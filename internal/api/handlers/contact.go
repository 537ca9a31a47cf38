package handlers

import (
	"errors"
	"net/http"

	"github.com/anamtn/portfolio-api/internal/api/dto/common"
	"github.com/anamtn/portfolio-api/internal/api/dto/v1/contact"
	"github.com/anamtn/portfolio-api/internal/api/validation"
	"github.com/anamtn/portfolio-api/internal/logging"
	"github.com/anamtn/portfolio-api/internal/ratelimit"
	"github.com/anamtn/portfolio-api/internal/service"
	"github.com/anamtn/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactHandler is the sole entry point for contact submissions. Per request
// the steps run strictly in order: identify, rate-check, parse, validate,
// dispatch, respond.
type ContactHandler struct {
	limiter *ratelimit.Limiter
	mailer  service.Mailer
}

// NewContactHandler creates a new contact handler
func NewContactHandler(limiter *ratelimit.Limiter, mailer service.Mailer) *ContactHandler {
	return &ContactHandler{
		limiter: limiter,
		mailer:  mailer,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetGlobalLogger()

	// Identify the client before touching the body
	identifier := utils.GetRealIP(c)

	res := h.limiter.CheckAndConsume(c.Request.Context(), identifier)
	if !res.Allowed {
		utils.HandleError(c, nil, http.StatusTooManyRequests, common.MsgRateLimited)
		return
	}
	if res.Mode == ratelimit.ModeDegraded {
		logger.Warn("Rate limit for %s enforced by degraded in-process store", identifier)
	}

	// Parse and validate in one pass; the binding tags carry the field rules.
	// Malformed JSON is a client error, not a server one.
	var req contact.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.HandleError(c, err, http.StatusBadRequest, validation.ErrorMessage(err))
			return
		}
		utils.HandleError(c, err, http.StatusBadRequest, common.MsgInvalidBody)
		return
	}

	// Dispatch failure must not fail the submission: acknowledgment is
	// deliberately decoupled from delivery confirmation.
	msg := &service.ContactMessage{
		Reference: uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		logger.Error("Failed to dispatch contact email (ref=%s): %v", msg.Reference, err)
	}

	utils.HandleSuccess(c, contact.SubmissionResponse{Success: true})
}
