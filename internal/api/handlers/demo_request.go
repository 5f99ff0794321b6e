package handlers

import (
	"context"
	"errors"
	"net/http"

	"medisync/internal/api/constants"
	"medisync/internal/api/dto/common"
	"medisync/internal/api/dto/v1/demo"
	"medisync/internal/api/validation"
	"medisync/internal/lead"
	"medisync/internal/logging"
	"medisync/internal/service"
	"medisync/internal/utils"

	"github.com/gin-gonic/gin"
)

const submittedMessage = "Submitted Successfully!"

// Recaptcha verifies spam-protection tokens
type Recaptcha interface {
	Enabled() bool
	VerifyToken(ctx context.Context, token string) error
}

type DemoRequestHandler struct {
	gateway         lead.Gateway
	recaptcha       Recaptcha
	logger          *logging.Logger
	surfaceFailures bool
}

// NewDemoRequestHandler creates the demo form handler. With surfaceFailures
// unset, a failed insert is answered like an accepted one and only logged.
func NewDemoRequestHandler(gateway lead.Gateway, recaptcha Recaptcha, logger *logging.Logger, surfaceFailures bool) *DemoRequestHandler {
	return &DemoRequestHandler{
		gateway:         gateway,
		recaptcha:       recaptcha,
		logger:          logger,
		surfaceFailures: surfaceFailures,
	}
}

// Submit runs a form session for the posted demo request
func (h *DemoRequestHandler) Submit(c *gin.Context) {
	reqData, exists := c.Get(constants.ContextKeyDemoRequest)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Demo request not found in context")
		return
	}
	req, ok := reqData.(*demo.DemoRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid demo request format")
		return
	}

	values := req.FormState()
	session := lead.NewSession(h.gateway,
		lead.WithLogger(h.logger),
		lead.WithSurfaceFailures(h.surfaceFailures),
	)
	// The delayed close only matters to interactive clients
	defer session.Close()

	session.Fill(values)

	// Spam check only runs for forms that could actually be stored
	if h.recaptcha != nil && h.recaptcha.Enabled() && lead.ValidateForm(values).Empty() {
		if err := h.recaptcha.VerifyToken(c.Request.Context(), req.RecaptchaToken); err != nil {
			utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "reCAPTCHA verification failed")
			return
		}
	}

	res, err := session.Submit(c.Request.Context())

	var verr *lead.ValidationErrors
	switch {
	case errors.As(err, &verr):
		utils.HandleValidationError(c, "Please correct the highlighted fields", validation.FromErrorState(verr.Errors, values))
	case errors.Is(err, lead.ErrSubmitInProgress):
		utils.HandleAPIError(c, err, http.StatusConflict, common.ErrCodeConflict, "Submission already in progress")
	case errors.Is(err, lead.ErrSubmission):
		status, code := http.StatusBadGateway, common.ErrCodeBadGateway
		if errors.Is(err, service.ErrNotConfigured) {
			status, code = http.StatusServiceUnavailable, common.ErrCodeUnavailable
		}
		utils.HandleAPIError(c, err, status, code, "Failed to save demo request")
	case err != nil:
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to save demo request")
	case res.Status == lead.StatusFailed:
		// Observed behaviour: the visitor sees the same confirmation
		utils.HandleAccepted(c, demo.DemoResponse{Message: submittedMessage, Success: true})
	default:
		utils.HandleCreated(c, demo.DemoResponse{Message: submittedMessage, Success: true})
	}
}

// ValidateField returns the validation message of a single input
func (h *DemoRequestHandler) ValidateField(c *gin.Context) {
	reqData, exists := c.Get(constants.ContextKeyValidateField)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Field request not found in context")
		return
	}
	req := reqData.(*demo.ValidateFieldRequest)

	field, err := lead.ParseField(req.Field)
	if err != nil {
		utils.HandleValidationError(c, "Unknown field", []common.ValidationError{{Field: "field", Message: err.Error(), Value: req.Field}})
		return
	}

	msg := lead.ValidateField(field, req.Value)
	utils.HandleSuccess(c, demo.ValidateFieldResponse{
		Field: field.String(),
		Error: msg,
		Valid: msg == "",
	})
}

// ListPlans returns the plans offered in the form's dropdown
func (h *DemoRequestHandler) ListPlans(c *gin.Context) {
	plans := lead.Plans()
	out := make([]demo.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, demo.PlanResponse{
			Plan:     string(p.Plan),
			Audience: p.Audience,
			Label:    p.Option(),
		})
	}
	utils.HandleSuccess(c, out)
}
