package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/dto/response"
	"github.com/devtutor/devtutor-go/internal/observability"
	"github.com/devtutor/devtutor-go/internal/security"
)

// WebhookController receives identity-provider events. The signature is
// verified over the raw body before any JSON decoding happens.
type WebhookController struct {
	webhookService service.WebhookService
	verifier       *security.WebhookVerifier
	metrics        *observability.MetricsProvider
	logger         *zap.Logger
}

// NewWebhookController creates a new WebhookController instance
func NewWebhookController(
	webhookService service.WebhookService,
	verifier *security.WebhookVerifier,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
		verifier:       verifier,
		metrics:        metrics,
		logger:         logger,
	}
}

// RegisterRoutes registers the webhook routes
func (c *WebhookController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/webhooks/users", c.HandleUserEvent)
}

// HandleUserEvent verifies and processes an identity-provider event
// @Summary Receive a user lifecycle webhook
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} response.ApiResponse[any]
// @Failure 400 {object} response.ApiResponse[any]
// @Failure 401 {object} response.ApiResponse[any]
// @Router /api/v1/webhooks/users [post]
func (c *WebhookController) HandleUserEvent(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFail[any]("unreadable body"))
		return
	}

	msgID := ctx.GetHeader(security.HeaderWebhookID)
	timestamp := ctx.GetHeader(security.HeaderWebhookTimestamp)
	signature := ctx.GetHeader(security.HeaderWebhookSignature)

	if err := c.verifier.Verify(body, msgID, timestamp, signature); err != nil {
		c.logger.Warn("webhook signature rejected",
			zap.String("msg_id", msgID),
			zap.Error(err),
		)
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), "unknown", "rejected")
		ctx.JSON(http.StatusUnauthorized, response.NewFail[any]("invalid webhook signature"))
		return
	}

	var event request.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewFail[any]("malformed event"))
		return
	}
	if event.ID == "" {
		// The delivery id doubles as the dedup key when the payload
		// carries no event id.
		event.ID = msgID
	}

	err = c.webhookService.HandleEvent(ctx.Request.Context(), &event)
	switch err {
	case nil:
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), event.Type, "processed")
		ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Event processed"))
	case service.ErrDuplicateEvent:
		// Replays acknowledge cleanly so the provider stops retrying.
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), event.Type, "duplicate")
		ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Event already processed"))
	case service.ErrUnsupportedEvent:
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), event.Type, "ignored")
		ctx.JSON(http.StatusOK, response.NewSuccess[any](nil, "Event ignored"))
	case service.ErrMalformedEvent:
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), event.Type, "malformed")
		ctx.JSON(http.StatusBadRequest, response.NewFail[any]("malformed event"))
	default:
		c.logger.Error("webhook processing failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
		c.metrics.RecordWebhookEvent(ctx.Request.Context(), event.Type, "error")
		ctx.JSON(http.StatusInternalServerError, response.NewFail[any]("event processing failed"))
	}
}
