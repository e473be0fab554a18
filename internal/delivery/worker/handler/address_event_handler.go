// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/constants"
	"tiffin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// AddressEventHandler consumes address lifecycle events pushed by Pub/Sub and
// records them in the audit log. Downstream consumers (delivery-zone caches,
// reporting) subscribe to the same topic independently.
type AddressEventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
}

// AddressEventHandlerParams holds dependencies for the AddressEventHandler
type AddressEventHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAddressEventHandler creates a new Pub/Sub push handler
func NewAddressEventHandler(params AddressEventHandlerParams) *AddressEventHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &AddressEventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *AddressEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AddressEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse address event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process address event",
			slog.String("action", event.Action),
			slog.Any("error", err),
		)

		// A malformed event never heals; ack it so Pub/Sub stops redelivering.
		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID resolves the request ID for distributed tracing.
func (h *AddressEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AddressEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent validates and records one address lifecycle event.
func (h *AddressEventHandler) processEvent(ctx context.Context, event *service.AddressEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.Action != service.AddressEventCreated && event.Action != service.AddressEventDeleted {
		return errors.Errorf("unknown address event action: %s", event.Action)
	}

	addressID, err := uuid.Parse(event.AddressID)
	if err != nil {
		return errors.Wrap(err, "invalid address id in event")
	}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return errors.Wrap(err, "invalid customer id in event")
	}

	logger.Info("[Worker] Address event recorded",
		slog.String("action", event.Action),
		slog.String("address_id", addressID.String()),
		slog.String("customer_id", customerID.String()),
		slog.String("city", event.City),
		slog.String("pincode", event.Pincode),
		slog.String("state_name", event.StateName),
	)

	return nil
}

// verifyPubSubToken validates the OIDC token Google Pub/Sub attaches to push
// requests.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
