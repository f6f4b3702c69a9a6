package service

import (
	"context"
	"errors"

	"github.com/devtutor/devtutor-go/internal/dto/request"
)

var (
	ErrDuplicateEvent   = errors.New("event already processed")
	ErrUnsupportedEvent = errors.New("unsupported event type")
	ErrMalformedEvent   = errors.New("malformed event payload")
)

// WebhookService processes identity-provider events after the transport
// layer has verified their signatures.
type WebhookService interface {
	// HandleEvent dispatches a verified event by type. Replays of an
	// already-processed event id return ErrDuplicateEvent.
	HandleEvent(ctx context.Context, event *request.WebhookEvent) error
}
