package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/repository"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/security"
)

// webhookService implements service.WebhookService
type webhookService struct {
	userRepo       repository.UserRepository
	eventRepo      repository.WebhookEventRepository
	passwordHasher *security.PasswordHasher
	logger         *zap.Logger
}

// NewWebhookService creates a new WebhookService instance
func NewWebhookService(
	userRepo repository.UserRepository,
	eventRepo repository.WebhookEventRepository,
	passwordHasher *security.PasswordHasher,
	logger *zap.Logger,
) service.WebhookService {
	return &webhookService{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (s *webhookService) HandleEvent(ctx context.Context, event *request.WebhookEvent) error {
	if event.ID != "" {
		first, err := s.eventRepo.MarkProcessed(ctx, event.ID)
		if err != nil {
			return err
		}
		if !first {
			return service.ErrDuplicateEvent
		}
	}

	err := s.dispatch(ctx, event)
	if err != nil && event.ID != "" {
		// Release the dedup key so the provider's retry is processed
		// instead of being rejected as a replay of a delivery that never
		// took effect.
		if clearErr := s.eventRepo.ClearProcessed(ctx, event.ID); clearErr != nil {
			s.logger.Warn("failed to release webhook dedup key",
				zap.String("event_id", event.ID),
				zap.Error(clearErr))
		}
	}
	return err
}

func (s *webhookService) dispatch(ctx context.Context, event *request.WebhookEvent) error {
	switch event.Type {
	case request.WebhookUserCreated:
		return s.handleUserCreated(ctx, event)
	default:
		s.logger.Info("ignoring webhook event of unsupported type",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type))
		return service.ErrUnsupportedEvent
	}
}

func (s *webhookService) handleUserCreated(ctx context.Context, event *request.WebhookEvent) error {
	var data request.UserCreatedData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return service.ErrMalformedEvent
	}
	if data.ID == "" {
		return service.ErrMalformedEvent
	}

	email := data.PrimaryEmail()
	if email == "" {
		return service.ErrMalformedEvent
	}

	// Provisioning the same external identity twice is a no-op.
	existing, err := s.userRepo.GetByExternalID(ctx, data.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Info("external user already provisioned",
			zap.String("external_id", data.ID))
		return nil
	}

	username, err := s.uniqueUsername(ctx, &data, email)
	if err != nil {
		return err
	}

	// Locally unusable credential; these accounts authenticate through the
	// external provider.
	hashed, err := s.passwordHasher.Hash(uuid.New().String())
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:   username,
		Email:      email,
		Password:   hashed,
		Role:       entity.RoleUser,
		Picture:    data.ImageURL,
		Phone:      data.PrimaryPhone(),
		ExternalID: data.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("provisioned user from webhook",
		zap.String("external_id", data.ID),
		zap.String("user_id", user.ID))
	return nil
}

// uniqueUsername derives a username from the event payload, suffixing it
// when the plain form is taken.
func (s *webhookService) uniqueUsername(ctx context.Context, data *request.UserCreatedData, email string) (string, error) {
	base := data.Username
	if base == "" {
		base = strings.ToLower(strings.TrimSpace(data.FirstName + data.LastName))
	}
	if base == "" {
		base = strings.Split(email, "@")[0]
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8]), nil
}
