package impl

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/domain/entity"
	"github.com/devtutor/devtutor-go/internal/domain/service"
	"github.com/devtutor/devtutor-go/internal/dto/request"
	"github.com/devtutor/devtutor-go/internal/security"
	"github.com/devtutor/devtutor-go/internal/testutil/mocks"
)

func setupWebhookService(t *testing.T) (service.WebhookService, *mocks.MockUserRepository, *mocks.MockWebhookEventRepository) {
	t.Helper()
	userRepo := mocks.NewMockUserRepository()
	eventRepo := mocks.NewMockWebhookEventRepository()
	svc := NewWebhookService(userRepo, eventRepo, security.NewPasswordHasher(), zap.NewNop())
	return svc, userRepo, eventRepo
}

func userCreatedEvent(t *testing.T, eventID string, data request.UserCreatedData) *request.WebhookEvent {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal event data: %v", err)
	}
	return &request.WebhookEvent{
		ID:   eventID,
		Type: request.WebhookUserCreated,
		Data: raw,
	}
}

func TestWebhookService_HandleEvent_ProvisionsUser(t *testing.T) {
	svc, userRepo, _ := setupWebhookService(t)
	ctx := context.Background()

	event := userCreatedEvent(t, "msg_1", request.UserCreatedData{
		ID:        "ext_123",
		Username:  "newuser",
		FirstName: "New",
		LastName:  "User",
		ImageURL:  "https://img.example.com/a.png",
		EmailAddresses: []request.EmailAddress{
			{ID: "em_1", EmailAddress: "new@example.com"},
			{ID: "em_2", EmailAddress: "secondary@example.com"},
		},
		PrimaryEmailAddressID: "em_1",
		PhoneNumbers: []request.PhoneNumber{
			{ID: "ph_1", PhoneNumber: "+15550001"},
		},
		PrimaryPhoneNumberID: "ph_1",
	})

	if err := svc.HandleEvent(ctx, event); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}

	user, _ := userRepo.GetByExternalID(ctx, "ext_123")
	if user == nil {
		t.Fatal("user was not provisioned")
	}
	if user.Username != "newuser" {
		t.Errorf("Username = %v, want newuser", user.Username)
	}
	if user.Email != "new@example.com" {
		t.Errorf("Email = %v, want primary address", user.Email)
	}
	if user.Phone != "+15550001" {
		t.Errorf("Phone = %v, want primary number", user.Phone)
	}
	if user.Role != entity.RoleUser {
		t.Errorf("Role = %v, want user", user.Role)
	}
	if user.Password == "" {
		t.Error("provisioned user has no password hash")
	}
}

func TestWebhookService_HandleEvent_Duplicate(t *testing.T) {
	svc, userRepo, _ := setupWebhookService(t)
	ctx := context.Background()

	event := userCreatedEvent(t, "msg_1", request.UserCreatedData{
		ID:                    "ext_123",
		Username:              "newuser",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "new@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})

	if err := svc.HandleEvent(ctx, event); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if err := svc.HandleEvent(ctx, event); err != service.ErrDuplicateEvent {
		t.Errorf("replayed HandleEvent() error = %v, want ErrDuplicateEvent", err)
	}
	if userRepo.Count() != 1 {
		t.Errorf("Count = %d, want 1", userRepo.Count())
	}
}

func TestWebhookService_HandleEvent_RetryAfterFailure(t *testing.T) {
	svc, userRepo, eventRepo := setupWebhookService(t)
	ctx := context.Background()

	event := userCreatedEvent(t, "msg_1", request.UserCreatedData{
		ID:                    "ext_123",
		Username:              "newuser",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "new@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})

	// First delivery hits a transient store failure
	userRepo.CreateErr = errors.New("connection reset")
	if err := svc.HandleEvent(ctx, event); err == nil {
		t.Fatal("HandleEvent() with failing store, want error")
	}
	if eventRepo.Seen("msg_1") {
		t.Error("dedup key still held after failed delivery")
	}

	// The provider retries the same delivery id; it must be processed, not
	// rejected as a replay
	userRepo.CreateErr = nil
	if err := svc.HandleEvent(ctx, event); err != nil {
		t.Fatalf("retried HandleEvent() error = %v", err)
	}
	user, _ := userRepo.GetByExternalID(ctx, "ext_123")
	if user == nil {
		t.Fatal("retry did not provision the user")
	}
	if userRepo.Count() != 1 {
		t.Errorf("Count = %d, want 1", userRepo.Count())
	}
}

func TestWebhookService_HandleEvent_ExistingExternalID(t *testing.T) {
	svc, userRepo, _ := setupWebhookService(t)
	ctx := context.Background()

	userRepo.AddUser(&entity.User{
		Username:   "already",
		Email:      "already@example.com",
		ExternalID: "ext_123",
	})

	// Different delivery id, same external identity: a no-op, not an error
	event := userCreatedEvent(t, "msg_2", request.UserCreatedData{
		ID:                    "ext_123",
		Username:              "already",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "already@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})
	if err := svc.HandleEvent(ctx, event); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	if userRepo.Count() != 1 {
		t.Errorf("Count = %d, want 1", userRepo.Count())
	}
}

func TestWebhookService_HandleEvent_UnsupportedType(t *testing.T) {
	svc, _, _ := setupWebhookService(t)

	err := svc.HandleEvent(context.Background(), &request.WebhookEvent{
		ID:   "msg_1",
		Type: "user.deleted",
	})
	if err != service.ErrUnsupportedEvent {
		t.Errorf("HandleEvent() error = %v, want ErrUnsupportedEvent", err)
	}
}

func TestWebhookService_HandleEvent_Malformed(t *testing.T) {
	svc, _, _ := setupWebhookService(t)
	ctx := context.Background()

	// Garbage payload
	if err := svc.HandleEvent(ctx, &request.WebhookEvent{
		Type: request.WebhookUserCreated,
		Data: json.RawMessage(`"not an object"`),
	}); err != service.ErrMalformedEvent {
		t.Errorf("HandleEvent(garbage) error = %v, want ErrMalformedEvent", err)
	}

	// Missing external id
	if err := svc.HandleEvent(ctx, userCreatedEvent(t, "", request.UserCreatedData{
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "a@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})); err != service.ErrMalformedEvent {
		t.Errorf("HandleEvent(no id) error = %v, want ErrMalformedEvent", err)
	}

	// No resolvable primary email
	if err := svc.HandleEvent(ctx, userCreatedEvent(t, "", request.UserCreatedData{
		ID:                    "ext_1",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "a@example.com"}},
		PrimaryEmailAddressID: "em_other",
	})); err != service.ErrMalformedEvent {
		t.Errorf("HandleEvent(no primary email) error = %v, want ErrMalformedEvent", err)
	}
}

func TestWebhookService_UsernameFallbacks(t *testing.T) {
	svc, userRepo, _ := setupWebhookService(t)
	ctx := context.Background()

	// No username in payload, fall back to first+last
	if err := svc.HandleEvent(ctx, userCreatedEvent(t, "", request.UserCreatedData{
		ID:                    "ext_1",
		FirstName:             "Jane",
		LastName:              "Doe",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "jane@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	user, _ := userRepo.GetByExternalID(ctx, "ext_1")
	if user.Username != "janedoe" {
		t.Errorf("Username = %v, want janedoe", user.Username)
	}

	// No name at all, fall back to the email local part
	if err := svc.HandleEvent(ctx, userCreatedEvent(t, "", request.UserCreatedData{
		ID:                    "ext_2",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "solo@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}
	user, _ = userRepo.GetByExternalID(ctx, "ext_2")
	if user.Username != "solo" {
		t.Errorf("Username = %v, want solo", user.Username)
	}
}

func TestWebhookService_UsernameCollisionSuffixed(t *testing.T) {
	svc, userRepo, _ := setupWebhookService(t)
	ctx := context.Background()

	userRepo.AddUser(&entity.User{Username: "janedoe", Email: "taken@example.com"})

	if err := svc.HandleEvent(ctx, userCreatedEvent(t, "", request.UserCreatedData{
		ID:                    "ext_1",
		Username:              "janedoe",
		EmailAddresses:        []request.EmailAddress{{ID: "em_1", EmailAddress: "jane@example.com"}},
		PrimaryEmailAddressID: "em_1",
	})); err != nil {
		t.Fatalf("HandleEvent() error = %v", err)
	}

	user, _ := userRepo.GetByExternalID(ctx, "ext_1")
	if user.Username == "janedoe" {
		t.Error("colliding username was not suffixed")
	}
	if !strings.HasPrefix(user.Username, "janedoe-") {
		t.Errorf("Username = %v, want janedoe-<suffix>", user.Username)
	}
}
