package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/config"
	"github.com/devtutor/devtutor-go/internal/domain/service/impl"
	"github.com/devtutor/devtutor-go/internal/observability"
	"github.com/devtutor/devtutor-go/internal/security"
	"github.com/devtutor/devtutor-go/internal/testutil/mocks"
)

const testWebhookSecret = "test-webhook-secret"

func setupWebhookRouter(t *testing.T) (*gin.Engine, *mocks.MockUserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := mocks.NewMockUserRepository()
	eventRepo := mocks.NewMockWebhookEventRepository()

	verifier, err := security.NewWebhookVerifier(&config.WebhookConfig{
		Secret:    testWebhookSecret,
		Tolerance: 5 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewWebhookVerifier() error = %v", err)
	}

	metrics, err := observability.NewMetricsProvider(&observability.MetricsConfig{Enabled: false}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMetricsProvider() error = %v", err)
	}

	webhookService := impl.NewWebhookService(userRepo, eventRepo, security.NewPasswordHasher(), zap.NewNop())
	controller := NewWebhookController(webhookService, verifier, metrics, zap.NewNop())

	router := gin.New()
	api := router.Group("/api/v1")
	controller.RegisterRoutes(api)
	return router, userRepo
}

func signedWebhookRequest(t *testing.T, msgID string, body []byte) *http.Request {
	t.Helper()
	ts := fmt.Sprintf("%d", time.Now().Unix())

	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%s.%s.", msgID, ts)
	mac.Write(body)
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(security.HeaderWebhookID, msgID)
	req.Header.Set(security.HeaderWebhookTimestamp, ts)
	req.Header.Set(security.HeaderWebhookSignature, "v1,"+sig)
	return req
}

var userCreatedBody = []byte(`{
	"type": "user.created",
	"data": {
		"id": "ext_123",
		"username": "hooked",
		"email_addresses": [{"id": "em_1", "email_address": "hooked@example.com"}],
		"primary_email_address_id": "em_1"
	}
}`)

func TestWebhookController_HandleUserEvent(t *testing.T) {
	router, userRepo := setupWebhookRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhookRequest(t, "msg_1", userCreatedBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	user, _ := userRepo.GetByExternalID(context.Background(), "ext_123")
	if user == nil {
		t.Fatal("user not provisioned from webhook")
	}
	if user.Email != "hooked@example.com" {
		t.Errorf("Email = %v, want hooked@example.com", user.Email)
	}
}

func TestWebhookController_DuplicateDelivery(t *testing.T) {
	router, userRepo := setupWebhookRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhookRequest(t, "msg_1", userCreatedBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("first delivery status = %d", rec.Code)
	}

	// The replay acknowledges with 200 so the provider stops retrying
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhookRequest(t, "msg_1", userCreatedBody))
	if rec.Code != http.StatusOK {
		t.Errorf("replay status = %d, want 200", rec.Code)
	}
	if userRepo.Count() != 1 {
		t.Errorf("Count = %d, want 1", userRepo.Count())
	}
}

func TestWebhookController_BadSignature(t *testing.T) {
	router, userRepo := setupWebhookRouter(t)

	req := signedWebhookRequest(t, "msg_1", userCreatedBody)
	req.Header.Set(security.HeaderWebhookSignature, "v1,Zm9yZ2VkCg==")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if userRepo.Count() != 0 {
		t.Error("user provisioned despite rejected signature")
	}
}

func TestWebhookController_MissingHeaders(t *testing.T) {
	router, _ := setupWebhookRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/users", bytes.NewReader(userCreatedBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestWebhookController_UnsupportedEventAcknowledged(t *testing.T) {
	router, _ := setupWebhookRouter(t)

	body := []byte(`{"type":"user.deleted","data":{}}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhookRequest(t, "msg_2", body))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for ignored event type", rec.Code)
	}
}

func TestWebhookController_MalformedEvent(t *testing.T) {
	router, _ := setupWebhookRouter(t)

	// Verified signature but an empty payload for a supported type
	body := []byte(`{"type":"user.created","data":{}}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedWebhookRequest(t, "msg_3", body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
