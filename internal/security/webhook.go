package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devtutor/devtutor-go/internal/config"
)

var (
	ErrMissingSignatureHeaders = errors.New("missing webhook signature headers")
	ErrBadTimestamp            = errors.New("webhook timestamp invalid or outside tolerance")
	ErrSignatureMismatch       = errors.New("webhook signature mismatch")
)

// Webhook header names used by the identity provider.
const (
	HeaderWebhookID        = "webhook-id"
	HeaderWebhookTimestamp = "webhook-timestamp"
	HeaderWebhookSignature = "webhook-signature"
)

// WebhookVerifier validates inbound identity-provider events. The provider
// signs "<id>.<timestamp>.<raw body>" with HMAC-SHA256 and sends the
// base64 digest in a space-separated "v1,<sig>" header list.
type WebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
}

// NewWebhookVerifier creates a verifier from config. Secrets may carry the
// provider's "whsec_" prefix with the key base64-encoded after it.
func NewWebhookVerifier(cfg *config.WebhookConfig) (*WebhookVerifier, error) {
	secret := cfg.Secret
	key := []byte(secret)
	if rest, ok := strings.CutPrefix(secret, "whsec_"); ok {
		decoded, err := base64.StdEncoding.DecodeString(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook secret encoding: %w", err)
		}
		key = decoded
	}
	return &WebhookVerifier{secret: key, tolerance: cfg.Tolerance}, nil
}

// Verify checks the signature over the raw request body. It must run before
// any event processing; a failure means the event is discarded with no side
// effects.
func (v *WebhookVerifier) Verify(body []byte, msgID, timestamp, signatureHeader string) error {
	if msgID == "" || timestamp == "" || signatureHeader == "" {
		return ErrMissingSignatureHeaders
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrBadTimestamp
	}
	age := time.Since(time.Unix(ts, 0))
	if age > v.tolerance || age < -v.tolerance {
		return ErrBadTimestamp
	}

	expected := v.sign(body, msgID, timestamp)

	// The header may list several versioned signatures; any v1 match passes.
	for _, part := range strings.Fields(signatureHeader) {
		version, sig, found := strings.Cut(part, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrSignatureMismatch
}

func (v *WebhookVerifier) sign(body []byte, msgID, timestamp string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
