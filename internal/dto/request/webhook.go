package request

import "encoding/json"

// Webhook event types emitted by the external identity provider.
const (
	WebhookUserCreated = "user.created"
)

// WebhookEvent is the outer envelope of an identity-provider event. Data is
// decoded per event type after the signature check passes.
type WebhookEvent struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type" binding:"required"`
	Data json.RawMessage `json:"data"`
}

// EmailAddress is a candidate email contact record.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// PhoneNumber is a candidate phone contact record.
type PhoneNumber struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phone_number"`
}

// UserCreatedData is the payload of a user.created event. The primary
// email/phone are located in the candidate lists by their primary-marker ids.
type UserCreatedData struct {
	ID                    string         `json:"id"`
	Username              string         `json:"username"`
	FirstName             string         `json:"first_name"`
	LastName              string         `json:"last_name"`
	ImageURL              string         `json:"image_url"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	PhoneNumbers          []PhoneNumber  `json:"phone_numbers"`
	PrimaryPhoneNumberID  string         `json:"primary_phone_number_id"`
}

// PrimaryEmail returns the email whose id matches the primary marker, or ""
// when absent.
func (d *UserCreatedData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	return ""
}

// PrimaryPhone returns the phone whose id matches the primary marker, or ""
// when absent.
func (d *UserCreatedData) PrimaryPhone() string {
	for _, p := range d.PhoneNumbers {
		if p.ID == d.PrimaryPhoneNumberID {
			return p.PhoneNumber
		}
	}
	return ""
}
