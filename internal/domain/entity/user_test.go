package entity

import (
	"testing"
	"time"
)

func TestValidRole(t *testing.T) {
	for _, r := range []UserRole{RoleUser, RoleInstructor, RoleAdmin} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false", r)
		}
	}
	if ValidRole("superuser") {
		t.Error("ValidRole(superuser) = true")
	}
}

func TestRoleAllowed(t *testing.T) {
	if !RoleAllowed(RoleInstructor, RoleInstructor, RoleAdmin) {
		t.Error("RoleAllowed(instructor, {instructor,admin}) = false")
	}
	if RoleAllowed(RoleUser, RoleInstructor, RoleAdmin) {
		t.Error("RoleAllowed(user, {instructor,admin}) = true")
	}
	if RoleAllowed(RoleUser) {
		t.Error("RoleAllowed with empty set = true")
	}
}

func TestUser_CanPublish(t *testing.T) {
	if !(&User{Role: RoleInstructor}).CanPublish() {
		t.Error("instructor CanPublish() = false")
	}
	if !(&User{Role: RoleAdmin}).CanPublish() {
		t.Error("admin CanPublish() = false")
	}
	if (&User{Role: RoleUser}).CanPublish() {
		t.Error("user CanPublish() = true")
	}
}

func TestRefreshToken_IsValid(t *testing.T) {
	rt := &RefreshToken{ExpiresAt: time.Now().Add(time.Hour)}
	if !rt.IsValid() {
		t.Error("IsValid() = false for fresh token")
	}

	rt.Revoked = true
	if rt.IsValid() {
		t.Error("IsValid() = true for revoked token")
	}

	expired := &RefreshToken{ExpiresAt: time.Now().Add(-time.Hour)}
	if !expired.IsExpired() {
		t.Error("IsExpired() = false for expired token")
	}
	if expired.IsValid() {
		t.Error("IsValid() = true for expired token")
	}
}
