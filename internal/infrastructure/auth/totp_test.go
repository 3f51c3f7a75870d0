package auth

import (
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

func TestTOTPService_GenerateEnrollment(t *testing.T) {
	service := NewTOTPService()

	enrollment, err := service.GenerateEnrollment("anna")
	if err != nil {
		t.Fatalf("GenerateEnrollment() error = %v", err)
	}

	if enrollment.Secret == "" {
		t.Error("enrollment secret should not be empty")
	}
	if enrollment.QRCode == "" {
		t.Error("enrollment QR code should not be empty")
	}

	other, err := service.GenerateEnrollment("anna")
	if err != nil {
		t.Fatalf("GenerateEnrollment() error = %v", err)
	}
	if other.Secret == enrollment.Secret {
		t.Error("each enrollment should get a fresh secret")
	}
}

func TestTOTPService_Validate(t *testing.T) {
	service := NewTOTPService()

	enrollment, err := service.GenerateEnrollment("anna")
	if err != nil {
		t.Fatalf("GenerateEnrollment() error = %v", err)
	}

	code, err := totp.GenerateCode(enrollment.Secret, time.Now().UTC())
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}

	if !service.Validate(code, enrollment.Secret) {
		t.Error("Validate() should accept the current code")
	}
	if service.Validate("000000", enrollment.Secret) {
		t.Error("Validate() should reject a bogus code")
	}
	if service.Validate(code, "") {
		t.Error("Validate() should reject an empty secret")
	}
}

func TestTOTPService_ValidateSkew(t *testing.T) {
	service := NewTOTPService()

	enrollment, err := service.GenerateEnrollment("anna")
	if err != nil {
		t.Fatalf("GenerateEnrollment() error = %v", err)
	}

	// A code from the previous time step is still accepted, one from
	// two steps back is not.
	previous, err := totp.GenerateCodeCustom(enrollment.Secret, time.Now().UTC().Add(-30*time.Second), totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		t.Fatalf("GenerateCodeCustom() error = %v", err)
	}
	if !service.Validate(previous, enrollment.Secret) {
		t.Error("Validate() should accept a code from the adjacent time step")
	}

	stale, err := totp.GenerateCodeCustom(enrollment.Secret, time.Now().UTC().Add(-90*time.Second), totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		t.Fatalf("GenerateCodeCustom() error = %v", err)
	}
	if service.Validate(stale, enrollment.Secret) {
		t.Error("Validate() should reject a code three time steps old")
	}
}
