package auth

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "KeyBuddy"

// TOTPService manages time-based one-time passwords for two-factor
// authentication. Codes from the adjacent time step are accepted to
// tolerate clock drift between server and authenticator app.
type TOTPService struct{}

func NewTOTPService() *TOTPService {
	return &TOTPService{}
}

type TOTPEnrollment struct {
	Secret string
	// QRCode is a base64-encoded PNG of the provisioning URI, ready
	// to embed in a data URL.
	QRCode string
}

// GenerateEnrollment creates a new secret and QR code for the user.
func (s *TOTPService) GenerateEnrollment(username string) (*TOTPEnrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: username,
	})
	if err != nil {
		return nil, fmt.Errorf("generate totp secret: %w", err)
	}

	img, err := key.Image(200, 200)
	if err != nil {
		return nil, fmt.Errorf("render totp qr code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode totp qr code: %w", err)
	}

	return &TOTPEnrollment{
		Secret: key.Secret(),
		QRCode: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Validate checks a code against the secret, accepting one time step
// of skew in either direction.
func (s *TOTPService) Validate(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period: 30,
		Skew:   1,
		Digits: otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
