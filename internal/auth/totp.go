package auth

import (
	"github.com/pquerna/otp/totp"
)

// GenerateTOTPSecret enrolls a new second factor for the given account.
// Returns the shared secret and the otpauth:// provisioning URL.
func GenerateTOTPSecret(email string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "FP Empleo",
		AccountName: email,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

func ValidateTOTPCode(code, secret string) bool {
	return totp.Validate(code, secret)
}
