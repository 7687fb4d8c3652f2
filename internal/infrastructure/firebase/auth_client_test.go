package firebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyAuthMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"EMAIL_NOT_FOUND", "Invalid email or password."},
		{"INVALID_PASSWORD", "Invalid email or password."},
		{"INVALID_LOGIN_CREDENTIALS", "Invalid email or password."},
		{"INVALID_EMAIL", "Invalid email address format."},
		{"USER_DISABLED", "This account has been disabled."},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", "Too many failed attempts. Please try again later."},
		{"EMAIL_EXISTS", "An account with this email already exists."},
		{"WEAK_PASSWORD", "Password should be at least 6 characters."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FriendlyAuthMessage(tt.code), tt.code)
	}
}

func TestFriendlyAuthMessageNeverLeaksUnknownCodes(t *testing.T) {
	assert.Equal(t, "An error occurred. Please try again.", FriendlyAuthMessage("SOMETHING_INTERNAL : details"))
	assert.Equal(t, "An error occurred. Please try again.", FriendlyAuthMessage(""))
}
