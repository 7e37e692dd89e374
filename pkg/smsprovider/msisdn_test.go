package smsprovider_test

import (
	"testing"

	"github.com/0niran/rhb-send-backend/pkg/smsprovider"
	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ten digits gets +1", "5551234567", "+15551234567"},
		{"eleven digits starting with 1", "15551234567", "+15551234567"},
		{"dashes and parens stripped", "(555) 123-4567", "+15551234567"},
		{"already normalized", "+15551234567", "+15551234567"},
		{"international with country code", "447911123456", "+447911123456"},
		{"international already prefixed", "+447911123456", "+447911123456"},
		{"short number defaults to +1", "12345", "+112345"},
		{"letters stripped", "555-CALL-NOW", "+1555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, smsprovider.FormatPhoneNumber(tt.raw))
		})
	}
}

func TestFormatPhoneNumber_Idempotent(t *testing.T) {
	once := smsprovider.FormatPhoneNumber("+15551234567")
	assert.Equal(t, once, smsprovider.FormatPhoneNumber(once))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, smsprovider.IsValidPhoneNumber("+15551234567"))
	assert.True(t, smsprovider.IsValidPhoneNumber("5551234567"))
	assert.True(t, smsprovider.IsValidPhoneNumber("+123456789012345"))
	assert.False(t, smsprovider.IsValidPhoneNumber("+1234567890123456"))
	assert.False(t, smsprovider.IsValidPhoneNumber("123456789"))
	assert.False(t, smsprovider.IsValidPhoneNumber(""))
}
