package service_test

import (
	"testing"

	"github.com/0niran/rhb-send-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestPersonalize(t *testing.T) {
	t.Run("substitutes all placeholder spellings", func(t *testing.T) {
		tests := []struct {
			name     string
			template string
			expected string
		}{
			{"camel case", "Hi {firstName}", "Hi Ann"},
			{"snake case", "Hi {first_name}", "Hi Ann"},
			{"spaced", "Hi {First Name}", "Hi Ann"},
			{"last name", "Dear {lastName}", "Dear Lee"},
			{"full name", "Dear {fullName}", "Dear Ann Lee"},
			{"upper first", "Hi {FIRSTNAME}", "Hi ANN"},
			{"upper last", "Hi {LASTNAME}", "Hi LEE"},
			{"upper full", "Hi {FULLNAME}", "Hi ANN LEE"},
			{"upper snake", "Hi {FIRST_NAME}", "Hi ANN"},
			{"mixed", "Hi {firstName} {LASTNAME}", "Hi Ann LEE"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.expected, service.Personalize(tt.template, "Ann", "Lee"))
			})
		}
	})

	t.Run("leaves template without placeholders unchanged", func(t *testing.T) {
		template := "Flash sale ends tonight"
		assert.Equal(t, template, service.Personalize(template, "Ann", "Lee"))
	})

	t.Run("leaves unknown tokens verbatim", func(t *testing.T) {
		assert.Equal(t, "Hi {nickname}", service.Personalize("Hi {nickname}", "Ann", "Lee"))
	})

	t.Run("leaves placeholders verbatim when name component is empty", func(t *testing.T) {
		assert.Equal(t, "Hi {firstName}", service.Personalize("Hi {firstName}", "", "Lee"))
		assert.Equal(t, "Dear {lastName}", service.Personalize("Dear {lastName}", "Ann", ""))
	})

	t.Run("full name trims missing component", func(t *testing.T) {
		assert.Equal(t, "Dear Ann", service.Personalize("Dear {fullName}", "Ann", ""))
		assert.Equal(t, "Dear Lee", service.Personalize("Dear {fullName}", "", "Lee"))
	})

	t.Run("does not rescan substituted values", func(t *testing.T) {
		assert.Equal(t, "Hi {lastName}", service.Personalize("Hi {firstName}", "{lastName}", "Lee"))
	})

	t.Run("handles unterminated brace", func(t *testing.T) {
		assert.Equal(t, "Hi {firstName", service.Personalize("Hi {firstName", "Ann", "Lee"))
	})

	t.Run("handles adjacent placeholders", func(t *testing.T) {
		assert.Equal(t, "AnnLee", service.Personalize("{firstName}{lastName}", "Ann", "Lee"))
	})
}
