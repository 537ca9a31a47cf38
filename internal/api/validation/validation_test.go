package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"first.last@example.co.uk", true},
		{"user+tag@example.io", true},
		{"user_name@sub.example.com", true},
		{"bad", false},
		{"no-at-sign.com", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"user@nodot", false},
		{"@example.com", false},
		{"user@.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email), "IsValidEmail(%q)", tt.email)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)

	type form struct {
		Name    string `binding:"required,min=2"`
		Email   string `binding:"required,email"`
		Subject string `binding:"required,min=5"`
		Message string `binding:"required,min=10"`
	}

	tests := []struct {
		name string
		form form
		want []string
	}{
		{
			name: "all fields missing",
			form: form{},
			want: []string{"name is required", "email is required", "subject is required", "message is required"},
		},
		{
			name: "short name and bad email",
			form: form{Name: "A", Email: "bad", Subject: "Hello", Message: "long enough text"},
			want: []string{"name must be at least 2 characters", "email must be a valid email address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			assert.Error(t, err)

			msg := ErrorMessage(err)
			assert.NotEmpty(t, msg)
			for _, want := range tt.want {
				assert.Contains(t, msg, want)
			}
		})
	}

	t.Run("valid form", func(t *testing.T) {
		err := v.Struct(form{
			Name:    "Ana",
			Email:   "ana@example.com",
			Subject: "Hello there",
			Message: "This is a test message.",
		})
		assert.NoError(t, err)
	})

	t.Run("non-validator error", func(t *testing.T) {
		msg := ErrorMessage(assert.AnError)
		assert.Equal(t, "Invalid request body", msg)
	})
}
