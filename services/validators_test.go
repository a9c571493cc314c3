package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"john@example.com", true},
		{"a.b@c.d", true},
		{"john+tag@mail.example.org", true},
		{"notanemail", false},
		{"", false},
		{"@example.com", false},
		{"john@", false},
		{"john@example", false},
		{"jo hn@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateEmail(tt.email), "email %q", tt.email)
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+14155551234", true},
		{"14155551234", true},
		{"1234567890", true},
		{"123456789012345", true},
		{"123", false},
		{"123456789", false},
		{"1234567890123456", false},
		{"+1 415 555 1234", false},
		{"phone", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidatePhone(tt.phone), "phone %q", tt.phone)
	}
}
