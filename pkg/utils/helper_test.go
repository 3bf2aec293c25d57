package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Castle Combo", "castle-combo"},
		{"punctuation", "Castle w/ Slide", "castle-w-slide"},
		{"extra spaces", "  Big   Kahuna  ", "big-kahuna"},
		{"symbols only", "!!!", ""},
		{"already a slug", "water-slide", "water-slide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugID(tt.input))
		})
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	inv := GenerateInvoiceNumber()
	assert.Regexp(t, `^INV-\d{8}-\d{4}$`, inv)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.True(t, IsValidEmail("j.doe+tag@sub.example.co"))
	assert.False(t, IsValidEmail("jane@example"))
	assert.False(t, IsValidEmail("jane example@x.com"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}
