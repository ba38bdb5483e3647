package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple word",
			input:    "математика",
			expected: "matematika",
		},
		{
			name:     "capitalized word",
			input:    "Физика",
			expected: "Fizika",
		},
		{
			name:     "multi-character codes",
			input:    "жёлтый ёж",
			expected: "zhjoltyjj jozh",
		},
		{
			name:     "shch and soft sign",
			input:    "борщ и соль",
			expected: "borshh i solx",
		},
		{
			name:     "unmapped characters pass through",
			input:    "химия 101",
			expected: "khimiya 101",
		},
		{
			name:     "pure ascii is unchanged",
			input:    "Calculus II",
			expected: "Calculus II",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToASCII(tt.input))
		})
	}
}

func TestFromASCII_LongestMatchFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "shh decodes as one letter, not sh plus h",
			input:    "shh",
			expected: "щ",
		},
		{
			name:     "sh decodes as one letter",
			input:    "sh",
			expected: "ш",
		},
		{
			name:     "Shh capital",
			input:    "Shh",
			expected: "Щ",
		},
		{
			name:     "kh is one letter",
			input:    "khimiya",
			expected: "химия",
		},
		{
			name:     "unmatched ascii passes through",
			input:    "w8",
			expected: "w8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromASCII(tt.input))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"математика",
		"Высшая математика",
		"Щука и ёрш",
		"объект",
		"экономика",
		"ЭЛЕКТРОТЕХНИКА",
		"йод",
		"подъезд",
		"шщчжцх",
		"ЙЁЪЬЭ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, FromASCII(ToASCII(input)))
		})
	}
}
