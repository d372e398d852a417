package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatGUID(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "bare guid gets braces",
			value: "12345678-1234-1234-1234-123456789abc",
			want:  "{12345678-1234-1234-1234-123456789abc}",
		},
		{
			name:  "already braced is unchanged",
			value: "{12345678-1234-1234-1234-123456789abc}",
			want:  "{12345678-1234-1234-1234-123456789abc}",
		},
		{
			name:  "missing closing brace only",
			value: "{12345678-1234-1234-1234-123456789abc",
			want:  "{12345678-1234-1234-1234-123456789abc}",
		},
		{
			name:  "missing opening brace only",
			value: "12345678-1234-1234-1234-123456789abc}",
			want:  "{12345678-1234-1234-1234-123456789abc}",
		},
		{
			name:  "surrounding whitespace is stripped",
			value: "  12345678-1234-1234-1234-123456789abc  ",
			want:  "{12345678-1234-1234-1234-123456789abc}",
		},
		{
			name:  "empty stays empty",
			value: "",
			want:  "",
		},
		{
			name:  "malformed interior passes through",
			value: "not-a-guid",
			want:  "{not-a-guid}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGUID(tt.value))
		})
	}
}

func TestFormatGUIDIdempotent(t *testing.T) {
	inputs := []string{
		"12345678-1234-1234-1234-123456789abc",
		"{12345678-1234-1234-1234-123456789abc}",
		" 12345678-1234-1234-1234-123456789abc ",
		"not-a-guid",
	}

	for _, in := range inputs {
		once := FormatGUID(in)
		assert.Equal(t, once, FormatGUID(once), "FormatGUID must be idempotent for %q", in)
	}
}
