package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI_SGR(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"bold", "\x1b[1mhello\x1b[0m", "hello"},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"multiple SGR", "\x1b[1;31;42mfancy\x1b[0m", "fancy"},
		{"mixed", "before\x1b[32mgreen\x1b[0mafter", "beforegreenafter"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestStripANSI_OSC(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"OSC with BEL", "\x1b]0;title\x07text", "text"},
		{"OSC with ST", "\x1b]0;title\x1b\\text", "text"},
		{"OSC hyperlink", "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}

func TestValidateUTF8(t *testing.T) {
	assert.Equal(t, "hello", ValidateUTF8("hello"))
	assert.Equal(t, "café", ValidateUTF8("café"))
	assert.Equal(t, "a�b", ValidateUTF8("a\xffb"))
}

func TestMiddleTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"truncated", "abcdefghij", 7, "abc…hij"},
		{"tiny width", "abcdef", 2, "ab"},
		{"zero width", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MiddleTruncate(tt.input, tt.maxWidth))
		})
	}
}

func TestMiddleTruncate_Wide(t *testing.T) {
	// CJK characters occupy two columns each; width must count columns.
	got := MiddleTruncate("日本語テキスト", 7)
	assert.NotEqual(t, "日本語テキスト", got)
	assert.Contains(t, got, "…")
}
