package util

import "testing"

func TestDefaultString(t *testing.T) {
	tests := []struct {
		in, fallback, want string
	}{
		{"hello", "world", "hello"},
		{"", "world", "world"},
		{"  \t", "world", "world"},
		{"  hi", "world", "  hi"},
	}
	for _, tt := range tests {
		if got := DefaultString(tt.in, tt.fallback); got != tt.want {
			t.Errorf("DefaultString(%q, %q): want %q, got %q", tt.in, tt.fallback, tt.want, got)
		}
	}
}
