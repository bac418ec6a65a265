// ABOUTME: Tests for app-name normalization
// ABOUTME: Verifies lowercase + whitespace-to-underscore behavior and idempotency
package models

import "testing"

func TestNormalizeAppName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My App", "my_app"},
		{"my_app", "my_app"},
		{"TEST AGENT", "test_agent"},
		{"  padded  name  ", "padded_name"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
		{"already_normal", "already_normal"},
		{"Mixed Case_With Space", "mixed_case_with_space"},
	}

	for _, tt := range tests {
		if got := NormalizeAppName(tt.input); got != tt.want {
			t.Errorf("NormalizeAppName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeAppName_Idempotent(t *testing.T) {
	inputs := []string{"My App", "Research Tool", "a  b   c"}
	for _, in := range inputs {
		once := NormalizeAppName(in)
		twice := NormalizeAppName(once)
		if once != twice {
			t.Errorf("normalization not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
