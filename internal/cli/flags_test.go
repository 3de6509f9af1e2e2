package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Target", flags.Target, "ru"},
		{"Tone", flags.Tone, "natural"},
		{"Provider", flags.Provider, "gemini"},
		{"Timeout", flags.Timeout, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"ShowHistory", flags.ShowHistory},
		{"ClearHistory", flags.ClearHistory},
		{"Breaker", flags.Breaker},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s should default to false", tt.name)
			}
		})
	}
}
