package utils

import (
	"strings"
	"testing"
)

func TestValidateBotName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"valid name", "grid-bot-1", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", MaxBotNameLength+1), true},
		{"max length", strings.Repeat("x", MaxBotNameLength), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBotName(tt.input)
			if tt.expectErr && err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"empty is allowed", "", false},
		{"underscore format", "BTC_USDT", false},
		{"perp suffix", "BTC_USDT_PERP", false},
		{"plain format", "BTCUSDT", false},
		{"lowercase", "btcusdt", false},
		{"dash", "BTC-USDT", false},
		{"space", "BTC USDT", true},
		{"injection", "BTC&timestamp=1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol(tt.input)
			if tt.expectErr && err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		def       int
		expected  string
		expectErr bool
	}{
		{"empty uses default", "", 100, "100", false},
		{"valid value", "50", 100, "50", false},
		{"normalizes leading zeros", "007", 100, "7", false},
		{"zero", "0", 100, "", true},
		{"negative", "-5", 100, "", true},
		{"not a number", "abc", 100, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateLimit(tt.input, tt.def)
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error for %q, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ValidateLimit(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
