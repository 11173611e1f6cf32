package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Silk Midi Dress", "silk-midi-dress"},
		{"special characters", "Women's Coats & Jackets!", "womens-coats-jackets"},
		{"multiple spaces", "Linen   Shirt", "linen-shirt"},
		{"leading/trailing junk", "  --Summer Edit--  ", "summer-edit"},
		{"already clean", "basics", "basics"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlug(tt.input)
			if got != tt.want {
				t.Fatalf("GenerateSlug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateSecureToken(t *testing.T) {
	a, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64", len(a))
	}

	b, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken: %v", err)
	}
	if a == b {
		t.Fatalf("two generated tokens are identical")
	}
}
