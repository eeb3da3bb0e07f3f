package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+254712345678",
			want:  "+254712345678",
		},
		{
			name:  "with spaces",
			input: "+254 712 345 678",
			want:  "+254712345678",
		},
		{
			name:  "with dashes",
			input: "+254-712-345-678",
			want:  "+254712345678",
		},
		{
			name:  "us number with parentheses",
			input: "+1 (212) 555-0123",
			want:  "+12125550123",
		},
		{
			name:  "national format default region",
			input: "0712 345 678",
			want:  "+254712345678",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +254712345678  ",
			want:  "+254712345678",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "garbage input",
			input: "not-a-phone",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
