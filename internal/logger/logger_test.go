package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "JOHN SMITH",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "skills",
			limit:  10,
			expect: "skills",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Find the named entities in this span",
			limit:  4,
			expect: "Find...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
