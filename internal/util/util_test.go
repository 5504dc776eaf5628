package util

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Fresh apples", want: "Fresh apples"},
		{name: "tags removed", input: "<b>Fresh</b> apples", want: "Fresh apples"},
		{name: "script removed", input: "apples<script>alert(1)</script>", want: "applesalert(1)"},
		{name: "stray closing bracket escaped", input: "1 > 0", want: "1 &gt; 0"},
		{name: "whitespace trimmed", input: "  apples  ", want: "apples"},
		{name: "unclosed tag swallows tail", input: "apples <img src=x", want: "apples"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.input); got != tt.want {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
