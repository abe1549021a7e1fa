package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yatra/backend/pkg/sanitizer"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Pangong Lake trip", want: "Pangong Lake trip"},
		{name: "whitespace trimmed", input: "  hello  ", want: "hello"},
		{name: "empty", input: "", want: ""},
		{name: "tags stripped", input: "<b>bold</b> plans", want: "bold plans"},
		{name: "script removed", input: `<script>alert("x")</script>hi`, want: "hi"},
		{name: "ampersand preserved", input: "Tours & Treks", want: "Tours & Treks"},
		{name: "entity unescaped", input: "Tours &amp; Treks", want: "Tours & Treks"},
		{name: "nested markup", input: `<div><a href="https://evil.example">Leh</a> itinerary</div>`, want: "Leh itinerary"},
		{name: "only markup", input: "<img src=x onerror=alert(1)>", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sanitizer.CleanText(tc.input))
		})
	}
}
