package sanitize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Hello, this is a test message.",
			want:  "Hello, this is a test message.",
		},
		{
			name:  "html tags removed",
			input: "Hello <b>world</b>",
			want:  "Hello world",
		},
		{
			name:  "script tag removed entirely",
			input: `<script>alert("x")</script>payload`,
			want:  `alert("x")payload`,
		},
		{
			name:  "self closing tag removed",
			input: "before<br/>after",
			want:  "beforeafter",
		},
		{
			name:  "whitespace collapsed",
			input: "a  b\tc\nd",
			want:  "a b c d",
		},
		{
			name:  "leading and trailing whitespace trimmed",
			input: "  padded  ",
			want:  "padded",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only tags yields empty",
			input: "<div><span></span></div>",
			want:  "",
		},
		{
			name:  "unclosed angle bracket kept",
			input: "1 < 2",
			want:  "1 < 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Hello <b>world</b>",
		"  a  b\n\nc  ",
		"plain",
		strings.Repeat("x ", 4000),
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanRemovesAllTagDelimiters(t *testing.T) {
	inputs := []string{
		"<script src=\"evil.js\"></script>hello world",
		"a <b>bold</b> and <i>italic</i> mix",
		"<img src=x onerror=alert(1)>trailing",
	}

	for _, input := range inputs {
		got := Clean(input)
		if strings.Contains(got, "<") && strings.Contains(got, ">") {
			t.Errorf("Clean(%q) = %q, still contains tag delimiters", input, got)
		}
	}
}

func TestCleanTruncates(t *testing.T) {
	long := strings.Repeat("a", MaxLength+500)
	got := Clean(long)
	if len([]rune(got)) != MaxLength {
		t.Errorf("Clean of %d runes returned %d runes, want %d", MaxLength+500, len([]rune(got)), MaxLength)
	}

	// Truncation happens on rune boundaries, never mid-character.
	multibyte := strings.Repeat("héllo wörld ", 600)
	got = Clean(multibyte)
	if n := len([]rune(got)); n > MaxLength {
		t.Errorf("Clean returned %d runes, want at most %d", n, MaxLength)
	}
}
