package sanitize

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Clean
// ---------------------------------------------------------------------------

func TestClean_TrimsAndTruncates(t *testing.T) {
	got := Clean("  hello world  ", 100)
	if got != "hello world" {
		t.Errorf("expected trimmed text, got %q", got)
	}

	got = Clean(strings.Repeat("a", 150), 100)
	if len(got) != 100 {
		t.Errorf("expected truncation to 100 chars, got %d", len(got))
	}
}

func TestClean_StripsHTMLTags(t *testing.T) {
	got := Clean("hello <script>alert(1)</script> world", 100)
	if got != "hello alert1 world" {
		t.Errorf("expected tags and parens stripped, got %q", got)
	}
}

func TestClean_StripsDangerousCharacters(t *testing.T) {
	got := Clean(`a<b>c"d'e;f(g)h{i}j`+"`k", 100)
	if strings.ContainsAny(got, "<>\"'`;(){}") {
		t.Errorf("expected dangerous characters stripped, got %q", got)
	}
}

func TestClean_StripsScriptProtocols(t *testing.T) {
	for _, in := range []string{
		"JavaScript:alert",
		"javascript:alert",
		"data:text/html",
		"onclick=do onload=x",
	} {
		got := strings.ToLower(Clean(in, 100))
		if strings.Contains(got, "javascript:") || strings.Contains(got, "data:") {
			t.Errorf("Clean(%q) = %q, expected protocol stripped", in, got)
		}
		if strings.Contains(got, "onclick=") || strings.Contains(got, "onload=") {
			t.Errorf("Clean(%q) = %q, expected on<word>= stripped", in, got)
		}
	}
}

func TestClean_EmptyInput(t *testing.T) {
	if got := Clean("", 100); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := Clean("   ", 100); got != "" {
		t.Errorf("expected empty string for whitespace, got %q", got)
	}
}

func TestClean_BoundNeverExceeded(t *testing.T) {
	inputs := []string{
		strings.Repeat("<b>", 100),
		strings.Repeat("x", 500),
		"  " + strings.Repeat("héllo ", 50),
	}
	for _, in := range inputs {
		got := Clean(in, 50)
		if n := len([]rune(got)); n > 50 {
			t.Errorf("Clean output %d runes, exceeds bound 50", n)
		}
	}
}

// ---------------------------------------------------------------------------
// ValidEmail
// ---------------------------------------------------------------------------

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"user.name+tag@example.com", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{strings.Repeat("a", 260) + "@b.co", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Spam
// ---------------------------------------------------------------------------

func TestSpam_Keywords(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"buy now cheap pills", true},
		{"You are a WINNER!", true},
		{"claim your prize today", true},
		{"best casino in town", true},
		{"hello, I'd like to discuss a project", false},
		{"the showinners gallery", false}, // keyword inside a word
		{"winnertakesall", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Spam(tt.text); got != tt.want {
			t.Errorf("Spam(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSpam_MultipleLinks(t *testing.T) {
	if Spam("see http://a.com for details") {
		t.Error("single link should not be spam")
	}
	if !Spam("http://a.com and https://b.com") {
		t.Error("two links should be spam")
	}
}

func TestSpam_RepeatedCharacters(t *testing.T) {
	if Spam("aaaaaaaaaa") { // 10 in a row, below threshold
		t.Error("10 repeats should not be spam")
	}
	if !Spam("aaaaaaaaaaa") { // 11 in a row
		t.Error("11 repeats should be spam")
	}
	if !Spam("wow" + strings.Repeat("!", 15)) {
		t.Error("long punctuation run should be spam")
	}
}
