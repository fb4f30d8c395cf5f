package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"single color", "\x1b[31mred\x1b[0m", "red"},
		{"nested styles", "\x1b[1m\x1b[38;5;245mbold gray\x1b[0m", "bold gray"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	if got := VisibleLength("\x1b[31mabc\x1b[0m"); got != 3 {
		t.Errorf("VisibleLength() = %d, want 3", got)
	}
	if got := VisibleLength("héllo"); got != 5 {
		t.Errorf("VisibleLength() = %d, want 5", got)
	}
}

func TestTruncateText(t *testing.T) {
	cfg := TextConfig{Ellipsis: "..."}

	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"max smaller than ellipsis", "hello", 2, "he"},
		{"zero max", "hello", 0, ""},
		{"unicode title", "über café reads", 9, "über c..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text, tt.maxLen, cfg); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateWithPrefixSuffix(t *testing.T) {
	cfg := TextConfig{Ellipsis: "..."}

	// Prefix and suffix survive, the middle is cut down.
	got := TruncateWithPrefixSuffix("a very long folder name", "▸ ", " (3)", 16, cfg)
	if got != "▸ a very ... (3)" {
		t.Errorf("TruncateWithPrefixSuffix() = %q, want %q", got, "▸ a very ... (3)")
	}

	got = TruncateWithPrefixSuffix("short", "▸ ", "", 16, cfg)
	if got != "▸ short" {
		t.Errorf("TruncateWithPrefixSuffix() = %q, want %q", got, "▸ short")
	}
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := TextConfig{Ellipsis: "..."}

	// Untruncated styled text passes through unchanged.
	styled := "\x1b[31mred\x1b[0m"
	if got := TruncateANSIAware(styled, 10, cfg); got != styled {
		t.Errorf("TruncateANSIAware() = %q, want unchanged", got)
	}

	// Escape sequences do not count as visible cells.
	long := "\x1b[31mabcdefghij\x1b[0m"
	got := TruncateANSIAware(long, 8, cfg)
	if VisibleLength(got) != 8 {
		t.Errorf("visible length = %d, want 8", VisibleLength(got))
	}
	if StripANSI(got) != "abcde..." {
		t.Errorf("StripANSI() = %q, want %q", StripANSI(got), "abcde...")
	}
}
