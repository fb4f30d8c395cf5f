package layout

import (
	"regexp"
	"strings"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string, excluding
// ANSI escape sequences.
func VisibleLength(s string) int {
	return len([]rune(StripANSI(s)))
}

// TruncateText truncates text to maxLen runes, adding the configured
// ellipsis when the text is cut.
func TruncateText(text string, maxLen int, cfg TextConfig) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	ellipsisLen := len([]rune(cfg.Ellipsis))
	if maxLen <= ellipsisLen {
		if maxLen <= 0 {
			return ""
		}
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-ellipsisLen]) + cfg.Ellipsis
}

// TruncateWithPrefixSuffix truncates text so that prefix+text+suffix
// fits within maxLen. The prefix and suffix are always preserved.
func TruncateWithPrefixSuffix(text, prefix, suffix string, maxLen int, cfg TextConfig) string {
	decorLen := len([]rune(prefix)) + len([]rune(suffix))
	return prefix + TruncateText(text, maxLen-decorLen, cfg) + suffix
}

// TruncateANSIAware truncates styled text to maxVisible visible cells
// while keeping ANSI escape sequences intact. A reset sequence is
// appended when the text is cut so styling never bleeds past the cut.
func TruncateANSIAware(text string, maxVisible int, cfg TextConfig) string {
	if VisibleLength(text) <= maxVisible {
		return text
	}

	ellipsisLen := len([]rune(cfg.Ellipsis))
	keep := maxVisible - ellipsisLen
	if keep < 0 {
		keep = 0
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	for _, r := range text {
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			b.WriteRune(r)
			inEscape = true
			continue
		}
		if visible >= keep {
			break
		}
		b.WriteRune(r)
		visible++
	}

	b.WriteString("\x1b[0m")
	b.WriteString(cfg.Ellipsis)
	return b.String()
}
