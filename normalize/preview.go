package normalize

import (
	"strings"
)

// DefaultPreviewLength is the rune budget for listing-card previews.
const DefaultPreviewLength = 500

// markupStripper drops the structural Markdown symbols (headings, emphasis,
// code, quotes, lists, link brackets) so the preview reads as plain prose.
var markupStripper = strings.NewReplacer(
	"#", "", "_", "", "*", "", "`", "", ">", "", "-", "", "[", "", "]", "",
)

// Preview flattens a normalized article into a single line of at most
// maxLength runes, appending an ellipsis when truncated. Truncation counts
// runes, never splitting inside a multi-byte character. Symbol-only or empty
// input yields an empty string.
func Preview(normalized string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultPreviewLength
	}
	cleaned := markupStripper.Replace(normalized)
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	runes := []rune(cleaned)
	if len(runes) <= maxLength {
		return cleaned
	}
	return string(runes[:maxLength]) + "…"
}
