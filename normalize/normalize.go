package normalize

import (
	"strings"
)

// Line-anchored noise emitted by the generation pipeline's own UI text that
// occasionally leaks into article bodies.
const (
	noiseLinePrefix = "generated"
	noiseLineLabel  = "hide"
)

// Normalize cleans a raw generated article before it is previewed, displayed,
// exported, or summarized. Steps run in a fixed order: whole-document trim,
// preamble removal, noise-line stripping, duplicate top-level heading removal,
// blank-line collapsing, and finally placeholder injection. Deduplication must
// run after preamble removal and before blank-line collapsing.
func Normalize(raw string) string {
	doc := strings.TrimSpace(raw)
	doc = dropPreamble(doc)
	doc = stripNoiseLines(doc)
	doc = dedupeTopHeadings(doc)
	doc = collapseBlankLines(doc)
	return Inject(doc)
}

// isTopHeading reports whether a line is a top-level Markdown heading:
// a single # followed by a space.
func isTopHeading(line string) bool {
	return strings.HasPrefix(line, "# ")
}

// dropPreamble removes everything before the first top-level heading. A
// document with no top-level heading passes through unmodified.
func dropPreamble(doc string) string {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if isTopHeading(strings.TrimSpace(line)) {
			return strings.Join(lines[i:], "\n")
		}
	}
	return doc
}

func stripNoiseLines(doc string) string {
	lines := strings.Split(doc, "\n")
	kept := lines[:0]
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(lower, noiseLinePrefix) {
			continue
		}
		if lower == noiseLineLabel {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// dedupeTopHeadings keeps the first occurrence of each top-level heading line
// and drops later exact duplicates. Comparison is exact trimmed-line text;
// near-duplicate headings differing in case or punctuation are left alone.
func dedupeTopHeadings(doc string) string {
	lines := strings.Split(doc, "\n")
	seen := make(map[string]bool)
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if isTopHeading(trimmed) {
			if seen[trimmed] {
				continue
			}
			seen[trimmed] = true
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// collapseBlankLines reduces every run of three or more consecutive blank
// lines to exactly one blank line. Shorter runs pass through byte-for-byte,
// including any whitespace the blank lines carry.
func collapseBlankLines(doc string) string {
	lines := strings.Split(doc, "\n")
	var out []string
	var run []string
	flush := func() {
		if len(run) >= 3 {
			out = append(out, "")
		} else {
			out = append(out, run...)
		}
		run = run[:0]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			run = append(run, line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()
	return strings.Join(out, "\n")
}
