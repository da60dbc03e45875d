package normalize

import (
	"regexp"
	"time"
)

// AuthorName is substituted for the [Author Name] placeholder the generation
// model leaves in its byline.
const AuthorName = "PaceFlow"

var (
	authorToken = regexp.MustCompile(`(?i)\[author name\]`)
	dateToken   = regexp.MustCompile(`(?i)\[date\]`)
)

// Inject replaces every [Author Name] and [Date] placeholder token with the
// fixed author identity and today's date in YYYY-MM-DD form. Matching is
// case-insensitive; all other content passes through unchanged.
func Inject(content string) string {
	return injectAt(content, time.Now())
}

func injectAt(content string, today time.Time) string {
	out := authorToken.ReplaceAllString(content, AuthorName)
	return dateToken.ReplaceAllString(out, today.Format("2006-01-02"))
}
