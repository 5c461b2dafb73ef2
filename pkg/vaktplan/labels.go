package vaktplan

import "regexp"

// labelSuffix maps a trailing session token to its time window.
type labelSuffix struct {
	pattern     *regexp.Regexp
	replacement string
}

// Session A is the morning shift, session B the afternoon shift.
var labelSuffixes = []labelSuffix{
	{regexp.MustCompile(` A\b(\s*)$`), " (08.30-11.45)$1"},
	{regexp.MustCompile(` B\b(\s*)$`), " (11.45-15.00)$1"},
}

// FormatLabel rewrites a trailing " A" or " B" session token into its time
// window, e.g. "04.05 A" becomes "04.05 (08.30-11.45)". Only the first
// matching suffix is applied; other labels are returned unchanged.
func FormatLabel(label string) string {
	for _, s := range labelSuffixes {
		if s.pattern.MatchString(label) {
			return s.pattern.ReplaceAllString(label, s.replacement)
		}
	}
	return label
}
