package sanitizer

import "regexp"

// Pre-compiled regular expressions for the input filters
var (
	nonDigitRegex    = regexp.MustCompile(`[^0-9]`)
	nonNameCharRegex = regexp.MustCompile(`[^A-Za-z\p{Zs}\t\n\v\f\r]`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)
