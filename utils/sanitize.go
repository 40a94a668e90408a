package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips unsafe HTML from user-supplied text. Chat messages and
// display names pass through here before they are stored.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
