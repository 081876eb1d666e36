package csproj

import "strings"

// ResolvePlaceholder replaces every occurrence of Placeholder in raw with
// previous. The result is not scanned again.
func ResolvePlaceholder(raw, previous string) string {
	return strings.ReplaceAll(raw, Placeholder, previous)
}
