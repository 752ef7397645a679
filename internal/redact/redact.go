// Package redact scrubs sensitive material from strings before they are
// logged. Configuration errors in particular tend to carry credential file
// paths and service identifiers; this package keeps them out of log sinks.
package redact

import "regexp"

// Redaction placeholders.
const (
	Placeholder           = "[REDACTED]"
	PathPlaceholder       = "[REDACTED_PATH]"
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	KeyPlaceholder        = "[REDACTED_KEY]"
)

// Precompiled patterns, applied in order.
var (
	// Connection strings with embedded credentials.
	connStringRegex = regexp.MustCompile(`(?i)(postgres|mysql|mongodb|firestore|db|database)://[^@\s]+@`)

	// Password-style assignments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// API keys, tokens, and secrets.
	apiKeyRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret|credential)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Filesystem paths, the usual carrier of credential file locations.
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`)
)

var patterns = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	{connStringRegex, CredentialPlaceholder},
	{passwordRegex, CredentialPlaceholder},
	{apiKeyRegex, KeyPlaceholder},
	{unixPathRegex, PathPlaceholder},
	{winPathRegex, PathPlaceholder},
}

// String redacts credential and path material from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts an error's text; nil yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
