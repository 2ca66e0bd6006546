// Package redact strips credentials and other sensitive fragments from
// strings before they are logged or returned in error responses.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order. Connection strings and tokens go before paths
// so that URL bodies are not half-replaced.
var rules = []rule{
	{regexp.MustCompile(`(?i)\b(postgres(?:ql)?|redis|rediss)://[^@\s]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/]+=*`), "Bearer " + RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)(['"]?\s*[=:]\s*['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\b[\s\w,*()$]+\b(FROM|INTO|SET|TABLE)\b[^;]*`), RedactedSQLPlaceholder},
	{regexp.MustCompile(`(?:^|\s)(/[\w.-]+){2,}\.go(?::\d+)?`), " " + RedactedPathPlaceholder},
}

// String redacts sensitive information from input.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
