package signal

import "strings"

// RedactionPlaceholder replaces every value whose field name looks
// credential-like. The original value is never echoed.
const RedactionPlaceholder = "[REDACTED]"

// sensitivePatterns are matched as case-insensitive substrings of field
// names.
var sensitivePatterns = []string{
	"password",
	"passwd",
	"pwd",
	"secret",
	"token",
	"api_key",
	"apikey",
	"passphrase",
}

// ShouldRedact reports whether a field name looks credential-like and must
// never be echoed in error displays or logs.
func ShouldRedact(field string) bool {
	lower := strings.ToLower(field)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

var sanitizeReplacer = strings.NewReplacer(
	// Entity-encoded forms first so "&amp;lt;" style double encodings do not
	// survive as raw entities.
	"&lt;", "",
	"&gt;", "",
	"&amp;", "",
	"<", "",
	">", "",
	"&", "",
)

// SanitizeString strips '<', '>', '&' and their HTML-entity-encoded forms
// from user-entered values before they are re-emitted in error displays or
// logs.
func SanitizeString(s string) string {
	return sanitizeReplacer.Replace(s)
}

// SanitizeForError returns a copy of the map safe to embed in an error
// message or log line: credential-like fields are redacted, string values
// are sanitized, and nested maps are handled recursively.
func SanitizeForError(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for key, value := range data {
		if ShouldRedact(key) {
			out[key] = RedactionPlaceholder
			continue
		}
		switch v := value.(type) {
		case string:
			out[key] = SanitizeString(v)
		case map[string]any:
			out[key] = SanitizeForError(v)
		default:
			out[key] = v
		}
	}
	return out
}
