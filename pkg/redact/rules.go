package redact

import "regexp"

// Built-in rule names.
const (
	RuleEmail  = "EMAIL"
	RuleIPv4   = "IPV4"
	RuleAPIKey = "API_KEY"
	RuleDBURI  = "DB_URI"
)

// Placeholder returns the replacement token for a rule label.
func Placeholder(label string) string {
	return "<" + label + "_REDACTED>"
}

// DefaultRules returns the built-in detection rules in application
// order. Order is significant: a later rule scans text already
// rewritten by an earlier one. Default placeholders contain only
// uppercase letters, underscores, and angle brackets, so no built-in
// rule can match inside one.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        RuleEmail,
			Pattern:     regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
			Replacement: Placeholder(RuleEmail),
		},
		{
			// Digits-only octets, no range validation. 999.999.999.999
			// matches on purpose.
			Name:        RuleIPv4,
			Pattern:     regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
			Replacement: Placeholder(RuleIPv4),
		},
		{
			// Case-insensitive on the keyword only. The whole
			// keyword+separator+value span is replaced, not just the value.
			Name:        RuleAPIKey,
			Pattern:     regexp.MustCompile(`(?i:api[-_]?key|secret|token)\s*[:=]\s*['"]?[a-zA-Z0-9_\-]{20,}['"]?`),
			Replacement: Placeholder(RuleAPIKey),
		},
		{
			Name:        RuleDBURI,
			Pattern:     regexp.MustCompile(`(?:postgresql|mysql|mongodb)://\S+`),
			Replacement: Placeholder(RuleDBURI),
		},
	}
}
