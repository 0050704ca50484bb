package redact

import "regexp"

// Rule locates one category of sensitive text and names its replacement.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Config controls which detection rules a Redactor runs.
type Config struct {
	// Enabled turns redaction off entirely when false; Process then
	// passes text through unchanged.
	Enabled bool
	// Detectors lists rule names to enable, or "all".
	Detectors []string
	// Rules are custom rules appended after the built-ins, in order.
	Rules []CustomRule
}

// CustomRule is a user-supplied detection rule. Pattern is a regular
// expression, compiled at Redactor construction; an empty Replacement
// defaults to <NAME_REDACTED>.
type CustomRule struct {
	Name        string
	Pattern     string
	Replacement string
}

// Finding summarizes the matches of a single rule. It carries counts
// only, never the matched text.
type Finding struct {
	RuleName    string `json:"ruleName"`
	Replacement string `json:"replacement"`
	Count       int    `json:"count"`
}

// Result is the outcome of one redaction pass over an input.
type Result struct {
	RedactedText string    `json:"redactedText"`
	Findings     []Finding `json:"findings"`
	Original     string    `json:"-"` // Never serialize original text
}
