package redact

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

// Apply runs rules over text in order and returns the rewritten text.
// It is a pure function: no state, no I/O, no logging, and it never
// fails. Text with no matches comes back unchanged.
func Apply(text string, rules []Rule) string {
	redacted := text
	for _, rule := range rules {
		redacted = rule.Pattern.ReplaceAllLiteralString(redacted, rule.Replacement)
	}
	return redacted
}

// Redact applies the built-in rules to text.
func Redact(text string) string {
	return Apply(text, DefaultRules())
}

// Redactor applies a configured rule set and reports findings
type Redactor struct {
	rules   []Rule
	enabled map[string]bool
	logger  *zap.Logger
	config  Config
}

// New creates a redactor from configuration: built-in rules first, then
// any custom rules, with the configured detector set enabled. Invalid
// custom patterns and unknown detector names fail here, never during
// redaction.
func New(cfg Config, log *zap.Logger) (*Redactor, error) {
	rules := DefaultRules()

	custom, err := compileCustomRules(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile custom rules: %w", err)
	}
	rules = append(rules, custom...)

	redactor := &Redactor{
		rules:   rules,
		enabled: make(map[string]bool),
		logger:  log,
		config:  cfg,
	}

	if err := redactor.configureDetectors(cfg.Detectors); err != nil {
		return nil, fmt.Errorf("failed to configure detectors: %w", err)
	}

	log.Info("Redactor initialized",
		zap.Int("total_rules", len(redactor.rules)),
		zap.Int("enabled_rules", redactor.countEnabledRules()),
	)

	return redactor, nil
}

// compileCustomRules turns user-supplied rule entries into compiled
// rules. Names must be non-empty and unique across built-ins and other
// custom rules.
func compileCustomRules(entries []CustomRule) ([]Rule, error) {
	names := make(map[string]bool)
	for _, rule := range DefaultRules() {
		names[rule.Name] = true
	}

	rules := make([]Rule, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("custom rule has empty name")
		}
		if names[entry.Name] {
			return nil, fmt.Errorf("duplicate rule name: %s", entry.Name)
		}

		pattern, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for rule %s: %w", entry.Name, err)
		}

		replacement := entry.Replacement
		if replacement == "" {
			replacement = Placeholder(entry.Name)
		}

		names[entry.Name] = true
		rules = append(rules, Rule{
			Name:        entry.Name,
			Pattern:     pattern,
			Replacement: replacement,
		})
	}

	return rules, nil
}

// configureDetectors enables/disables rules based on configuration
func (r *Redactor) configureDetectors(detectors []string) error {
	// Disable all rules by default
	for _, rule := range r.rules {
		r.enabled[rule.Name] = false
	}

	// Enable specified detectors
	for _, detector := range detectors {
		if detector == "all" {
			for _, rule := range r.rules {
				r.enabled[rule.Name] = true
			}
			continue
		}

		found := false
		for _, rule := range r.rules {
			if rule.Name == detector {
				r.enabled[rule.Name] = true
				found = true
				break
			}
		}

		if !found {
			return fmt.Errorf("unknown detector: %s", detector)
		}
	}

	return nil
}

// Process runs every enabled rule over text, in order. Findings report
// rule names and match counts only; matched values are never logged or
// recorded.
func (r *Redactor) Process(text string) Result {
	if !r.config.Enabled {
		return Result{
			RedactedText: text,
			Findings:     []Finding{},
			Original:     text,
		}
	}

	redacted := text
	findings := make([]Finding, 0)

	for _, rule := range r.rules {
		if !r.enabled[rule.Name] {
			continue
		}

		matches := rule.Pattern.FindAllStringIndex(redacted, -1)
		if len(matches) == 0 {
			continue
		}

		findings = append(findings, Finding{
			RuleName:    rule.Name,
			Replacement: rule.Replacement,
			Count:       len(matches),
		})

		redacted = rule.Pattern.ReplaceAllLiteralString(redacted, rule.Replacement)

		r.logger.Debug("Sensitive data redacted",
			zap.String("rule", rule.Name),
			zap.Int("count", len(matches)),
		)
	}

	return Result{
		RedactedText: redacted,
		Findings:     findings,
		Original:     text,
	}
}

// Rules returns the configured rules in application order.
func (r *Redactor) Rules() []Rule {
	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

// countEnabledRules returns the number of enabled rules
func (r *Redactor) countEnabledRules() int {
	count := 0
	for _, enabled := range r.enabled {
		if enabled {
			count++
		}
	}
	return count
}

// EnabledRules returns the names of enabled rules.
func (r *Redactor) EnabledRules() []string {
	var enabled []string
	for ruleName, isEnabled := range r.enabled {
		if isEnabled {
			enabled = append(enabled, ruleName)
		}
	}
	return enabled
}

// EnableRule enables a specific rule. Enable/disable calls belong to
// the configuration phase; a redactor is safe for concurrent Process
// calls only once toggling is done.
func (r *Redactor) EnableRule(ruleName string) error {
	for _, rule := range r.rules {
		if rule.Name == ruleName {
			r.enabled[ruleName] = true
			r.logger.Info("Rule enabled", zap.String("rule", ruleName))
			return nil
		}
	}
	return fmt.Errorf("unknown rule: %s", ruleName)
}

// DisableRule disables a specific rule.
func (r *Redactor) DisableRule(ruleName string) error {
	if _, exists := r.enabled[ruleName]; !exists {
		return fmt.Errorf("unknown rule: %s", ruleName)
	}

	r.enabled[ruleName] = false
	r.logger.Info("Rule disabled", zap.String("rule", ruleName))
	return nil
}
