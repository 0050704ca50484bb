package redact

import "testing"

func ruleByName(t *testing.T, name string) Rule {
	t.Helper()
	for _, rule := range DefaultRules() {
		if rule.Name == name {
			return rule
		}
	}
	t.Fatalf("no default rule named %s", name)
	return Rule{}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder("EMAIL"); got != "<EMAIL_REDACTED>" {
		t.Errorf("Placeholder(EMAIL) = %q", got)
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	want := []string{RuleEmail, RuleIPv4, RuleAPIKey, RuleDBURI}
	rules := DefaultRules()

	if len(rules) != len(want) {
		t.Fatalf("got %d default rules, want %d", len(rules), len(want))
	}
	for i, name := range want {
		if rules[i].Name != name {
			t.Errorf("rule %d is %s, want %s", i, rules[i].Name, name)
		}
	}
}

func TestRuleGrammars(t *testing.T) {
	tests := []struct {
		name  string
		rule  string
		input string
		match bool
	}{
		{"plain email", RuleEmail, "jane.doe@example.com", true},
		{"email with plus and percent", RuleEmail, "dev+ci%test@mail.example.org", true},
		{"uppercase email", RuleEmail, "JANE@EXAMPLE.COM", true},
		{"single letter tld", RuleEmail, "user@example.c", false},
		{"no at sign", RuleEmail, "jane.doe.example.com", false},

		{"dotted quad", RuleIPv4, "10.0.0.1", true},
		{"out of range octets still match", RuleIPv4, "999.999.999.999", true},
		{"three groups", RuleIPv4, "v1.2.3", false},
		{"embedded in word", RuleIPv4, "x10.0.0.1", false},

		{"lowercase api_key", RuleAPIKey, "api_key=abcdefghij0123456789", true},
		{"hyphenated keyword", RuleAPIKey, "API-KEY: abcdefghij0123456789", true},
		{"mixed case secret", RuleAPIKey, `Secret = "abcdefghij0123456789xyz"`, true},
		{"token with colon", RuleAPIKey, "Token: sk-proj-1234567890abcdef1234567890abcdef", true},
		{"value too short", RuleAPIKey, "token=abcdefghij01234567", false},
		{"keyword without separator", RuleAPIKey, "token abcdefghij0123456789", false},

		{"postgres uri", RuleDBURI, "postgresql://admin:pw@localhost:5432/db", true},
		{"mysql uri", RuleDBURI, "mysql://root@db.internal/app", true},
		{"mongodb uri", RuleDBURI, "mongodb://cluster0.mongodb.net/prod", true},
		{"unsupported scheme", RuleDBURI, "redis://localhost:6379", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ruleByName(t, tt.rule)
			if got := rule.Pattern.MatchString(tt.input); got != tt.match {
				t.Errorf("%s.MatchString(%q) = %v, want %v", tt.rule, tt.input, got, tt.match)
			}
		})
	}
}
