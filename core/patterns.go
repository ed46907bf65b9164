package core

import "regexp"

// PIIPattern pairs a reason label with the regex that detects it in
// column values.
type PIIPattern struct {
	Label   string
	Pattern *regexp.Regexp
}

// PatternSet is the static configuration the governance evaluator scans
// with. It is injected at construction so tests and deployments can
// substitute alternate pattern tables.
type PatternSet struct {
	// NameTerms are regexes matched against lowercased column names.
	// A hit produces the reason label "name:<term>".
	NameTerms []*regexp.Regexp

	// PII are value-level patterns evaluated against a bounded sample of
	// each text column.
	PII []PIIPattern
}

// DefaultSensitiveNameTerms lists the column-name fragments that mark an
// attribute as sensitive.
var DefaultSensitiveNameTerms = []string{
	"password", "passwd", "pwd", "secret", "token", "api_key",
	"ssn", "social", "tax_id", "nin", "dob", "birth_date",
	"salary", "income", "bank_account", "credit_card", "cvv",
	"email", "phone", "address", "name", "first_name", "last_name",
}

// DefaultPatternSet compiles the stock sensitive-name and PII tables.
func DefaultPatternSet() PatternSet {
	terms := make([]*regexp.Regexp, len(DefaultSensitiveNameTerms))
	for i, t := range DefaultSensitiveNameTerms {
		terms[i] = regexp.MustCompile(t)
	}
	return PatternSet{
		NameTerms: terms,
		PII: []PIIPattern{
			{Label: "email", Pattern: regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)},
			{Label: "ssn", Pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
			{Label: "phone_us", Pattern: regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
			{Label: "credit_card", Pattern: regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`)},
			{Label: "iban", Pattern: regexp.MustCompile(`\b[A-Z]{2}\d{2}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{4}\s?\d{0,4}\b`)},
			{Label: "ip_address", Pattern: regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
		},
	}
}
