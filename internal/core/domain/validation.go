package domain

import (
	"regexp"
	"strings"
)

// Violation is one broken rule on one field, shaped for direct mapping onto
// per-field form errors or a JSON error body.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"ruleCode"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one pass. Rules never
// short-circuit: a client sees all problems in a single response.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Rule pairs a predicate with the violation to report when it fails.
type Rule struct {
	Field   string
	Code    string
	Message string
	Valid   func() bool
}

// Validate runs every rule and accumulates all failures. Returns nil when
// everything passes.
func Validate(rules ...Rule) error {
	var violations []Violation
	for _, r := range rules {
		if !r.Valid() {
			violations = append(violations, Violation{Field: r.Field, Rule: r.Code, Message: r.Message})
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

var accountNumberPattern = regexp.MustCompile(`^[0-9]{9}$`)

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func accountRules(number, name string) []Rule {
	return []Rule{
		{Field: "number", Code: "notBlank", Message: "number must not be blank", Valid: func() bool { return notBlank(number) }},
		{Field: "number", Code: "pattern", Message: `"` + number + `" must be a 9 digit number`, Valid: func() bool { return accountNumberPattern.MatchString(number) }},
		{Field: "name", Code: "notBlank", Message: "name must not be blank", Valid: func() bool { return notBlank(name) }},
		{Field: "name", Code: "maxLength", Message: "name must be at most 50 characters", Valid: func() bool { return len(name) <= 50 }},
	}
}

func validateAccountForCreate(number, name string) error {
	return Validate(accountRules(number, name)...)
}

func validateAccountForUpdate(id *ID, number, name string) error {
	rules := append([]Rule{
		{Field: "id", Code: "required", Message: "id is required for updates", Valid: func() bool { return id != nil }},
	}, accountRules(number, name)...)
	return Validate(rules...)
}
