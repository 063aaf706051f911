package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Common errors
var (
	// ErrSchemaType is returned by the adapter when the opaque schema is not a *Rules.
	ErrSchemaType = errors.New("schema must be a *schema.Rules")

	// ErrValueType is returned by the adapter when the value cannot be checked
	// against the rule document.
	ErrValueType = errors.New("value type is not supported by the rule document")
)

// Rules is a declarative rule document for one field, usually parsed from
// YAML. All constraints are optional; absent constraints pass. Message, when
// set, overrides the built-in text for every failure of this document.
type Rules struct {
	Required bool     `yaml:"required"`
	MinLen   *int     `yaml:"min_len"`
	MaxLen   *int     `yaml:"max_len"`
	Pattern  string   `yaml:"pattern"`
	OneOf    []string `yaml:"one_of"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
	Message  string   `yaml:"message"`

	re *regexp.Regexp
}

// Parse decodes a single rule document and compiles its pattern.
func Parse(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse rule document: %w", err)
	}
	if err := r.compile(); err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseSet decodes a document mapping field names to rule documents.
func ParseSet(data []byte) (map[string]*Rules, error) {
	var set map[string]*Rules
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse rule set: %w", err)
	}
	for name, r := range set {
		if r == nil {
			set[name] = &Rules{}
			continue
		}
		if err := r.compile(); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
	}
	return set, nil
}

func (r *Rules) compile() error {
	if r.Pattern == "" {
		return nil
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", r.Pattern, err)
	}
	r.re = re
	return nil
}

// check evaluates the document against a string value. Constraints run in
// declaration order and the first failure wins.
func (r *Rules) check(value string) string {
	if r.Required && strings.TrimSpace(value) == "" {
		return r.message("field is required")
	}
	if r.MinLen != nil && len(value) < *r.MinLen {
		return r.message(fmt.Sprintf("must be at least %d characters long", *r.MinLen))
	}
	if r.MaxLen != nil && len(value) > *r.MaxLen {
		return r.message(fmt.Sprintf("must be at most %d characters long", *r.MaxLen))
	}
	if r.re != nil && !r.re.MatchString(value) {
		return r.message(fmt.Sprintf("must match pattern %s", r.Pattern))
	}
	if len(r.OneOf) > 0 {
		found := false
		for _, allowed := range r.OneOf {
			if value == allowed {
				found = true
				break
			}
		}
		if !found {
			return r.message(fmt.Sprintf("must be one of: %v", r.OneOf))
		}
	}
	return ""
}

// checkNumber evaluates the numeric bounds against a number.
func (r *Rules) checkNumber(value float64) string {
	if r.Min != nil && value < *r.Min {
		return r.message(fmt.Sprintf("must be at least %v", *r.Min))
	}
	if r.Max != nil && value > *r.Max {
		return r.message(fmt.Sprintf("must be at most %v", *r.Max))
	}
	return ""
}

func (r *Rules) message(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}
