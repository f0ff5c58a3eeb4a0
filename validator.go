package editorui

import (
	"fmt"
	"regexp"
)

// ValidationResult is the outcome of validating a value.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Valid is the passing ValidationResult.
var Valid = ValidationResult{Valid: true}

// Invalid returns a failing result with a formatted message.
func Invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Message: fmt.Sprintf(format, args...)}
}

// Validator checks a property value before it is written.
type Validator interface {
	Validate(v PropertyValue) ValidationResult
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(PropertyValue) ValidationResult

// Validate calls f(v).
func (f ValidatorFunc) Validate(v PropertyValue) ValidationResult { return f(v) }

// RangeValidator accepts int and float values within [Min, Max].
type RangeValidator struct {
	Min, Max float64
}

// NewRangeValidator creates a RangeValidator.
func NewRangeValidator(min, max float64) *RangeValidator {
	return &RangeValidator{Min: min, Max: max}
}

// Validate implements Validator.
func (r *RangeValidator) Validate(v PropertyValue) ValidationResult {
	n, ok := v.Number()
	if !ok {
		return Invalid("expected a number, got %s", v.Kind())
	}
	if n < r.Min || n > r.Max {
		return Invalid("value %g must be between %g and %g", n, r.Min, r.Max)
	}
	return Valid
}

// LengthValidator accepts strings whose length in user-perceived characters
// is within [Min, Max]. Max <= 0 means unbounded.
type LengthValidator struct {
	Min, Max int
}

// NewLengthValidator creates a LengthValidator.
func NewLengthValidator(min, max int) *LengthValidator {
	return &LengthValidator{Min: min, Max: max}
}

// Validate implements Validator.
func (l *LengthValidator) Validate(v PropertyValue) ValidationResult {
	s, ok := v.Str()
	if !ok {
		return Invalid("expected a string, got %s", v.Kind())
	}
	n := graphemeCount(s)
	if n < l.Min {
		return Invalid("must be at least %d characters", l.Min)
	}
	if l.Max > 0 && n > l.Max {
		return Invalid("must be at most %d characters", l.Max)
	}
	return Valid
}

// RegexValidator accepts strings matching a pattern.
type RegexValidator struct {
	re      *regexp.Regexp
	message string
}

// NewRegexValidator compiles pattern. message is reported on mismatch; if
// empty a default naming the pattern is used.
func NewRegexValidator(pattern, message string) (*RegexValidator, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling validator pattern %q: %w", pattern, err)
	}
	if message == "" {
		message = fmt.Sprintf("must match %s", pattern)
	}
	return &RegexValidator{re: re, message: message}, nil
}

// Validate implements Validator.
func (r *RegexValidator) Validate(v PropertyValue) ValidationResult {
	s, ok := v.Str()
	if !ok {
		return Invalid("expected a string, got %s", v.Kind())
	}
	if !r.re.MatchString(s) {
		return ValidationResult{Message: r.message}
	}
	return Valid
}

// CompositeValidator runs validators in order and reports the first failure.
type CompositeValidator struct {
	validators []Validator
}

// NewCompositeValidator combines validators. Nil entries are ignored.
func NewCompositeValidator(validators ...Validator) *CompositeValidator {
	c := &CompositeValidator{}
	for _, v := range validators {
		c.Add(v)
	}
	return c
}

// Add appends a validator.
func (c *CompositeValidator) Add(v Validator) {
	if v != nil {
		c.validators = append(c.validators, v)
	}
}

// Len returns the number of combined validators.
func (c *CompositeValidator) Len() int { return len(c.validators) }

// Validate implements Validator.
func (c *CompositeValidator) Validate(v PropertyValue) ValidationResult {
	for _, val := range c.validators {
		if res := val.Validate(v); !res.Valid {
			return res
		}
	}
	return Valid
}
