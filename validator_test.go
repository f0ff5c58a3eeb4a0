package editorui

import "testing"

func TestRangeValidator(t *testing.T) {
	v := NewRangeValidator(0, 10)
	tests := []struct {
		name  string
		value PropertyValue
		valid bool
	}{
		{"int inside", IntValue(5), true},
		{"float at max", FloatValue(10), true},
		{"below", IntValue(-1), false},
		{"above", FloatValue(10.5), false},
		{"not a number", StringValue("5"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.value)
			if res.Valid != tt.valid {
				t.Errorf("Expected valid=%v, got %+v", tt.valid, res)
			}
			if !res.Valid && res.Message == "" {
				t.Error("Expected a message for a failure")
			}
		})
	}
}

func TestLengthValidator(t *testing.T) {
	v := NewLengthValidator(2, 4)
	if !v.Validate(StringValue("héé")).Valid {
		t.Error("Expected 3 characters to pass")
	}
	if v.Validate(StringValue("a")).Valid || v.Validate(StringValue("abcde")).Valid {
		t.Error("Expected out-of-range lengths to fail")
	}
	if !NewLengthValidator(0, 0).Validate(StringValue("any length at all")).Valid {
		t.Error("Expected Max 0 to be unbounded")
	}
	if v.Validate(IntValue(3)).Valid {
		t.Error("Expected non-strings to fail")
	}
}

func TestRegexValidator(t *testing.T) {
	v, err := NewRegexValidator(`^[a-z_]+$`, "")
	if err != nil {
		t.Fatalf("Expected pattern to compile: %v", err)
	}
	if !v.Validate(StringValue("main_camera")).Valid {
		t.Error("Expected match to pass")
	}
	res := v.Validate(StringValue("Main Camera"))
	if res.Valid || res.Message != "must match ^[a-z_]+$" {
		t.Errorf("Expected default message, got %+v", res)
	}
	if _, err := NewRegexValidator(`(`, ""); err == nil {
		t.Error("Expected an invalid pattern to fail")
	}
}

func TestCompositeValidator(t *testing.T) {
	calls := 0
	counting := ValidatorFunc(func(PropertyValue) ValidationResult {
		calls++
		return Valid
	})
	c := NewCompositeValidator(NewRangeValidator(0, 1), nil, counting)
	if c.Len() != 2 {
		t.Errorf("Expected nil validators to be skipped, got %d", c.Len())
	}

	if res := c.Validate(FloatValue(2)); res.Valid || calls != 0 {
		t.Errorf("Expected first failure to short-circuit, got %+v after %d calls", res, calls)
	}
	if res := c.Validate(FloatValue(0.5)); !res.Valid || calls != 1 {
		t.Errorf("Expected all validators to run, got %+v after %d calls", res, calls)
	}
	c.Add(ValidatorFunc(func(PropertyValue) ValidationResult { return Invalid("nope %d", 1) }))
	if res := c.Validate(FloatValue(0.5)); res.Message != "nope 1" {
		t.Errorf("Expected formatted message, got %q", res.Message)
	}
}
