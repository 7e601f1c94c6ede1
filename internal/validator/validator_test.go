package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"hex_color":        validateHexColor,
		"transaction_type": validateTransactionType,
		"granularity":      validateGranularity,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("failed to register %s: %v", tag, err)
		}
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"short_hex", "#FFF", "hex_color", true},
		{"long_hex", "#e57373", "hex_color", true},
		{"hex_without_hash", "E57373", "hex_color", false},
		{"hex_bad_digit", "#GGGGGG", "hex_color", false},
		{"income", "income", "transaction_type", true},
		{"expense", "expense", "transaction_type", true},
		{"transfer", "transfer", "transaction_type", false},
		{"month", "MONTH", "granularity", true},
		{"lower_week", "week", "granularity", true},
		{"quarter", "QUARTER", "granularity", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid && err != nil {
				t.Errorf("expected %q to pass %s, got %v", tt.value, tt.tag, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to fail %s", tt.value, tt.tag)
			}
		})
	}
}
