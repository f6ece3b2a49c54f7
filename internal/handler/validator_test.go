package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Quality(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		quality string
		wantErr bool
	}{
		{"empty allowed", "", false},
		{"catalog name", "epic", false},
		{"display name", "Wow Token", false},
		{"padded and mixed case", "  RARE ", false},
		{"unknown", "mythic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(templatePriceQuery{Quality: tt.quality})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "Unknown item quality", FormatValidationError(err)["quality"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ItemLevelBounds(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(templatePriceQuery{ItemLevel: 0}), "zero means template default")
	assert.NoError(t, v.ValidateStruct(templatePriceQuery{ItemLevel: 1300}))

	err := v.ValidateStruct(templatePriceQuery{ItemLevel: 1301})
	assert.Equal(t, map[string]string{"itemlevel": "Must be at most 1300"}, FormatValidationError(err))
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
