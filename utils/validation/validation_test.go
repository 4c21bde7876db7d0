package validation

import (
	"math"
	"testing"

	"satim-gateway/domain/constants"
	"satim-gateway/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string             `label:"order number" validate:"required,max=5"`
	Amount   float64            `label:"amount" validate:"required,finite,decimal=2,gte=50"`
	Ratio    float64            `label:"ratio" validate:"omitempty,decimal=2"`
	Link     string             `label:"return url" validate:"omitempty,url"`
	Currency constants.Currency `label:"currency" validate:"omitempty,currency"`
	Language constants.Language `label:"language" validate:"omitempty,language"`
	Note     string             `validate:"omitempty,min=3"`
}

func TestValidate(t *testing.T) {
	valid := sample{Name: "abc", Amount: 50}
	tests := []struct {
		name    string
		mutate  func(s *sample)
		wantMsg string
	}{
		{name: "valid", mutate: func(s *sample) {}},
		{name: "required", mutate: func(s *sample) { s.Name = "" }, wantMsg: "The order number field is required."},
		{name: "max characters", mutate: func(s *sample) { s.Name = "abcdef" }, wantMsg: "The order number field must not be greater than 5 characters."},
		{name: "zero amount is missing", mutate: func(s *sample) { s.Amount = 0 }, wantMsg: "The amount field is required."},
		{name: "min amount", mutate: func(s *sample) { s.Amount = 49.99 }, wantMsg: "The amount field must be at least 50."},
		{name: "decimal places", mutate: func(s *sample) { s.Amount = 100.123 }, wantMsg: "The amount field must have 2 decimal places."},
		{name: "not a number", mutate: func(s *sample) { s.Amount = math.NaN() }, wantMsg: "The amount field must be a number."},
		{name: "infinite", mutate: func(s *sample) { s.Amount = math.Inf(-1) }, wantMsg: "The amount field must be a number."},
		{name: "decimal rejects infinity on its own", mutate: func(s *sample) { s.Ratio = math.Inf(1) }, wantMsg: "The ratio field must have 2 decimal places."},
		{name: "url", mutate: func(s *sample) { s.Link = "not-a-valid-url" }, wantMsg: "The return url field must be a valid URL."},
		{name: "currency", mutate: func(s *sample) { s.Currency = "978" }, wantMsg: "The selected currency is invalid."},
		{name: "language", mutate: func(s *sample) { s.Language = "de" }, wantMsg: "The selected language is invalid."},
		{name: "field name without label", mutate: func(s *sample) { s.Note = "ab" }, wantMsg: "The Note field must be at least 3 characters."},
		{name: "first failing field wins", mutate: func(s *sample) { s.Name = ""; s.Amount = 1 }, wantMsg: "The order number field is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := Validate(s)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
