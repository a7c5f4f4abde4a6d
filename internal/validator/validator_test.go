package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Type     string `validate:"transaction_type"`
	Category string `validate:"category"`
	Date     string `validate:"omitempty,civil_date"`
	Time     string `validate:"omitempty,clock_time"`
}

func TestRegisterWith(t *testing.T) {
	v := validator.New()
	RegisterWith(v)

	valid := sample{Type: "expense", Category: "food", Date: "2024-05-01", Time: "08:30"}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid sample, got %v", err)
	}

	if err := v.Struct(sample{Type: "expense", Category: "food"}); err != nil {
		t.Errorf("expected blank date and time to pass, got %v", err)
	}

	cases := []struct {
		name  string
		edit  func(*sample)
		field string
	}{
		{"transfer_type", func(s *sample) { s.Type = "transfer" }, "Type"},
		{"unknown_category", func(s *sample) { s.Category = "travel" }, "Category"},
		{"slash_date", func(s *sample) { s.Date = "05/01/2024" }, "Date"},
		{"impossible_date", func(s *sample) { s.Date = "2024-02-30" }, "Date"},
		{"twelve_hour_time", func(s *sample) { s.Time = "8pm" }, "Time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.edit(&s)
			err := v.Struct(s)
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs, ok := err.(validator.ValidationErrors)
			if !ok || len(errs) != 1 || errs[0].Field() != tc.field {
				t.Errorf("expected one error on %s, got %v", tc.field, err)
			}
		})
	}
}
