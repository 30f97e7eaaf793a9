package validate_test

import (
	"testing"

	"github.com/ardanlabs/gyatcoin/business/sys/validate"
)

type model struct {
	Name    string   `json:"name" validate:"required"`
	Traders []string `json:"traders" validate:"required,min=1,dive,required"`
}

func Test_Check(t *testing.T) {
	type table struct {
		name   string
		value  model
		fields []string
	}

	tt := []table{
		{name: "valid", value: model{Name: "bill", Traders: []string{"Bob"}}},
		{name: "name", value: model{Traders: []string{"Bob"}}, fields: []string{"name"}},
		{name: "traders", value: model{Name: "bill"}, fields: []string{"traders"}},
		{name: "trader", value: model{Name: "bill", Traders: []string{"Bob", ""}}, fields: []string{"traders[1]"}},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			err := validate.Check(tst.value)

			if len(tst.fields) == 0 {
				if err != nil {
					t.Fatalf("Should be able to validate the model: %s", err)
				}
				return
			}

			if !validate.IsFieldErrors(err) {
				t.Fatalf("Should get back field errors: %v", err)
			}

			fields := validate.GetFieldErrors(err).Fields()
			for _, fld := range tst.fields {
				if _, exists := fields[fld]; !exists {
					t.Logf("got: %v", fields)
					t.Logf("exp: %s", fld)
					t.Fatalf("Should get an error for the field.")
				}
			}
		}

		t.Run(tst.name, f)
	}
}
