// Package validator wires custom types into Gin's binding engine.
package validator

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Register teaches the binding engine about decimal.Decimal so numeric
// tags such as gt and gte apply to money fields in request structs.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	}
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
