package discover

import (
	"math"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/gpu-tools/gpuinfo/capability"
)

// limitsFromStruct reads every unsigned integer field of a limits struct in
// declaration order. Field names are converted to WebGPU spelling, e.g.
// MaxTextureDimension2D becomes maxTextureDimension2D. All-ones values are
// the driver's way of leaving a limit undefined.
func limitsFromStruct(v any) []capability.Limit {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var limits []capability.Limit
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		var value uint64
		var undefined bool
		switch fv.Kind() {
		case reflect.Uint32:
			value = fv.Uint()
			undefined = value == math.MaxUint32
		case reflect.Uint64:
			value = fv.Uint()
			undefined = value == math.MaxUint64
		default:
			continue
		}
		limits = append(limits, capability.Limit{
			Name:      lowerFirst(field.Name),
			Value:     value,
			Undefined: undefined,
		})
	}
	return limits
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
