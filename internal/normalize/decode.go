package normalize

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// millisHook decodes millisecond numbers into time.Time (UTC) and
// time.Duration fields.
func millisHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if !isNumber(from.Kind()) {
		return data, nil
	}
	switch to {
	case timeType:
		return time.UnixMilli(int64(Float(data))).UTC(), nil
	case durationType:
		return time.Duration(Float(data) * float64(time.Millisecond)), nil
	}
	return data, nil
}

// Decode fills the struct pointed to by out from a normalized map, matching
// mapstructure tags. Fields that cannot be decoded keep their zero value;
// the returned error lists them but out is always populated as far as
// possible.
func Decode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       millisHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	return nil
}
