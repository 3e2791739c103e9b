// Package serializer converts domain records into JSON-safe maps.
//
// Arbitrary-precision values (decimal.Decimal, big.Int, valueobject.BigInt)
// are emitted as decimal strings so that no client ever parses them into a
// float. Integer fields tagged `json:",string"` and plain integers outside
// the float64-exact range are also emitted as strings.
package serializer

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopadmin/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// maxSafeInteger is the largest integer a float64 represents exactly (2^53-1)
const maxSafeInteger = 1<<53 - 1

const maxDepth = 32

// ErrUnsupportedType is returned for values that have no JSON representation
var ErrUnsupportedType = errors.New("serializer: unsupported type")

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	bigIntValueType = reflect.TypeOf(valueobject.BigInt{})
	bigIntType      = reflect.TypeOf(big.Int{})
	bigFloatType    = reflect.TypeOf(big.Float{})
	timeType        = reflect.TypeOf(time.Time{})
	uuidType        = reflect.TypeOf(uuid.UUID{})
	rawMessageType  = reflect.TypeOf(json.RawMessage{})
	marshalerType   = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

type options struct {
	omit map[string]struct{}
}

// Option configures a serialization
type Option func(*options)

// Omit removes the named top-level fields from the output
func Omit(fields ...string) Option {
	return func(o *options) {
		if o.omit == nil {
			o.omit = make(map[string]struct{}, len(fields))
		}
		for _, f := range fields {
			o.omit[f] = struct{}{}
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Record converts a struct (or pointer to struct, or string-keyed map) into a
// map keyed by JSON field name.
func Record(v any, opts ...Option) (map[string]any, error) {
	return record(reflect.ValueOf(v), buildOptions(opts))
}

// Records converts a slice of records. A nil or empty input yields an empty,
// non-nil slice so it encodes as [] rather than null.
func Records[T any](items []T, opts ...Option) ([]map[string]any, error) {
	o := buildOptions(opts)
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		m, err := record(reflect.ValueOf(&items[i]), o)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Value converts an arbitrary value with the same rules Record applies to fields
func Value(v any) (any, error) {
	return convert(reflect.ValueOf(v), false, 0)
}

func record(rv reflect.Value, o *options) (map[string]any, error) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil record", ErrUnsupportedType)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil record", ErrUnsupportedType)
	}

	var out map[string]any
	switch rv.Kind() {
	case reflect.Struct:
		if isScalarStruct(rv.Type()) {
			return nil, fmt.Errorf("%w: %s is not a record", ErrUnsupportedType, rv.Type())
		}
		m, err := encodeStruct(rv, 0)
		if err != nil {
			return nil, err
		}
		out = m
	case reflect.Map:
		v, err := encodeMap(rv, 0)
		if err != nil {
			return nil, err
		}
		out = v
	default:
		return nil, fmt.Errorf("%w: %s is not a record", ErrUnsupportedType, rv.Type())
	}

	for name := range o.omit {
		delete(out, name)
	}
	return out, nil
}

func isScalarStruct(t reflect.Type) bool {
	switch t {
	case decimalType, nullDecimalType, bigIntValueType, bigIntType, bigFloatType, timeType:
		return true
	}
	return false
}

func convert(rv reflect.Value, asString bool, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrUnsupportedType, maxDepth)
	}
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Type() {
	case decimalType:
		d := rv.Interface().(decimal.Decimal)
		return d.String(), nil
	case nullDecimalType:
		nd := rv.Interface().(decimal.NullDecimal)
		if !nd.Valid {
			return nil, nil
		}
		return nd.Decimal.String(), nil
	case bigIntValueType:
		return rv.Interface().(valueobject.BigInt).String(), nil
	case bigIntType:
		n := rv.Interface().(big.Int)
		return n.String(), nil
	case bigFloatType:
		f := rv.Interface().(big.Float)
		return f.Text('f', -1), nil
	case timeType:
		return rv.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case uuidType:
		return rv.Interface().(uuid.UUID).String(), nil
	case rawMessageType:
		raw := rv.Interface().(json.RawMessage)
		if len(raw) == 0 {
			return nil, nil
		}
		return append(json.RawMessage(nil), raw...), nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return convert(rv.Elem(), asString, depth+1)
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return convert(rv.Elem(), asString, depth+1)
	case reflect.Bool:
		if asString {
			return strconv.FormatBool(rv.Bool()), nil
		}
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if asString || n > maxSafeInteger || n < -maxSafeInteger {
			return strconv.FormatInt(n, 10), nil
		}
		return n, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if asString || n > maxSafeInteger {
			return strconv.FormatUint(n, 10), nil
		}
		return n, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite float %v", ErrUnsupportedType, f)
		}
		if asString {
			return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), nil
		}
		return f, nil
	}

	// Custom encodings take precedence over structural conversion
	if rv.Type().Implements(marshalerType) {
		return marshalJSON(rv)
	}
	if rv.CanAddr() && reflect.PointerTo(rv.Type()).Implements(marshalerType) {
		return marshalJSON(rv.Addr())
	}

	switch rv.Kind() {
	case reflect.Struct:
		return encodeStruct(rv, depth+1)
	case reflect.Map:
		if rv.IsNil() {
			return map[string]any{}, nil
		}
		return encodeMap(rv, depth+1)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			if rv.IsNil() {
				return nil, nil
			}
			return rv.Bytes(), nil
		}
		if rv.IsNil() {
			return []any{}, nil
		}
		return encodeList(rv, depth+1)
	case reflect.Array:
		return encodeList(rv, depth+1)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	}
}

func marshalJSON(rv reflect.Value) (any, error) {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}
	data, err := rv.Interface().(json.Marshaler).MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func encodeList(rv reflect.Value, depth int) ([]any, error) {
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := convert(rv.Index(i), false, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeMap(rv reflect.Value, depth int) (map[string]any, error) {
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}
		v, err := convert(iter.Value(), false, depth)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func mapKey(k reflect.Value) (string, error) {
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	if k.Type().Implements(textMarshalType) {
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}
	return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
}

type fieldTag struct {
	name      string
	omitEmpty bool
	asString  bool
	skip      bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("json")
	if tag == "-" {
		return fieldTag{skip: true}
	}
	parts := strings.Split(tag, ",")
	ft := fieldTag{name: parts[0]}
	if !ok || ft.name == "" {
		ft.name = f.Name
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "omitempty", "omitzero":
			ft.omitEmpty = true
		case "string":
			ft.asString = true
		}
	}
	return ft
}

func encodeStruct(rv reflect.Value, depth int) (map[string]any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrUnsupportedType, maxDepth)
	}
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	var promoted []map[string]any

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)

		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			_, tagged := f.Tag.Lookup("json")
			if !tagged && ft.Kind() == reflect.Struct && !isScalarStruct(ft) {
				if fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						continue
					}
					fv = fv.Elem()
				}
				if !f.IsExported() && !hasExportedFields(ft) {
					continue
				}
				inner, err := encodeStruct(fv, depth+1)
				if err != nil {
					return nil, err
				}
				promoted = append(promoted, inner)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}

		tag := parseTag(f)
		if tag.skip {
			continue
		}
		if tag.omitEmpty && isEmptyValue(fv) {
			continue
		}
		v, err := convert(fv, tag.asString, depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[tag.name] = v
	}

	// Fields declared on the outer struct win over promoted ones
	for _, inner := range promoted {
		for k, v := range inner {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
	return out, nil
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
