package layout

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xssnick/bitutils-go/bitfield"
	"github.com/xssnick/bitutils-go/bitstring"
)

// Pad is the field type for "pad N" tags, it carries no data.
type Pad struct{}

type manualLoader interface {
	LoadFromSlice(loader *bitstring.Slice) error
}

type manualStorer interface {
	StoreToBuilder(builder *bitstring.Builder) error
}

// Load automatically parses a bit-packed record into v based on struct tags
// ## N - unsigned integer of N bits (N <= 32), loads into uint of any size
// bool - 1 bit boolean
// f32 - 32-bit IEEE-754 float
// pad N - skips N bits, field type should be layout.Pad
// - - field is ignored
// Example:
//
//	type Register struct {
//		Channel uint8  `bit:"## 5"`
//		Enabled bool   `bit:"bool"`
//		Gain    uint16 `bit:"## 10"`
//	}
func Load(s *bitstring.Slice, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("v should be a pointer and not nil")
	}
	rv = rv.Elem()

	if ld, ok := v.(manualLoader); ok {
		err := ld.LoadFromSlice(s)
		if err != nil {
			return fmt.Errorf("failed to load %s using manual loader, err: %w", rv.Type().Name(), err)
		}
		return nil
	}

	for i := 0; i < rv.NumField(); i++ {
		structField := rv.Type().Field(i)
		settings, ok := tagSettings(structField)
		if !ok {
			continue
		}

		switch settings[0] {
		case "##":
			sz, err := tagSize(settings, structField.Name)
			if err != nil {
				return err
			}

			val, err := s.LoadUInt(sz)
			if err != nil {
				return fmt.Errorf("failed to load uint %s, err: %w", structField.Name, err)
			}

			if structField.Type.Kind() < reflect.Uint || structField.Type.Kind() > reflect.Uint64 {
				return fmt.Errorf("uint tag can only be applied to unsigned field, field %s", structField.Name)
			}
			if rv.Field(i).OverflowUint(uint64(val)) {
				return fmt.Errorf("value 0x%X does not fit into field %s", val, structField.Name)
			}
			rv.Field(i).SetUint(uint64(val))
		case "bool":
			val, err := s.LoadBoolBit()
			if err != nil {
				return fmt.Errorf("failed to load bool %s, err: %w", structField.Name, err)
			}
			rv.Field(i).SetBool(val)
		case "f32":
			val, err := s.LoadFloat32()
			if err != nil {
				return fmt.Errorf("failed to load float %s, err: %w", structField.Name, err)
			}
			rv.Field(i).SetFloat(float64(val))
		case "pad":
			sz, err := tagSize(settings, structField.Name)
			if err != nil {
				return err
			}
			if err = s.SkipBits(sz); err != nil {
				return fmt.Errorf("failed to skip padding %s, err: %w", structField.Name, err)
			}
		default:
			return fmt.Errorf("unknown tag setting %q, field %s", settings[0], structField.Name)
		}
	}
	return nil
}

// Store serializes v into the builder field by field, the exact inverse of
// Load.
func Store(b *bitstring.Builder, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("v should not be nil")
		}
		if st, ok := v.(manualStorer); ok {
			err := st.StoreToBuilder(b)
			if err != nil {
				return fmt.Errorf("failed to store %s using manual storer, err: %w", rv.Elem().Type().Name(), err)
			}
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("v should be a struct or pointer to struct")
	}

	for i := 0; i < rv.NumField(); i++ {
		structField := rv.Type().Field(i)
		settings, ok := tagSettings(structField)
		if !ok {
			continue
		}

		switch settings[0] {
		case "##":
			sz, err := tagSize(settings, structField.Name)
			if err != nil {
				return err
			}
			if err = b.StoreUInt(uint32(rv.Field(i).Uint()), sz); err != nil {
				return fmt.Errorf("failed to store uint %s, err: %w", structField.Name, err)
			}
		case "bool":
			if err := b.StoreBoolBit(rv.Field(i).Bool()); err != nil {
				return fmt.Errorf("failed to store bool %s, err: %w", structField.Name, err)
			}
		case "f32":
			if err := b.StoreFloat32(float32(rv.Field(i).Float())); err != nil {
				return fmt.Errorf("failed to store float %s, err: %w", structField.Name, err)
			}
		case "pad":
			sz, err := tagSize(settings, structField.Name)
			if err != nil {
				return err
			}
			if err = b.StorePadding(sz); err != nil {
				return fmt.Errorf("failed to store padding %s, err: %w", structField.Name, err)
			}
		default:
			return fmt.Errorf("unknown tag setting %q, field %s", settings[0], structField.Name)
		}
	}
	return nil
}

// Unmarshal parses a raw bit-packed buffer into v.
func Unmarshal(data []byte, order bitfield.ByteOrder, v any) error {
	bs, err := bitstring.Wrap(data, uint(len(data))*8, order)
	if err != nil {
		return err
	}
	return Load(bs.BeginParse(), v)
}

// Marshal serializes v into a fresh bit-packed buffer, sized to the
// layout's total width.
func Marshal(v any, order bitfield.ByteOrder) ([]byte, error) {
	b := bitstring.Begin(order)
	if err := Store(b, v); err != nil {
		return nil, err
	}
	return b.End().Data(), nil
}

func tagSettings(field reflect.StructField) ([]string, bool) {
	tag := strings.TrimSpace(field.Tag.Get("bit"))
	if tag == "" || tag == "-" {
		return nil, false
	}
	return strings.Split(tag, " "), true
}

func tagSize(settings []string, fieldName string) (uint, error) {
	if len(settings) < 2 {
		return 0, fmt.Errorf("corrupted tag size, field %s", fieldName)
	}
	sz, err := strconv.ParseUint(settings[1], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("corrupted tag size %q, field %s", settings[1], fieldName)
	}
	if settings[0] == "##" && (sz == 0 || sz > bitfield.MaxBits) {
		return 0, fmt.Errorf("field size should be in 1..32, field %s", fieldName)
	}
	return uint(sz), nil
}
