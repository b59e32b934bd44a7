package abi

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// decodePlan is the Go-native substitute for the code a derive macro would
// generate: for each exported field of a struct type, the field's index
// and its byte offset within the struct's head region. It is computed once
// per reflect.Type and cached; decoding a value never re-walks the type.
type decodePlan struct {
	fields   []fieldPlan
	headSize int
}

type fieldPlan struct {
	index   int
	offset  int
	name    string
	isArray bool // field is a fixed-length Go array (ABI T[L])
	length  int  // array length, when isArray
	elemHS  int  // element HeadSize(), when isArray
}

// decodePlans caches one decodePlan per struct type. Goroutines that miss
// the cache concurrently may each build a plan, but only the first one
// stored is kept and returned to all of them.
var decodePlans = xsync.NewMap[reflect.Type, *decodePlan]()

// buildDecodePlan walks t's exported fields and computes their offsets by
// summing each field's HeadSize() in declaration order. A field whose type
// is a fixed-length Go array (the ABI T[L] case) does not itself implement
// fieldDecoder; instead its element type must, and the field's HeadSize is
// L times the element's. Every other field requires a pointer to its type
// to implement fieldDecoder directly; a field that satisfies neither shape
// is a programming error, not a decode-time failure, so this function
// panics rather than returning an error.
func buildDecodePlan(t reflect.Type) *decodePlan {
	plan := &decodePlan{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Type.Kind() == reflect.Array {
			elemType := f.Type.Elem()
			efd, ok := reflect.New(elemType).Interface().(fieldDecoder)
			if !ok {
				panic(fmt.Sprintf("abi: field %s.%s of type %s has element type %s that does not implement Decode/HeadSize", t.Name(), f.Name, f.Type, elemType))
			}
			length := f.Type.Len()
			elemHS := efd.HeadSize()
			plan.fields = append(plan.fields, fieldPlan{
				index: i, offset: plan.headSize, name: f.Name,
				isArray: true, length: length, elemHS: elemHS,
			})
			plan.headSize += length * elemHS
			continue
		}
		fd, ok := reflect.New(f.Type).Interface().(fieldDecoder)
		if !ok {
			panic(fmt.Sprintf("abi: field %s.%s of type %s does not implement Decode/HeadSize", t.Name(), f.Name, f.Type))
		}
		size := fd.HeadSize()
		plan.fields = append(plan.fields, fieldPlan{index: i, offset: plan.headSize, name: f.Name})
		plan.headSize += size
	}
	return plan
}

// planFor returns the cached decodePlan for t, building and storing it on
// first use.
func planFor(t reflect.Type) *decodePlan {
	if p, ok := decodePlans.Load(t); ok {
		return p
	}
	p, _ := decodePlans.LoadOrStore(t, buildDecodePlan(t))
	return p
}

// Decode decodes a value of struct type T from buf starting at offset,
// using T's field order and each field's HeadSize to lay out the struct's
// head region. It is the generic entry point the structural composer
// exposes in place of a derive macro: call Decode[MyStruct](buf, offset)
// wherever the original would write MyStruct::decode(buf, offset).
//
// Every exported field of T must be of a type whose pointer implements
// fieldDecoder (every field type in this package except FixedBytes and
// Selector does), or a Go array of such a type. Decode allocates the
// result value through reflection on every call.
func Decode[T any](buf []byte, offset int) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return zero, fmt.Errorf("abi: Decode requires a struct type, got %s", t)
	}
	plan := planFor(t)

	out := reflect.New(t).Elem()
	for _, fp := range plan.fields {
		fieldVal := out.Field(fp.index)
		if fp.isArray {
			for j := 0; j < fp.length; j++ {
				slot := offset + fp.offset + j*fp.elemHS
				efd := fieldVal.Index(j).Addr().Interface().(fieldDecoder)
				if err := efd.Decode(buf, slot); err != nil {
					return zero, fmt.Errorf("field %s[%d] at offset %d: %w", fp.name, j, slot, err)
				}
			}
			continue
		}
		fd := fieldVal.Addr().Interface().(fieldDecoder)
		if err := fd.Decode(buf, offset+fp.offset); err != nil {
			return zero, fmt.Errorf("field %s at offset %d: %w", fp.name, offset+fp.offset, err)
		}
	}
	return out.Interface().(T), nil
}

// HeadSizeOf returns the head size, in bytes, that T occupies as an
// aggregate: the sum of its fields' individual head sizes. It is exposed
// so that a struct type can itself be embedded as an array element or a
// nested field via [Struct].
func HeadSizeOf[T any]() int {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return planFor(t).headSize
}

// Struct adapts any struct type T, decoded via [Decode], into a
// fieldDecoder so it can be used as an Array element or a nested struct
// field. Go has no derive mechanism to generate Decode/HeadSize methods on
// T itself, so Struct supplies them by delegating to the cached
// decodePlan.
type Struct[T any] struct {
	Value T
}

// Decode implements fieldDecoder by delegating to [Decode].
func (s *Struct[T]) Decode(buf []byte, offset int) error {
	v, err := Decode[T](buf, offset)
	if err != nil {
		return err
	}
	s.Value = v
	return nil
}

// HeadSize implements fieldDecoder by delegating to [HeadSizeOf].
func (s *Struct[T]) HeadSize() int { return HeadSizeOf[T]() }
