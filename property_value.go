package editorui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// PropertyKind is the type tag of a PropertyValue.
type PropertyKind uint8

const (
	KindInvalid PropertyKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindVec2
	KindVec3
	KindVec4
	KindCollection
)

func (k PropertyKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindCollection:
		return "collection"
	}
	return "invalid"
}

// Components returns the number of float components of a vector kind, or 0.
func (k PropertyKind) Components() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	}
	return 0
}

// PropertyValue is a tagged union over the property types an editor can
// display. The zero value has KindInvalid.
type PropertyValue struct {
	kind  PropertyKind
	b     bool
	i     int32
	f     float32
	s     string
	v     mgl32.Vec4
	items []PropertyValue
}

// BoolValue wraps a bool.
func BoolValue(b bool) PropertyValue { return PropertyValue{kind: KindBool, b: b} }

// IntValue wraps an int32.
func IntValue(i int32) PropertyValue { return PropertyValue{kind: KindInt, i: i} }

// FloatValue wraps a float32.
func FloatValue(f float32) PropertyValue { return PropertyValue{kind: KindFloat, f: f} }

// StringValue wraps a string.
func StringValue(s string) PropertyValue { return PropertyValue{kind: KindString, s: s} }

// Vec2Value wraps a 2-component vector.
func Vec2Value(v mgl32.Vec2) PropertyValue { return PropertyValue{kind: KindVec2, v: v.Vec4(0, 0)} }

// Vec3Value wraps a 3-component vector.
func Vec3Value(v mgl32.Vec3) PropertyValue { return PropertyValue{kind: KindVec3, v: v.Vec4(0)} }

// Vec4Value wraps a 4-component vector.
func Vec4Value(v mgl32.Vec4) PropertyValue { return PropertyValue{kind: KindVec4, v: v} }

// CollectionValue wraps a list of values. The items are copied.
func CollectionValue(items ...PropertyValue) PropertyValue {
	c := PropertyValue{kind: KindCollection, items: make([]PropertyValue, len(items))}
	for i, it := range items {
		c.items[i] = it.Clone()
	}
	return c
}

// ZeroValue returns the zero value of a kind.
func ZeroValue(k PropertyKind) PropertyValue {
	switch k {
	case KindInvalid:
		return PropertyValue{}
	case KindCollection:
		return CollectionValue()
	}
	return PropertyValue{kind: k}
}

// Kind returns the type tag.
func (p PropertyValue) Kind() PropertyKind { return p.kind }

// IsValid reports whether the value carries a type.
func (p PropertyValue) IsValid() bool { return p.kind != KindInvalid }

// Bool returns the bool payload.
func (p PropertyValue) Bool() (bool, bool) { return p.b, p.kind == KindBool }

// Int returns the int payload.
func (p PropertyValue) Int() (int32, bool) { return p.i, p.kind == KindInt }

// Float returns the float payload.
func (p PropertyValue) Float() (float32, bool) { return p.f, p.kind == KindFloat }

// Str returns the string payload.
func (p PropertyValue) Str() (string, bool) { return p.s, p.kind == KindString }

// Vec2 returns the vec2 payload.
func (p PropertyValue) Vec2() (mgl32.Vec2, bool) { return p.v.Vec2(), p.kind == KindVec2 }

// Vec3 returns the vec3 payload.
func (p PropertyValue) Vec3() (mgl32.Vec3, bool) { return p.v.Vec3(), p.kind == KindVec3 }

// Vec4 returns the vec4 payload.
func (p PropertyValue) Vec4() (mgl32.Vec4, bool) { return p.v, p.kind == KindVec4 }

// Number returns int and float payloads as float64.
func (p PropertyValue) Number() (float64, bool) {
	switch p.kind {
	case KindInt:
		return float64(p.i), true
	case KindFloat:
		return float64(p.f), true
	}
	return 0, false
}

// Component returns component i of a vector value.
func (p PropertyValue) Component(i int) float32 {
	if i < 0 || i >= p.kind.Components() {
		return 0
	}
	return p.v[i]
}

// WithComponent returns a copy of a vector value with component i replaced.
func (p PropertyValue) WithComponent(i int, f float32) PropertyValue {
	if i < 0 || i >= p.kind.Components() {
		return p
	}
	p.v[i] = f
	return p
}

// Len returns the number of items of a collection.
func (p PropertyValue) Len() int { return len(p.items) }

// Index returns item i of a collection.
func (p PropertyValue) Index(i int) (PropertyValue, bool) {
	if p.kind != KindCollection || i < 0 || i >= len(p.items) {
		return PropertyValue{}, false
	}
	return p.items[i], true
}

// Items returns a copy of a collection's items.
func (p PropertyValue) Items() []PropertyValue {
	return CollectionValue(p.items...).items
}

// Append returns a copy of a collection with item added at the end.
func (p PropertyValue) Append(item PropertyValue) PropertyValue {
	if p.kind != KindCollection {
		return p
	}
	items := append(p.Items(), item.Clone())
	return PropertyValue{kind: KindCollection, items: items}
}

// RemoveAt returns a copy of a collection without item i.
func (p PropertyValue) RemoveAt(i int) PropertyValue {
	if p.kind != KindCollection || i < 0 || i >= len(p.items) {
		return p
	}
	return PropertyValue{kind: KindCollection, items: slices.Delete(p.Items(), i, i+1)}
}

// Clone returns a deep copy.
func (p PropertyValue) Clone() PropertyValue {
	if p.kind == KindCollection {
		return CollectionValue(p.items...)
	}
	return p
}

// Equal reports whether two values have the same kind and payload.
func (p PropertyValue) Equal(o PropertyValue) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case KindBool:
		return p.b == o.b
	case KindInt:
		return p.i == o.i
	case KindFloat:
		return p.f == o.f
	case KindString:
		return p.s == o.s
	case KindVec2, KindVec3, KindVec4:
		return p.v == o.v
	case KindCollection:
		return slices.EqualFunc(p.items, o.items, PropertyValue.Equal)
	}
	return true
}

// String formats the value for display.
func (p PropertyValue) String() string {
	switch p.kind {
	case KindBool:
		return strconv.FormatBool(p.b)
	case KindInt:
		return strconv.FormatInt(int64(p.i), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(p.f), 'g', 6, 32)
	case KindString:
		return p.s
	case KindVec2, KindVec3, KindVec4:
		parts := make([]string, p.kind.Components())
		for i := range parts {
			parts[i] = strconv.FormatFloat(float64(p.v[i]), 'g', 4, 32)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindCollection:
		return fmt.Sprintf("[%d items]", len(p.items))
	}
	return "<invalid>"
}
