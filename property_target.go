package editorui

import "slices"

// PropertyTarget is an object whose named properties a PropertyPanel edits.
type PropertyTarget interface {
	PropertyValue(name string) (PropertyValue, bool)
	SetPropertyValue(name string, value PropertyValue) bool
}

// MapTarget is a PropertyTarget backed by a map.
type MapTarget struct {
	values map[string]PropertyValue
}

// NewMapTarget creates a target holding a copy of values.
func NewMapTarget(values map[string]PropertyValue) *MapTarget {
	t := &MapTarget{values: make(map[string]PropertyValue, len(values))}
	for k, v := range values {
		t.values[k] = v.Clone()
	}
	return t
}

// PropertyValue implements PropertyTarget.
func (t *MapTarget) PropertyValue(name string) (PropertyValue, bool) {
	v, ok := t.values[name]
	return v.Clone(), ok
}

// SetPropertyValue implements PropertyTarget. Any name is accepted.
func (t *MapTarget) SetPropertyValue(name string, value PropertyValue) bool {
	t.values[name] = value.Clone()
	return true
}

// Names returns the stored property names, sorted.
func (t *MapTarget) Names() []string {
	names := make([]string, 0, len(t.values))
	for k := range t.values {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
