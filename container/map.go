package container

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Map is an insertion-ordered mapping with unique keys. Keys must be
// comparable values; writing an uncomparable key panics, like a native map
// write. The zero value is an empty, ready-to-use Map.
type Map struct {
	keys   []any
	values []any
	index  map[any]int
}

func NewMap() *Map {
	return &Map{index: map[any]int{}}
}

// MapOf builds a Map from alternating key, value arguments.
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("container: MapOf requires key, value pairs")
	}
	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map) Get(key any) (any, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

func (m *Map) Has(key any) bool {
	_, ok := m.Get(key)
	return ok
}

// Set writes value under key. An existing key keeps its original position.
func (m *Map) Set(key, value any) {
	if m.index == nil {
		m.index = map[any]int{}
	}
	if i, ok := m.index[key]; ok {
		m.values[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// SetDefault writes value only when key is absent.
func (m *Map) SetDefault(key, value any) {
	if m.Has(key) {
		return
	}
	m.Set(key, value)
}

func (m *Map) Delete(key any) bool {
	if m == nil || m.index == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// At returns the i-th pair in insertion order.
func (m *Map) At(i int) (key, value any) {
	return m.keys[i], m.values[i]
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []any {
	if m == nil {
		return nil
	}
	res := make([]any, len(m.keys))
	copy(res, m.keys)
	return res
}

// Values returns the values in insertion order. The slice is a copy.
func (m *Map) Values() []any {
	if m == nil {
		return nil
	}
	res := make([]any, len(m.values))
	copy(res, m.values)
	return res
}

// All yields the pairs in insertion order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}
		for i := range m.keys {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: a new Map holding the same value references.
func (m *Map) Clone() *Map {
	res := NewMap()
	for k, v := range m.All() {
		res.Set(k, v)
	}
	return res
}

// Equal reports deep equality with o, ignoring insertion order, matching the
// equality of the mapping the Map represents.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for k, v := range m.All() {
		ov, ok := o.Get(k)
		if !ok || !DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the pairs as a JSON object in insertion order.
// Non-string keys are formatted with fmt.Sprint.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		ks, ok := m.keys[i].(string)
		if !ok {
			ks = fmt.Sprint(m.keys[i])
		}
		kd, err := json.Marshal(ks)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map) String() string {
	d, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.keys)
	}
	return string(d)
}
