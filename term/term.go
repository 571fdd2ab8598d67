// Package term defines the normalized term model shared by all catalog
// origins: a composite key (name + grammatical form), a tagged value that
// is either plain text or a single/multiple pair, and an ordered set of
// key/value entries for one locale.
package term

// Key identifies a localizable term within one locale's document.
// Form is empty for the default form.
type Key struct {
	Name string
	Form string
}

// Value is a tagged variant: either plain text or a single/multiple pair.
// The zero value is an empty plain string.
type Value struct {
	single   string
	multiple string
	pair     bool
}

// Plain returns a plain-text value.
func Plain(text string) Value {
	return Value{single: text}
}

// Pair returns a single/multiple value.
func Pair(single, multiple string) Value {
	return Value{single: single, multiple: multiple, pair: true}
}

// IsPair reports whether the value carries separate single and multiple forms.
func (v Value) IsPair() bool { return v.pair }

// Text returns the plain text, or the single form for pair values.
func (v Value) Text() string { return v.single }

// Multiple returns the multiple form. Empty for plain values.
func (v Value) Multiple() string { return v.multiple }

// Canonical returns the comparison form of the value: plain text as-is,
// pairs joined as "single|multiple". Absence is never encoded as a string;
// callers must use Set.Get's ok result to detect missing keys.
func (v Value) Canonical() string {
	if v.pair {
		return v.single + "|" + v.multiple
	}
	return v.single
}

// Set is an ordered mapping from Key to Value for one locale.
// Iteration via Keys() follows first-insertion order, so a baseline
// set drives diffs in document order.
type Set struct {
	keys   []Key
	values map[Key]Value
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{values: make(map[Key]Value)}
}

// Put inserts or replaces the value for a key. A replaced key keeps
// its original position.
func (s *Set) Put(k Key, v Value) {
	if _, ok := s.values[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.values[k] = v
}

// Get returns the value for a key and whether the key is present.
func (s *Set) Get(k Key) (Value, bool) {
	v, ok := s.values[k]
	return v, ok
}

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (s *Set) Keys() []Key { return s.keys }
