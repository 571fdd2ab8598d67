package term

import "testing"

func TestCanonicalForms(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{name: "plain", v: Plain("p."), want: "p."},
		{name: "pair", v: Pair("st", "nd"), want: "st|nd"},
		{name: "empty plain", v: Plain(""), want: ""},
		{name: "literal None stays a real value", v: Plain("None"), want: "None"},
	}
	for _, tc := range cases {
		if got := tc.v.Canonical(); got != tc.want {
			t.Fatalf("%s: Canonical() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPairAccessors(t *testing.T) {
	v := Pair("st", "nd")
	if !v.IsPair() {
		t.Fatal("IsPair() = false for pair value")
	}
	if v.Text() != "st" || v.Multiple() != "nd" {
		t.Fatalf("pair accessors = %q/%q, want st/nd", v.Text(), v.Multiple())
	}

	p := Plain("page")
	if p.IsPair() {
		t.Fatal("IsPair() = true for plain value")
	}
	if p.Multiple() != "" {
		t.Fatalf("Multiple() = %q for plain value, want empty", p.Multiple())
	}
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Put(Key{Name: "page"}, Plain("p."))
	s.Put(Key{Name: "ordinal", Form: "short"}, Pair("st", "nd"))
	s.Put(Key{Name: "volume"}, Plain("vol."))

	// Replacing a value must not move the key.
	s.Put(Key{Name: "page"}, Plain("pp."))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	wantOrder := []Key{
		{Name: "page"},
		{Name: "ordinal", Form: "short"},
		{Name: "volume"},
	}
	for i, k := range s.Keys() {
		if k != wantOrder[i] {
			t.Fatalf("Keys()[%d] = %v, want %v", i, k, wantOrder[i])
		}
	}

	if v, ok := s.Get(Key{Name: "page"}); !ok || v.Text() != "pp." {
		t.Fatalf("Get(page) = %q, %v; want pp., true", v.Text(), ok)
	}
	if _, ok := s.Get(Key{Name: "issue"}); ok {
		t.Fatal("Get(issue) found a key that was never inserted")
	}
}
