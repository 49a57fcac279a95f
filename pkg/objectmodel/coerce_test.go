package objectmodel

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestToBoolean(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"zero", 0, false},
		{"nonzero", 1, true},
		{"zero float", 0.0, false},
		{"empty string", "", false},
		{"blank string", "   ", false},
		{"word", "x", true},
		{"false string is truthy", "false", true},
		{"FALSE string is truthy", "FALSE", true},
		{"empty slice", []int{}, false},
		{"slice", []int{1}, true},
		{"empty map", map[string]int{}, false},
		{"map", map[string]int{"a": 1}, true},
		{"nil pointer", (*int)(nil), false},
		{"pointer to zero", ptr(0), false},
		{"pointer to value", ptr(5), true},
		{"absent optional", someValue{}, false},
		{"present optional", someValue{value: "x", present: true}, true},
		{"empty sequence", intRange{0, 0}, false},
		{"sequence", intRange{0, 2}, true},
		{"opaque struct", struct{ A int }{}, true},
	}
	for _, tc := range cases {
		if got := ToBoolean(tc.in); got != tc.want {
			t.Errorf("ToBoolean(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	if got := ToNumber(42); got != 42 {
		t.Fatalf("numeric input must pass through, got %v", got)
	}
	if got := ToNumber(wrappedInt(3)); got != wrappedInt(3) {
		t.Fatalf("named numeric input must pass through, got %v", got)
	}
	if got := ToNumber("42"); got != int64(42) {
		t.Fatalf("ToNumber(\"42\") = %v (%T), want int64(42)", got, got)
	}
	if got := ToNumber("0x10"); got != int64(16) {
		t.Fatalf("hex input = %v, want 16", got)
	}
	if got := ToNumber("3.25"); got != 3.25 {
		t.Fatalf("fractional input = %v, want 3.25", got)
	}
	if got := ToNumber("1e3"); got != 1000.0 {
		t.Fatalf("exponent input = %v, want 1000", got)
	}
	if got := ToNumber("18446744073709551615"); got != uint64(18446744073709551615) {
		t.Fatalf("unsigned overflow input = %v (%T), want uint64 max", got, got)
	}
	if got := ToNumber("  7 "); got != int64(7) {
		t.Fatalf("padded input = %v, want 7", got)
	}
	if got := ToNumber("abc"); got != nil {
		t.Fatalf("unparseable input = %v, want nil", got)
	}
	if got := ToNumber(nil); got != nil {
		t.Fatalf("nil input = %v, want nil", got)
	}
	if got := ToNumber(ptr(12)); got != 12 {
		t.Fatalf("pointer input = %v, want 12", got)
	}
	if got := ToNumber(someValue{value: "8", present: true}); got != int64(8) {
		t.Fatalf("optional input = %v, want 8", got)
	}
}

func TestToTime(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)

	if got, ok := ToTime(now); !ok || !got.Equal(now) {
		t.Fatalf("ToTime(time.Time) = %v, %v", got, ok)
	}
	if got, ok := ToTime(&now); !ok || !got.Equal(now) {
		t.Fatalf("ToTime(*time.Time) = %v, %v", got, ok)
	}
	if got, ok := ToTime(timestamp{at: now}); !ok || !got.Equal(now) {
		t.Fatalf("ToTime(accessor) = %v, %v", got, ok)
	}
	if _, ok := ToTime((*time.Time)(nil)); ok {
		t.Fatalf("nil *time.Time must not convert")
	}
	if _, ok := ToTime("2024-05-17"); ok {
		t.Fatalf("strings must not convert")
	}
}

type weekday int

func (d weekday) String() string { return [...]string{"mon", "tue"}[d] }

func TestToString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"stringer", weekday(1), "tue"},
		{"nil pointer", (*int)(nil), ""},
		{"pointer", ptr(7), "7"},
		{"slice", []any{1, 2, 3}, "1,2,3"},
		{"nested stringer slice", []any{weekday(0), weekday(1)}, "mon,tue"},
		{"sequence", intRange{1, 4}, "1,2,3"},
		{"absent optional", someValue{}, ""},
		{"present optional", someValue{value: 5, present: true}, "5"},
	}
	for _, tc := range cases {
		if got := ToString(tc.in); got != tc.want {
			t.Errorf("ToString(%s) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCollectionToString_RoundTrip(t *testing.T) {
	if got := CollectionToString(ToCollection([]int{1, 2, 3})); got != "1,2,3" {
		t.Fatalf("got %q, want %q", got, "1,2,3")
	}
}

func TestToCollection(t *testing.T) {
	identity := []any{1, "two"}
	if got := ToCollection(identity); &got[0] != &identity[0] {
		t.Fatalf("[]any input must be returned unchanged")
	}

	if diff := cmp.Diff([]any{1, 2, 3}, ToCollection([]int{1, 2, 3})); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"a", "b"}, ToCollection([2]string{"a", "b"})); diff != "" {
		t.Fatalf("array mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{}, ToCollection(nil)); diff != "" {
		t.Fatalf("nil mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"scalar"}, ToCollection("scalar")); diff != "" {
		t.Fatalf("scalar must wrap into a singleton (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{1, 2}, ToCollection(intRange{1, 3})); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	keys := ToCollection(map[string]int{"k": 1})
	if len(keys) != 1 || keys[0] != "k" {
		t.Fatalf("map must normalise to its keys, got %v", keys)
	}

	// Idempotence on list-shaped input.
	once := ToCollection([]int{4, 5})
	if diff := cmp.Diff(once, ToCollection(once)); diff != "" {
		t.Fatalf("not idempotent (-first +second):\n%s", diff)
	}
}

func TestToCollection_DrainsChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)

	if diff := cmp.Diff([]any{1, 2}, ToCollection(ch)); diff != "" {
		t.Fatalf("channel mismatch (-want +got):\n%s", diff)
	}
	// A drained channel has nothing left to yield.
	if got := ToCollection(ch); len(got) != 0 {
		t.Fatalf("second drain should be empty, got %v", got)
	}
}

func TestToStringMap(t *testing.T) {
	in := map[string]any{"a": 1}
	if got := ToStringMap(in); got["a"] != 1 {
		t.Fatalf("map[string]any must pass through, got %v", got)
	}

	rekeyed := ToStringMap(map[int]string{1: "one"})
	if diff := cmp.Diff(map[string]any{"1": "one"}, rekeyed); diff != "" {
		t.Fatalf("rekey mismatch (-want +got):\n%s", diff)
	}

	if got := ToStringMap("not a map"); got == nil || len(got) != 0 {
		t.Fatalf("non-map input must yield an empty non-nil map, got %v", got)
	}
	if got := ToStringMap(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil input must yield an empty non-nil map, got %v", got)
	}
}

type coercionCase struct {
	Name    string `yaml:"name"`
	Input   string `yaml:"input"`
	Boolean bool   `yaml:"boolean"`
	Number  string `yaml:"number"`
}

// Scalar string coercions are driven from a fixture so the grammar cases stay
// readable in one place.
func TestStringCoercions_Fixture(t *testing.T) {
	raw, err := os.ReadFile("testdata/coercions.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var cases []coercionCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("fixture is empty")
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := ToBoolean(tc.Input); got != tc.Boolean {
				t.Errorf("ToBoolean(%q) = %v, want %v", tc.Input, got, tc.Boolean)
			}
			var got string
			if n := ToNumber(tc.Input); n != nil {
				got = fmt.Sprintf("%v", n)
			}
			if got != tc.Number {
				t.Errorf("ToNumber(%q) = %q, want %q", tc.Input, got, tc.Number)
			}
		})
	}
}
