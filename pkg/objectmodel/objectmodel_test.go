package objectmodel

import (
	"iter"
	"testing"
	"time"
)

type wrappedInt int

type timestamp struct {
	at time.Time
}

func (ts timestamp) Time() time.Time { return ts.at }

type someValue struct {
	value   any
	present bool
}

func (o someValue) Value() (any, bool) { return o.value, o.present }

type intRange struct {
	from, to int
}

func (r intRange) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := r.from; i < r.to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestIsPrimitive(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"bool", true, true},
		{"int", 42, true},
		{"uint8", uint8(7), true},
		{"float64", 3.14, true},
		{"complex", complex(1, 2), true},
		{"string", "x", false},
		{"named int type", wrappedInt(5), false},
		{"struct", struct{}{}, false},
		{"pointer", new(int), false},
		{"time", time.Now(), false},
	}
	for _, tc := range cases {
		if got := IsPrimitive(tc.in); got != tc.want {
			t.Errorf("IsPrimitive(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsDate(t *testing.T) {
	now := time.Now()
	if !IsDate(now) {
		t.Fatalf("expected time.Time to be a date")
	}
	if !IsDate(&now) {
		t.Fatalf("expected *time.Time to be a date")
	}
	if IsDate((*time.Time)(nil)) {
		t.Fatalf("nil *time.Time must not be a date")
	}
	if !IsDate(timestamp{at: now}) {
		t.Fatalf("expected Time() accessor shape to be a date")
	}
	if IsDate("2024-01-01") {
		t.Fatalf("strings are not dates")
	}
}

func TestIsNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"int", 1, true},
		{"named numeric type", wrappedInt(3), true},
		{"decimal string", "42", true},
		{"hex string", "0x1F", true},
		{"padded float string", "  3.5 ", true},
		{"exponent string", "1e3", true},
		{"word", "abc", false},
		{"blank", "   ", false},
		{"pointer to int", ptr(9), true},
		{"nil pointer", (*int)(nil), false},
	}
	for _, tc := range cases {
		if got := IsNumber(tc.in); got != tc.want {
			t.Errorf("IsNumber(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsCollection(t *testing.T) {
	ch := make(chan int)
	var seq iter.Seq[any] = func(func(any) bool) {}

	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"slice", []int{1}, true},
		{"array", [2]string{}, true},
		{"channel", ch, true},
		{"sequence", intRange{0, 3}, true},
		{"iterator", seq, true},
		{"raw iterator func", func(func(any) bool) {}, true},
		{"map", map[string]int{}, false},
		{"string", "abc", false},
		{"int", 5, false},
	}
	for _, tc := range cases {
		if got := IsCollection(tc.in); got != tc.want {
			t.Errorf("IsCollection(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
