package utils

import "testing"

func TestParseUint(t *testing.T) {
	cases := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseUint(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseUint(%q) = (%d, %v); want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
