package waveguide

import (
	"testing"
)

func TestParseLayer(t *testing.T) {
	tests := []struct {
		in   string
		want Layer
		err  bool
	}{
		{"1/0", Layer{1, 0}, false},
		{"66/17", Layer{66, 17}, false},
		{"5", Layer{5, 0}, false},
		{" 3/2 ", Layer{3, 2}, false},
		{"", Layer{}, true},
		{"a/0", Layer{}, true},
		{"1/b", Layer{}, true},
		{"-1/0", Layer{}, true},
		{"1/-2", Layer{}, true},
	}
	for _, tt := range tests {
		got, err := ParseLayer(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseLayer(%q): got error %v, want error %t", tt.in, err, tt.err)
			continue
		}
		if err == nil {
			diff(t, tt.want, got)
			diff(t, got, mustParseLayer(t, got.String()))
		}
	}
}

func mustParseLayer(t *testing.T, s string) Layer {
	t.Helper()
	l, err := ParseLayer(s)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestCompareLayers(t *testing.T) {
	tests := []struct {
		a, b Layer
		want int
	}{
		{Layer{1, 0}, Layer{2, 0}, -1},
		{Layer{2, 0}, Layer{1, 5}, 1},
		{Layer{1, 1}, Layer{1, 0}, 1},
		{Layer{1, 1}, Layer{1, 1}, 0},
	}
	for _, tt := range tests {
		if got := compareLayers(tt.a, tt.b); got != tt.want {
			t.Errorf("compareLayers(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
