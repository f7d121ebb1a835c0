package waveguide

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Layer identifies a layer of a layout by number and datatype.
type Layer struct {
	Number   int
	Datatype int
}

func (l Layer) String() string {
	return fmt.Sprintf("%d/%d", l.Number, l.Datatype)
}

// ParseLayer parses layers written as "number/datatype" or just "number".
func ParseLayer(s string) (Layer, error) {
	num, dt, hasDT := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.Atoi(num)
	if err != nil {
		return Layer{}, fmt.Errorf("waveguide: invalid layer %q: %w", s, err)
	}
	l := Layer{Number: n}
	if hasDT {
		if l.Datatype, err = strconv.Atoi(dt); err != nil {
			return Layer{}, fmt.Errorf("waveguide: invalid layer %q: %w", s, err)
		}
	}
	if l.Number < 0 || l.Datatype < 0 {
		return Layer{}, fmt.Errorf("waveguide: invalid layer %q: negative number", s)
	}
	return l, nil
}

func compareLayers(a, b Layer) int {
	return cmp.Or(cmp.Compare(a.Number, b.Number), cmp.Compare(a.Datatype, b.Datatype))
}
