package dataset

import "strings"

// Flavor names a synthetic input distribution.
type Flavor string

// The closed set of flavors, in sweep order.
const (
	Random        Flavor = "random"
	Sorted        Flavor = "sorted"
	ReverseSorted Flavor = "reverse-sorted"
	NearlySorted  Flavor = "nearly-sorted"
	MajorityHeavy Flavor = "majority-heavy"
)

// Flavors returns every flavor in canonical sweep order. The slice is a copy.
func Flavors() []Flavor {
	return []Flavor{Random, Sorted, ReverseSorted, NearlySorted, MajorityHeavy}
}

// String implements fmt.Stringer.
func (f Flavor) String() string { return string(f) }

// Valid reports whether f belongs to the closed flavor set.
func (f Flavor) Valid() bool {
	switch f {
	case Random, Sorted, ReverseSorted, NearlySorted, MajorityHeavy:
		return true
	}
	return false
}

// ParseFlavor maps a label (case-insensitive, surrounding space ignored) to
// its Flavor. Unknown labels yield ErrUnknownFlavor.
func ParseFlavor(s string) (Flavor, error) {
	f := Flavor(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", wrapf("ParseFlavor", ErrUnknownFlavor, "%q", s)
	}
	return f, nil
}

// ParseFlavors parses each label in order and stops at the first error.
func ParseFlavors(labels []string) ([]Flavor, error) {
	out := make([]Flavor, 0, len(labels))
	for _, l := range labels {
		f, err := ParseFlavor(l)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
