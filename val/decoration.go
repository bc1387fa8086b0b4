package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// Decoration is one decoration record attached to an id. Two records are
// equal when their kind, member index and literal parameters all match;
// the order in which decorations were declared does not matter.
type Decoration struct {
	Kind   spv.Decoration
	Params []uint32

	// Member is the struct member index for OpMemberDecorate, or -1 when
	// the decoration applies to the id itself.
	Member int
}

// Equal reports structural equality of two decoration records.
func (d Decoration) Equal(o Decoration) bool {
	if d.Kind != o.Kind || d.Member != o.Member || len(d.Params) != len(o.Params) {
		return false
	}
	for i := range d.Params {
		if d.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// containsDecoration reports whether set contains dec.
func containsDecoration(set []Decoration, dec Decoration) bool {
	for _, d := range set {
		if d.Equal(dec) {
			return true
		}
	}
	return false
}

// decorationsSubset reports whether every decoration in sub is present
// in super.
func decorationsSubset(super, sub []Decoration) bool {
	for _, d := range sub {
		if !containsDecoration(super, d) {
			return false
		}
	}
	return true
}
