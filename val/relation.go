package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// LogicallyMatch reports whether two type-defining instructions match
// structurally where decorations are allowed to differ. Arrays match
// when their length operands are the same id and their element types are
// identical or logically matching; structs match memberwise. Any other
// type only matches itself, since non-aggregate types are deduplicated
// by id within a module. When checkDecorations is set, the decorations
// of rhs must be a subset of the decorations of lhs.
//
// This relation is only meaningful under pre-legalization semantics;
// strict conformance checks compare type ids directly.
func (s *State) LogicallyMatch(lhs, rhs *Instruction, checkDecorations bool) bool {
	if lhs == nil || rhs == nil || lhs.Opcode != rhs.Opcode {
		return false
	}

	if checkDecorations {
		if !decorationsSubset(s.Decorations(lhs.ResultID), s.Decorations(rhs.ResultID)) {
			return false
		}
	}

	switch lhs.Opcode {
	case spv.OpTypeArray:
		if lhs.ID(1) != rhs.ID(1) {
			return false
		}
		if lhs.ID(0) == rhs.ID(0) {
			return true
		}
		return s.LogicallyMatch(s.FindDef(lhs.ID(0)), s.FindDef(rhs.ID(0)), checkDecorations)

	case spv.OpTypeStruct:
		if len(lhs.Operands) != len(rhs.Operands) {
			return false
		}
		for i := range lhs.Operands {
			if lhs.ID(i) == rhs.ID(i) {
				continue
			}
			if !s.LogicallyMatch(s.FindDef(lhs.ID(i)), s.FindDef(rhs.ID(i)), checkDecorations) {
				return false
			}
		}
		return true
	}

	return false
}

// PointeesLogicallyMatch reports whether a and b define pointer types
// whose pointees logically match and whose decorations are compatible:
// the decorations applying to b must be a subset of those applying to a.
func (s *State) PointeesLogicallyMatch(a, b *Instruction) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Opcode != spv.OpTypePointer || b.Opcode != spv.OpTypePointer {
		return false
	}

	if !decorationsSubset(s.Decorations(a.ResultID), s.Decorations(b.ResultID)) {
		return false
	}

	aPointee := a.ID(1)
	bPointee := b.ID(1)
	if aPointee == bPointee {
		return true
	}
	return s.LogicallyMatch(s.FindDef(aPointee), s.FindDef(bPointee), true)
}
