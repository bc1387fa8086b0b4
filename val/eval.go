package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// FoldOutcome is the result kind of a best-effort constant fold. The
// three states keep "not a 32-bit integer" and "not statically constant"
// distinct from a folded zero, so a caller can skip exactly the checks
// that depend on the unknown value.
type FoldOutcome uint8

const (
	// FoldNotApplicable means the id is not of the expected scalar kind.
	FoldNotApplicable FoldOutcome = iota
	// FoldUnknown means the id has the expected kind but its value is
	// not statically known (for example a specialization constant).
	FoldUnknown
	// FoldConstant means the value was folded.
	FoldConstant
)

// FoldInt32 attempts to fold id to a 32-bit integer literal. The value
// is meaningful only when the outcome is FoldConstant.
func (s *State) FoldInt32(id uint32) (FoldOutcome, uint32) {
	def := s.FindDef(id)
	if def == nil {
		return FoldNotApplicable, 0
	}
	typ := s.FindDef(def.TypeID)
	if typ == nil || typ.Opcode != spv.OpTypeInt || typ.Word(0) != 32 {
		return FoldNotApplicable, 0
	}
	if !spv.IsConstant(def.Opcode) || spv.IsSpecConstant(def.Opcode) {
		return FoldUnknown, 0
	}
	switch def.Opcode {
	case spv.OpConstant:
		return FoldConstant, def.Word(0)
	case spv.OpConstantNull:
		return FoldConstant, 0
	}
	return FoldUnknown, 0
}

// FoldUint64 attempts to fold id to an unsigned 64-bit literal. Integer
// constants of any width fold; specialization constants and non-integer
// ids do not.
func (s *State) FoldUint64(id uint32) (uint64, bool) {
	def := s.FindDef(id)
	if def == nil {
		return 0, false
	}
	typ := s.FindDef(def.TypeID)
	if typ == nil || typ.Opcode != spv.OpTypeInt {
		return 0, false
	}
	switch def.Opcode {
	case spv.OpConstant:
		if typ.Word(0) > 32 && len(def.Operands) >= 2 {
			return uint64(def.Word(1))<<32 | uint64(def.Word(0)), true
		}
		return uint64(def.Word(0)), true
	case spv.OpConstantNull:
		return 0, true
	}
	return 0, false
}
