package val

import (
	"github.com/CHIP-SPV/SPIRV-Tools/spv"
)

// OperandKind classifies a single instruction operand word.
type OperandKind uint8

const (
	// OperandID is a reference to another instruction's result id.
	OperandID OperandKind = iota
	// OperandLiteral is a literal number or enum value.
	OperandLiteral
	// OperandString is a literal string. The string occupies one logical
	// operand regardless of how many words it took in the binary.
	OperandString
)

// Operand is one typed operand word of an instruction.
type Operand struct {
	Kind OperandKind
	Word uint32
	Str  string // set only for OperandString
}

// ID returns an id operand.
func ID(v uint32) Operand { return Operand{Kind: OperandID, Word: v} }

// Lit returns a literal operand.
func Lit(v uint32) Operand { return Operand{Kind: OperandLiteral, Word: v} }

// Str returns a literal string operand.
func Str(s string) Operand { return Operand{Kind: OperandString, Str: s} }

// Instruction is one decoded instruction of a module. Instances are
// immutable once added to a State; checkers only read them.
//
// Operands holds the instruction's operands after the optional result
// type id and result id, in instruction order. For example an
// OpTypeFunction's operands are its return type id followed by its
// parameter type ids, and an OpFunctionCall's operands are the callee id
// followed by the argument ids.
type Instruction struct {
	Opcode   spv.Opcode
	TypeID   uint32 // 0 when the instruction has no result type
	ResultID uint32 // 0 when the instruction has no result
	Operands []Operand

	// Position is the instruction's 0-based index in module order,
	// assigned by State.Add.
	Position int
}

// ID returns operand i as an id, or 0 if out of range.
func (inst *Instruction) ID(i int) uint32 {
	if i < 0 || i >= len(inst.Operands) {
		return 0
	}
	return inst.Operands[i].Word
}

// Word returns operand i's raw word, or 0 if out of range.
func (inst *Instruction) Word(i int) uint32 {
	if i < 0 || i >= len(inst.Operands) {
		return 0
	}
	return inst.Operands[i].Word
}

// Text returns operand i as a literal string.
func (inst *Instruction) Text(i int) string {
	if i < 0 || i >= len(inst.Operands) {
		return ""
	}
	return inst.Operands[i].Str
}

// IsDebugInfo reports whether inst is a debug instruction: either one of
// the core name/source opcodes or an extended instruction from a debug
// information set.
func (inst *Instruction) IsDebugInfo(s *State) bool {
	if spv.IsDebug(inst.Opcode) {
		return true
	}
	if inst.Opcode == spv.OpExtInst {
		set := s.ExtInstImportName(inst.ID(0))
		switch set {
		case "DebugInfo", "OpenCL.DebugInfo.100", "NonSemantic.Shader.DebugInfo.100":
			return true
		}
	}
	return false
}

// IsNonSemantic reports whether inst is an extended instruction from a
// non-semantic instruction set.
func (inst *Instruction) IsNonSemantic(s *State) bool {
	if inst.Opcode != spv.OpExtInst {
		return false
	}
	set := s.ExtInstImportName(inst.ID(0))
	return len(set) >= 12 && set[:12] == "NonSemantic."
}
