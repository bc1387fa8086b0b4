package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// op builds one instruction for direct State construction in tests.
func op(code spv.Opcode, typeID, resultID uint32, operands ...Operand) *Instruction {
	return &Instruction{
		Opcode:   code,
		TypeID:   typeID,
		ResultID: resultID,
		Operands: operands,
	}
}

// build populates a SPIR-V 1.0 state from insts in module order.
func build(opts Options, insts ...*Instruction) *State {
	return buildVersion(spv.Version1_0, opts, insts...)
}

func buildVersion(version spv.Version, opts Options, insts ...*Instruction) *State {
	s := NewState(version, opts)
	for _, inst := range insts {
		s.Add(inst)
	}
	return s
}

// Fixture ids shared by the function and constant tests. The prelude
// declares a void type, scalar types, a vec4 and the function types the
// scenarios call for.
const (
	tVoid    = 1
	tBool    = 2
	tInt32   = 3
	tFloat32 = 4
	tVec4    = 5
	tFnVoid  = 6 // void()
)

func prelude() []*Instruction {
	return []*Instruction{
		op(spv.OpTypeVoid, 0, tVoid),
		op(spv.OpTypeBool, 0, tBool),
		op(spv.OpTypeInt, 0, tInt32, Lit(32), Lit(0)),
		op(spv.OpTypeFloat, 0, tFloat32, Lit(32)),
		op(spv.OpTypeVector, 0, tVec4, ID(tFloat32), Lit(4)),
		op(spv.OpTypeFunction, 0, tFnVoid, ID(tVoid)),
	}
}
