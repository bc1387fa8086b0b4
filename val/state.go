package val

import (
	"strconv"

	"github.com/CHIP-SPV/SPIRV-Tools/spv"
)

// Options are the caller-supplied relaxations for one validation run.
type Options struct {
	// RelaxLogicalPointer disables the storage-class and
	// memory-object-declaration checks on pointer arguments under the
	// Logical addressing model.
	RelaxLogicalPointer bool

	// BeforeHLSLLegalization accepts call-argument pointer types that
	// only logically match the parameter type, and relaxes the
	// memory-object-declaration requirement. Intended for modules that
	// have not yet been legalized.
	BeforeHLSLLegalization bool
}

// Features are relaxations derived from the module's declared
// capabilities, extensions and version. They are computed while the
// state is built and are read-only afterwards.
type Features struct {
	VariablePointers              bool
	VariablePointersStorageBuffer bool

	// UConvertSpecConstantOp permits OpUConvert inside OpSpecConstantOp
	// without the Kernel capability (SPIR-V 1.4+, or the
	// SPV_AMD_gpu_shader_int16 extension).
	UConvertSpecConstantOp bool
}

// State holds everything the rule checkers consult: the ordered
// instruction sequence, the id definition and use tables, the decoration
// table, and the module context (capabilities, models, features,
// options). It is fully populated before Validate runs and is never
// mutated by a checker.
type State struct {
	opts    Options
	version spv.Version

	insts []*Instruction
	defs  map[uint32]*Instruction
	uses  map[uint32][]*Instruction

	decorations map[uint32][]Decoration
	names       map[uint32]string
	extImports  map[uint32]string

	capabilities map[spv.Capability]bool
	extensions   map[string]bool
	addressing   spv.AddressingModel
	memory       spv.MemoryModel
	features     Features
}

// NewState returns an empty state for a module of the given version.
func NewState(version spv.Version, opts Options) *State {
	s := &State{
		opts:         opts,
		version:      version,
		defs:         make(map[uint32]*Instruction),
		uses:         make(map[uint32][]*Instruction),
		decorations:  make(map[uint32][]Decoration),
		names:        make(map[uint32]string),
		extImports:   make(map[uint32]string),
		capabilities: make(map[spv.Capability]bool),
		extensions:   make(map[string]bool),
	}
	if version.AtLeast(spv.Version1_4) {
		s.features.UConvertSpecConstantOp = true
	}
	return s
}

// Add appends inst in module order, assigns its position, registers its
// definition and id-operand uses, and folds module-level instructions
// (capabilities, extensions, memory model, decorations, names) into the
// context.
func (s *State) Add(inst *Instruction) {
	inst.Position = len(s.insts)
	s.insts = append(s.insts, inst)

	if inst.ResultID != 0 {
		s.defs[inst.ResultID] = inst
	}
	if inst.TypeID != 0 {
		s.uses[inst.TypeID] = append(s.uses[inst.TypeID], inst)
	}
	for _, op := range inst.Operands {
		if op.Kind == OperandID {
			s.uses[op.Word] = append(s.uses[op.Word], inst)
		}
	}

	switch inst.Opcode {
	case spv.OpCapability:
		s.registerCapability(spv.Capability(inst.Word(0)))
	case spv.OpExtension:
		s.registerExtension(inst.Text(0))
	case spv.OpMemoryModel:
		s.addressing = spv.AddressingModel(inst.Word(0))
		s.memory = spv.MemoryModel(inst.Word(1))
	case spv.OpName:
		s.names[inst.ID(0)] = inst.Text(1)
	case spv.OpExtInstImport:
		s.extImports[inst.ResultID] = inst.Text(0)
	case spv.OpDecorate, spv.OpDecorateId:
		params := make([]uint32, 0, len(inst.Operands)-2)
		for i := 2; i < len(inst.Operands); i++ {
			params = append(params, inst.Word(i))
		}
		s.decorations[inst.ID(0)] = append(s.decorations[inst.ID(0)], Decoration{
			Kind:   spv.Decoration(inst.Word(1)),
			Params: params,
			Member: -1,
		})
	case spv.OpMemberDecorate:
		params := make([]uint32, 0, len(inst.Operands)-3)
		for i := 3; i < len(inst.Operands); i++ {
			params = append(params, inst.Word(i))
		}
		s.decorations[inst.ID(0)] = append(s.decorations[inst.ID(0)], Decoration{
			Kind:   spv.Decoration(inst.Word(2)),
			Params: params,
			Member: int(inst.Word(1)),
		})
	}
}

func (s *State) registerCapability(c spv.Capability) {
	s.capabilities[c] = true
	switch c {
	case spv.CapabilityVariablePointers:
		s.features.VariablePointers = true
	case spv.CapabilityVariablePointersStorageBuffer:
		s.features.VariablePointers = true
		s.features.VariablePointersStorageBuffer = true
	}
}

func (s *State) registerExtension(name string) {
	s.extensions[name] = true
	if name == "SPV_AMD_gpu_shader_int16" {
		s.features.UConvertSpecConstantOp = true
	}
}

// Instructions returns the module's instructions in module order.
func (s *State) Instructions() []*Instruction { return s.insts }

// FindDef returns the instruction defining id, or nil.
func (s *State) FindDef(id uint32) *Instruction { return s.defs[id] }

// Uses returns every instruction that references id through an id
// operand or a result type, in module order.
func (s *State) Uses(id uint32) []*Instruction { return s.uses[id] }

// Decorations returns the decoration set attached to id.
func (s *State) Decorations(id uint32) []Decoration { return s.decorations[id] }

// HasCapability reports whether the module declared c.
func (s *State) HasCapability(c spv.Capability) bool { return s.capabilities[c] }

// HasExtension reports whether the module declared the named extension.
func (s *State) HasExtension(name string) bool { return s.extensions[name] }

// AddressingModel returns the module's declared addressing model.
func (s *State) AddressingModel() spv.AddressingModel { return s.addressing }

// MemoryModel returns the module's declared memory model.
func (s *State) MemoryModel() spv.MemoryModel { return s.memory }

// Version returns the module version the state was built for.
func (s *State) Version() spv.Version { return s.version }

// Features returns the capability/extension/version derived feature flags.
func (s *State) Features() Features { return s.features }

// Opts returns the caller-supplied options.
func (s *State) Opts() Options { return s.opts }

// ExtInstImportName returns the name of the extended instruction set
// imported under id, or "".
func (s *State) ExtInstImportName(id uint32) string { return s.extImports[id] }

// IdName renders id for diagnostics as "N[%name]", using the OpName
// string when one was declared and the numeric id otherwise.
func (s *State) IdName(id uint32) string {
	name, ok := s.names[id]
	if !ok || name == "" {
		name = strconv.FormatUint(uint64(id), 10)
	}
	return strconv.FormatUint(uint64(id), 10) + "[%" + name + "]"
}

// IsIntScalarType reports whether id defines an integer scalar type.
func (s *State) IsIntScalarType(id uint32) bool {
	def := s.FindDef(id)
	return def != nil && def.Opcode == spv.OpTypeInt
}

// IsFloatScalarType reports whether id defines a floating-point scalar type.
func (s *State) IsFloatScalarType(id uint32) bool {
	def := s.FindDef(id)
	return def != nil && def.Opcode == spv.OpTypeFloat
}

// GetBitWidth returns the width in bits of an integer or float scalar
// type id, or 0 for anything else.
func (s *State) GetBitWidth(id uint32) uint32 {
	def := s.FindDef(id)
	if def == nil {
		return 0
	}
	switch def.Opcode {
	case spv.OpTypeInt, spv.OpTypeFloat:
		return def.Word(0)
	}
	return 0
}

// IsPointerType reports whether id defines a (typed or untyped) pointer type.
func (s *State) IsPointerType(id uint32) bool {
	def := s.FindDef(id)
	if def == nil {
		return false
	}
	return def.Opcode == spv.OpTypePointer || def.Opcode == spv.OpTypeUntypedPointerKHR
}

// IsCooperativeMatrixKHRType reports whether id defines a cooperative
// matrix type.
func (s *State) IsCooperativeMatrixKHRType(id uint32) bool {
	def := s.FindDef(id)
	return def != nil && def.Opcode == spv.OpTypeCooperativeMatrixKHR
}

// ContainsLimitedUseIntOrFloatType reports whether the type id
// transitively contains an 8- or 16-bit integer or float representation
// whose fine-grained capability is absent. Pointee types are not
// traversed.
func (s *State) ContainsLimitedUseIntOrFloatType(id uint32) bool {
	if !s.HasCapability(spv.CapabilityInt16) && s.containsSizedType(id, spv.OpTypeInt, 16) {
		return true
	}
	if !s.HasCapability(spv.CapabilityInt8) && s.containsSizedType(id, spv.OpTypeInt, 8) {
		return true
	}
	if !s.HasCapability(spv.CapabilityFloat16) && s.containsSizedType(id, spv.OpTypeFloat, 16) {
		return true
	}
	return false
}

func (s *State) containsSizedType(id uint32, op spv.Opcode, width uint32) bool {
	def := s.FindDef(id)
	if def == nil {
		return false
	}
	switch def.Opcode {
	case spv.OpTypeInt, spv.OpTypeFloat:
		return def.Opcode == op && def.Word(0) == width
	case spv.OpTypeVector, spv.OpTypeMatrix, spv.OpTypeArray,
		spv.OpTypeRuntimeArray, spv.OpTypeCooperativeMatrixNV,
		spv.OpTypeCooperativeMatrixKHR, spv.OpTypeCooperativeVectorNV,
		spv.OpTypeTensorARM:
		return s.containsSizedType(def.ID(0), op, width)
	case spv.OpTypeStruct:
		for i := range def.Operands {
			if s.containsSizedType(def.ID(i), op, width) {
				return true
			}
		}
	}
	return false
}
