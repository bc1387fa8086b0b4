// Package spv defines the SPIR-V vocabulary: opcodes, capabilities,
// storage classes, addressing and memory models, and decorations,
// together with the classification predicates the validator relies on.
//
// Enum values follow the SPIR-V specification. Only the subset consulted
// by the validation passes and the CLI tools is named; unknown values
// still round-trip through the numeric types.
package spv

import "fmt"

// MagicNumber identifies a SPIR-V binary module.
const MagicNumber = 0x07230203

// Version is a SPIR-V version as encoded in the module header.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// Word returns the header encoding of the version.
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// VersionFromWord decodes a header version word.
func VersionFromWord(w uint32) Version {
	return Version{Major: uint8(w >> 16), Minor: uint8(w >> 8)}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Opcode is a SPIR-V opcode, the low 16 bits of an instruction's first word.
type Opcode uint16

// Core opcodes.
const (
	OpNop                    Opcode = 0
	OpUndef                  Opcode = 1
	OpSourceContinued        Opcode = 2
	OpSource                 Opcode = 3
	OpSourceExtension        Opcode = 4
	OpName                   Opcode = 5
	OpMemberName             Opcode = 6
	OpString                 Opcode = 7
	OpLine                   Opcode = 8
	OpExtension              Opcode = 10
	OpExtInstImport          Opcode = 11
	OpExtInst                Opcode = 12
	OpMemoryModel            Opcode = 14
	OpEntryPoint             Opcode = 15
	OpExecutionMode          Opcode = 16
	OpCapability             Opcode = 17
	OpTypeVoid               Opcode = 19
	OpTypeBool               Opcode = 20
	OpTypeInt                Opcode = 21
	OpTypeFloat              Opcode = 22
	OpTypeVector             Opcode = 23
	OpTypeMatrix             Opcode = 24
	OpTypeImage              Opcode = 25
	OpTypeSampler            Opcode = 26
	OpTypeSampledImage       Opcode = 27
	OpTypeArray              Opcode = 28
	OpTypeRuntimeArray       Opcode = 29
	OpTypeStruct             Opcode = 30
	OpTypeOpaque             Opcode = 31
	OpTypePointer            Opcode = 32
	OpTypeFunction           Opcode = 33
	OpTypeEvent              Opcode = 34
	OpTypeDeviceEvent        Opcode = 35
	OpTypeReserveId          Opcode = 36
	OpTypeQueue              Opcode = 37
	OpTypePipe               Opcode = 38
	OpTypeForwardPointer     Opcode = 39
	OpConstantTrue           Opcode = 41
	OpConstantFalse          Opcode = 42
	OpConstant               Opcode = 43
	OpConstantComposite      Opcode = 44
	OpConstantSampler        Opcode = 45
	OpConstantNull           Opcode = 46
	OpSpecConstantTrue       Opcode = 48
	OpSpecConstantFalse      Opcode = 49
	OpSpecConstant           Opcode = 50
	OpSpecConstantComposite  Opcode = 51
	OpSpecConstantOp         Opcode = 52
	OpFunction               Opcode = 54
	OpFunctionParameter      Opcode = 55
	OpFunctionEnd            Opcode = 56
	OpFunctionCall           Opcode = 57
	OpVariable               Opcode = 59
	OpLoad                   Opcode = 61
	OpStore                  Opcode = 62
	OpCopyMemory             Opcode = 63
	OpAccessChain            Opcode = 65
	OpInBoundsAccessChain    Opcode = 66
	OpPtrAccessChain         Opcode = 67
	OpArrayLength            Opcode = 68
	OpInBoundsPtrAccessChain Opcode = 70
	OpDecorate               Opcode = 71
	OpMemberDecorate         Opcode = 72
	OpDecorationGroup        Opcode = 73
	OpGroupDecorate          Opcode = 74
	OpGroupMemberDecorate    Opcode = 75
	OpCompositeConstruct     Opcode = 80
	OpCompositeExtract       Opcode = 81
	OpConvertFToU            Opcode = 109
	OpConvertFToS            Opcode = 110
	OpConvertSToF            Opcode = 111
	OpConvertUToF            Opcode = 112
	OpUConvert               Opcode = 113
	OpSConvert               Opcode = 114
	OpFConvert               Opcode = 115
	OpQuantizeToF16          Opcode = 116
	OpConvertPtrToU          Opcode = 117
	OpConvertUToPtr          Opcode = 120
	OpPtrCastToGeneric       Opcode = 121
	OpGenericCastToPtr       Opcode = 122
	OpBitcast                Opcode = 124
	OpSNegate                Opcode = 126
	OpFNegate                Opcode = 127
	OpIAdd                   Opcode = 128
	OpFAdd                   Opcode = 129
	OpISub                   Opcode = 130
	OpFSub                   Opcode = 131
	OpIMul                   Opcode = 132
	OpFMul                   Opcode = 133
	OpUDiv                   Opcode = 134
	OpSDiv                   Opcode = 135
	OpFDiv                   Opcode = 136
	OpUMod                   Opcode = 137
	OpSRem                   Opcode = 138
	OpSMod                   Opcode = 139
	OpFRem                   Opcode = 140
	OpFMod                   Opcode = 141
	OpLabel                  Opcode = 248
	OpBranch                 Opcode = 249
	OpReturn                 Opcode = 253
	OpReturnValue            Opcode = 254
	OpUnreachable            Opcode = 255
	OpEnqueueKernel          Opcode = 292

	OpGetKernelNDrangeSubGroupCount           Opcode = 293
	OpGetKernelNDrangeMaxSubGroupSize         Opcode = 294
	OpGetKernelWorkGroupSize                  Opcode = 295
	OpGetKernelPreferredWorkGroupSizeMultiple Opcode = 296
	OpNoLine                                  Opcode = 317
	OpGetKernelLocalSizeForSubgroupCount      Opcode = 325
	OpGetKernelMaxNumSubgroups                Opcode = 326

	OpModuleProcessed Opcode = 330
	OpExecutionModeId Opcode = 331
	OpDecorateId      Opcode = 332
)

// Extension opcodes.
const (
	OpTypeTensorARM                   Opcode = 4163
	OpTypeUntypedPointerKHR           Opcode = 4417
	OpUntypedVariableKHR              Opcode = 4441
	OpTypeCooperativeMatrixKHR        Opcode = 4456
	OpTypeCooperativeVectorNV         Opcode = 5288
	OpTypeCooperativeMatrixNV         Opcode = 5358
	OpCooperativeMatrixReduceNV       Opcode = 5366
	OpCooperativeMatrixLoadTensorNV   Opcode = 5367
	OpCooperativeMatrixStoreTensorNV  Opcode = 5368
	OpCooperativeMatrixPerElementOpNV Opcode = 5369
	OpConstantFunctionPointerINTEL    Opcode = 5600
	OpFunctionPointerCallINTEL        Opcode = 5601
)

var opcodeNames = map[Opcode]string{
	OpNop: "OpNop", OpUndef: "OpUndef", OpSourceContinued: "OpSourceContinued",
	OpSource: "OpSource", OpSourceExtension: "OpSourceExtension",
	OpName: "OpName", OpMemberName: "OpMemberName", OpString: "OpString",
	OpLine: "OpLine", OpExtension: "OpExtension",
	OpExtInstImport: "OpExtInstImport", OpExtInst: "OpExtInst",
	OpMemoryModel: "OpMemoryModel", OpEntryPoint: "OpEntryPoint",
	OpExecutionMode: "OpExecutionMode", OpCapability: "OpCapability",
	OpTypeVoid: "OpTypeVoid", OpTypeBool: "OpTypeBool", OpTypeInt: "OpTypeInt",
	OpTypeFloat: "OpTypeFloat", OpTypeVector: "OpTypeVector",
	OpTypeMatrix: "OpTypeMatrix", OpTypeImage: "OpTypeImage",
	OpTypeSampler: "OpTypeSampler", OpTypeSampledImage: "OpTypeSampledImage",
	OpTypeArray: "OpTypeArray", OpTypeRuntimeArray: "OpTypeRuntimeArray",
	OpTypeStruct: "OpTypeStruct", OpTypeOpaque: "OpTypeOpaque",
	OpTypePointer: "OpTypePointer", OpTypeFunction: "OpTypeFunction",
	OpTypeEvent: "OpTypeEvent", OpTypeDeviceEvent: "OpTypeDeviceEvent",
	OpTypeReserveId: "OpTypeReserveId", OpTypeQueue: "OpTypeQueue",
	OpTypePipe: "OpTypePipe", OpTypeForwardPointer: "OpTypeForwardPointer",
	OpConstantTrue: "OpConstantTrue", OpConstantFalse: "OpConstantFalse",
	OpConstant: "OpConstant", OpConstantComposite: "OpConstantComposite",
	OpConstantSampler: "OpConstantSampler", OpConstantNull: "OpConstantNull",
	OpSpecConstantTrue: "OpSpecConstantTrue", OpSpecConstantFalse: "OpSpecConstantFalse",
	OpSpecConstant: "OpSpecConstant", OpSpecConstantComposite: "OpSpecConstantComposite",
	OpSpecConstantOp: "OpSpecConstantOp",
	OpFunction: "OpFunction", OpFunctionParameter: "OpFunctionParameter",
	OpFunctionEnd: "OpFunctionEnd", OpFunctionCall: "OpFunctionCall",
	OpVariable: "OpVariable", OpLoad: "OpLoad", OpStore: "OpStore",
	OpCopyMemory: "OpCopyMemory", OpAccessChain: "OpAccessChain",
	OpInBoundsAccessChain: "OpInBoundsAccessChain",
	OpPtrAccessChain: "OpPtrAccessChain", OpArrayLength: "OpArrayLength",
	OpInBoundsPtrAccessChain: "OpInBoundsPtrAccessChain",
	OpDecorate: "OpDecorate", OpMemberDecorate: "OpMemberDecorate",
	OpDecorationGroup: "OpDecorationGroup", OpGroupDecorate: "OpGroupDecorate",
	OpGroupMemberDecorate: "OpGroupMemberDecorate",
	OpCompositeConstruct: "OpCompositeConstruct", OpCompositeExtract: "OpCompositeExtract",
	OpConvertFToU: "OpConvertFToU", OpConvertFToS: "OpConvertFToS",
	OpConvertSToF: "OpConvertSToF", OpConvertUToF: "OpConvertUToF",
	OpUConvert: "OpUConvert", OpSConvert: "OpSConvert", OpFConvert: "OpFConvert",
	OpQuantizeToF16: "OpQuantizeToF16", OpConvertPtrToU: "OpConvertPtrToU",
	OpConvertUToPtr: "OpConvertUToPtr", OpPtrCastToGeneric: "OpPtrCastToGeneric",
	OpGenericCastToPtr: "OpGenericCastToPtr", OpBitcast: "OpBitcast",
	OpSNegate: "OpSNegate", OpFNegate: "OpFNegate",
	OpIAdd: "OpIAdd", OpFAdd: "OpFAdd", OpISub: "OpISub", OpFSub: "OpFSub",
	OpIMul: "OpIMul", OpFMul: "OpFMul", OpUDiv: "OpUDiv", OpSDiv: "OpSDiv",
	OpFDiv: "OpFDiv", OpUMod: "OpUMod", OpSRem: "OpSRem", OpSMod: "OpSMod",
	OpFRem: "OpFRem", OpFMod: "OpFMod",
	OpLabel: "OpLabel", OpBranch: "OpBranch", OpReturn: "OpReturn",
	OpReturnValue: "OpReturnValue", OpUnreachable: "OpUnreachable",
	OpEnqueueKernel: "OpEnqueueKernel",
	OpGetKernelNDrangeSubGroupCount:           "OpGetKernelNDrangeSubGroupCount",
	OpGetKernelNDrangeMaxSubGroupSize:         "OpGetKernelNDrangeMaxSubGroupSize",
	OpGetKernelWorkGroupSize:                  "OpGetKernelWorkGroupSize",
	OpGetKernelPreferredWorkGroupSizeMultiple: "OpGetKernelPreferredWorkGroupSizeMultiple",
	OpNoLine: "OpNoLine",
	OpGetKernelLocalSizeForSubgroupCount: "OpGetKernelLocalSizeForSubgroupCount",
	OpGetKernelMaxNumSubgroups:           "OpGetKernelMaxNumSubgroups",
	OpModuleProcessed: "OpModuleProcessed", OpExecutionModeId: "OpExecutionModeId",
	OpDecorateId: "OpDecorateId",
	OpTypeTensorARM:                   "OpTypeTensorARM",
	OpTypeUntypedPointerKHR:           "OpTypeUntypedPointerKHR",
	OpUntypedVariableKHR:              "OpUntypedVariableKHR",
	OpTypeCooperativeMatrixKHR:        "OpTypeCooperativeMatrixKHR",
	OpTypeCooperativeVectorNV:         "OpTypeCooperativeVectorNV",
	OpTypeCooperativeMatrixNV:         "OpTypeCooperativeMatrixNV",
	OpCooperativeMatrixReduceNV:       "OpCooperativeMatrixReduceNV",
	OpCooperativeMatrixLoadTensorNV:   "OpCooperativeMatrixLoadTensorNV",
	OpCooperativeMatrixStoreTensorNV:  "OpCooperativeMatrixStoreTensorNV",
	OpCooperativeMatrixPerElementOpNV: "OpCooperativeMatrixPerElementOpNV",
	OpConstantFunctionPointerINTEL:    "OpConstantFunctionPointerINTEL",
	OpFunctionPointerCallINTEL:        "OpFunctionPointerCallINTEL",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", uint16(op))
}

// Capability is a SPIR-V capability.
type Capability uint32

const (
	CapabilityMatrix        Capability = 0
	CapabilityShader        Capability = 1
	CapabilityGeometry      Capability = 2
	CapabilityTessellation  Capability = 3
	CapabilityAddresses     Capability = 4
	CapabilityLinkage       Capability = 5
	CapabilityKernel        Capability = 6
	CapabilityVector16      Capability = 7
	CapabilityFloat16Buffer Capability = 8
	CapabilityFloat16       Capability = 9
	CapabilityFloat64       Capability = 10
	CapabilityInt64         Capability = 11
	CapabilityInt64Atomics  Capability = 12
	CapabilityInt16         Capability = 22
	CapabilityInt8          Capability = 39

	CapabilityStorageBuffer16BitAccess      Capability = 4433
	CapabilityVariablePointersStorageBuffer Capability = 4441
	CapabilityVariablePointers              Capability = 4442
	CapabilityStorageBuffer8BitAccess       Capability = 4448
	CapabilityTensorsARM                    Capability = 4174
	CapabilityCooperativeMatrixNV           Capability = 5357
	CapabilityCooperativeVectorNV           Capability = 5394
	CapabilityFunctionPointersINTEL         Capability = 5603
	CapabilityCooperativeMatrixKHR          Capability = 6022
)

var capabilityNames = map[Capability]string{
	CapabilityMatrix: "Matrix", CapabilityShader: "Shader",
	CapabilityGeometry: "Geometry", CapabilityTessellation: "Tessellation",
	CapabilityAddresses: "Addresses", CapabilityLinkage: "Linkage",
	CapabilityKernel: "Kernel", CapabilityVector16: "Vector16",
	CapabilityFloat16Buffer: "Float16Buffer", CapabilityFloat16: "Float16",
	CapabilityFloat64: "Float64", CapabilityInt64: "Int64",
	CapabilityInt64Atomics: "Int64Atomics", CapabilityInt16: "Int16",
	CapabilityInt8: "Int8",
	CapabilityStorageBuffer16BitAccess:      "StorageBuffer16BitAccess",
	CapabilityVariablePointersStorageBuffer: "VariablePointersStorageBuffer",
	CapabilityVariablePointers:              "VariablePointers",
	CapabilityStorageBuffer8BitAccess:       "StorageBuffer8BitAccess",
	CapabilityTensorsARM:                    "TensorsARM",
	CapabilityCooperativeMatrixNV:           "CooperativeMatrixNV",
	CapabilityCooperativeVectorNV:           "CooperativeVectorNV",
	CapabilityFunctionPointersINTEL:         "FunctionPointersINTEL",
	CapabilityCooperativeMatrixKHR:          "CooperativeMatrixKHR",
}

func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Capability(%d)", uint32(c))
}

// StorageClass is a SPIR-V storage class.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12

	StorageClassPhysicalStorageBuffer StorageClass = 5349
)

var storageClassNames = map[StorageClass]string{
	StorageClassUniformConstant: "UniformConstant", StorageClassInput: "Input",
	StorageClassUniform: "Uniform", StorageClassOutput: "Output",
	StorageClassWorkgroup: "Workgroup", StorageClassCrossWorkgroup: "CrossWorkgroup",
	StorageClassPrivate: "Private", StorageClassFunction: "Function",
	StorageClassGeneric: "Generic", StorageClassPushConstant: "PushConstant",
	StorageClassAtomicCounter: "AtomicCounter", StorageClassImage: "Image",
	StorageClassStorageBuffer:         "StorageBuffer",
	StorageClassPhysicalStorageBuffer: "PhysicalStorageBuffer",
}

func (sc StorageClass) String() string {
	if s, ok := storageClassNames[sc]; ok {
		return s
	}
	return fmt.Sprintf("StorageClass(%d)", uint32(sc))
}

// AddressingModel is a SPIR-V addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2

	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

func (am AddressingModel) String() string {
	switch am {
	case AddressingModelLogical:
		return "Logical"
	case AddressingModelPhysical32:
		return "Physical32"
	case AddressingModelPhysical64:
		return "Physical64"
	case AddressingModelPhysicalStorageBuffer64:
		return "PhysicalStorageBuffer64"
	}
	return fmt.Sprintf("AddressingModel(%d)", uint32(am))
}

// MemoryModel is a SPIR-V memory model.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

func (mm MemoryModel) String() string {
	switch mm {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkan:
		return "Vulkan"
	}
	return fmt.Sprintf("MemoryModel(%d)", uint32(mm))
}

// Decoration is a SPIR-V decoration kind.
type Decoration uint32

const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecId           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationBuiltIn          Decoration = 11
	DecorationRestrict         Decoration = 19
	DecorationAliased          Decoration = 20
	DecorationVolatile         Decoration = 21
	DecorationCoherent         Decoration = 23
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationUniform          Decoration = 26
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
)

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision: "RelaxedPrecision", DecorationSpecId: "SpecId",
	DecorationBlock: "Block", DecorationBufferBlock: "BufferBlock",
	DecorationRowMajor: "RowMajor", DecorationColMajor: "ColMajor",
	DecorationArrayStride: "ArrayStride", DecorationMatrixStride: "MatrixStride",
	DecorationBuiltIn: "BuiltIn", DecorationRestrict: "Restrict",
	DecorationAliased: "Aliased", DecorationVolatile: "Volatile",
	DecorationCoherent: "Coherent", DecorationNonWritable: "NonWritable",
	DecorationNonReadable: "NonReadable", DecorationUniform: "Uniform",
	DecorationLocation: "Location", DecorationComponent: "Component",
	DecorationIndex: "Index", DecorationBinding: "Binding",
	DecorationDescriptorSet: "DescriptorSet", DecorationOffset: "Offset",
}

func (d Decoration) String() string {
	if s, ok := decorationNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Decoration(%d)", uint32(d))
}
