package val

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/CHIP-SPV/SPIRV-Tools/spv"
)

// Parse decodes a SPIR-V binary into a fully populated State ready for
// Validate. The decode is structural: the word stream is split into
// instructions and each operand word is typed (id, literal, string) for
// the opcodes the validator consults; operands of unrecognized opcodes
// are kept as untyped literals and do not contribute to the use table.
func Parse(data []byte, opts Options) (*State, error) {
	if len(data) < 20 {
		return nil, fmt.Errorf("module too small: %d bytes", len(data))
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("module size %d is not a multiple of the word size", len(data))
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != spv.MagicNumber {
		return nil, fmt.Errorf("invalid magic number 0x%08X", magic)
	}
	version := spv.VersionFromWord(binary.LittleEndian.Uint32(data[4:8]))

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	s := NewState(version, opts)
	offset := 5 // past the header
	for offset < len(words) {
		first := words[offset]
		opcode := spv.Opcode(first & 0xFFFF)
		wordCount := int(first >> 16)
		if wordCount == 0 || offset+wordCount > len(words) {
			return nil, fmt.Errorf("invalid word count %d at word offset %d", wordCount, offset)
		}

		inst, err := decodeInstruction(opcode, words[offset+1:offset+wordCount])
		if err != nil {
			return nil, fmt.Errorf("word offset %d: %w", offset, err)
		}
		s.Add(inst)
		offset += wordCount
	}

	return s, nil
}

// hasResult reports whether op produces a result id and whether it also
// carries a result type id.
func hasResult(op spv.Opcode) (hasType, hasID bool) {
	switch op {
	case spv.OpUndef, spv.OpExtInst, spv.OpConstantTrue, spv.OpConstantFalse,
		spv.OpConstant, spv.OpConstantComposite, spv.OpConstantSampler,
		spv.OpConstantNull, spv.OpSpecConstantTrue, spv.OpSpecConstantFalse,
		spv.OpSpecConstant, spv.OpSpecConstantComposite, spv.OpSpecConstantOp,
		spv.OpFunction, spv.OpFunctionParameter, spv.OpFunctionCall,
		spv.OpVariable, spv.OpUntypedVariableKHR, spv.OpLoad,
		spv.OpAccessChain, spv.OpInBoundsAccessChain, spv.OpPtrAccessChain,
		spv.OpInBoundsPtrAccessChain, spv.OpArrayLength,
		spv.OpCompositeConstruct, spv.OpCompositeExtract,
		spv.OpConstantFunctionPointerINTEL,
		spv.OpCooperativeMatrixPerElementOpNV:
		return true, true
	case spv.OpExtInstImport, spv.OpString, spv.OpTypeVoid, spv.OpTypeBool,
		spv.OpTypeInt, spv.OpTypeFloat, spv.OpTypeVector, spv.OpTypeMatrix,
		spv.OpTypeImage, spv.OpTypeSampler, spv.OpTypeSampledImage,
		spv.OpTypeArray, spv.OpTypeRuntimeArray, spv.OpTypeStruct,
		spv.OpTypeOpaque, spv.OpTypePointer, spv.OpTypeFunction,
		spv.OpTypeEvent, spv.OpTypeDeviceEvent, spv.OpTypeReserveId,
		spv.OpTypeQueue, spv.OpTypePipe, spv.OpTypeUntypedPointerKHR,
		spv.OpTypeTensorARM, spv.OpTypeCooperativeMatrixNV,
		spv.OpTypeCooperativeMatrixKHR, spv.OpTypeCooperativeVectorNV,
		spv.OpDecorationGroup, spv.OpLabel:
		return false, true
	}
	return false, false
}

func decodeInstruction(op spv.Opcode, body []uint32) (*Instruction, error) {
	inst := &Instruction{Opcode: op}
	hasType, hasID := hasResult(op)
	i := 0
	if hasType {
		if len(body) < 2 {
			return nil, fmt.Errorf("%s: truncated instruction", op)
		}
		inst.TypeID = body[0]
		inst.ResultID = body[1]
		i = 2
	} else if hasID {
		if len(body) < 1 {
			return nil, fmt.Errorf("%s: truncated instruction", op)
		}
		inst.ResultID = body[0]
		i = 1
	}
	inst.Operands = decodeOperands(op, body[i:])
	return inst, nil
}

// decodeString reads a NUL-terminated UTF-8 literal starting at words[0]
// and returns it with the number of words consumed.
func decodeString(words []uint32) (string, int) {
	var sb strings.Builder
	for i, w := range words {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(b)
		}
	}
	return sb.String(), len(words)
}

// typed assigns operand kinds to words: a fixed prefix of kinds followed
// by a uniform rest kind.
func typed(words []uint32, prefix []OperandKind, rest OperandKind) []Operand {
	ops := make([]Operand, 0, len(words))
	for i, w := range words {
		kind := rest
		if i < len(prefix) {
			kind = prefix[i]
		}
		ops = append(ops, Operand{Kind: kind, Word: w})
	}
	return ops
}

//nolint:gocyclo,cyclop,funlen // one case per decoded opcode family
func decodeOperands(op spv.Opcode, words []uint32) []Operand {
	lit := OperandLiteral
	id := OperandID

	switch op {
	case spv.OpCapability, spv.OpMemoryModel, spv.OpTypeInt, spv.OpTypeFloat,
		spv.OpConstant, spv.OpSpecConstant, spv.OpConstantSampler,
		spv.OpLabel, spv.OpTypeVoid, spv.OpTypeBool, spv.OpTypeSampler,
		spv.OpTypeEvent, spv.OpTypeDeviceEvent, spv.OpTypeReserveId,
		spv.OpTypeQueue, spv.OpLine, spv.OpNoLine:
		return typed(words, nil, lit)

	case spv.OpSource:
		// Language and version literals; optional file id and source text
		// are dropped from the operand view.
		return typed(words, []OperandKind{lit, lit, id}, lit)

	case spv.OpExtension, spv.OpSourceExtension, spv.OpModuleProcessed,
		spv.OpExtInstImport, spv.OpString:
		str, _ := decodeString(words)
		return []Operand{{Kind: OperandString, Str: str}}

	case spv.OpName:
		if len(words) < 1 {
			return nil
		}
		str, _ := decodeString(words[1:])
		return []Operand{{Kind: OperandID, Word: words[0]}, {Kind: OperandString, Str: str}}

	case spv.OpMemberName:
		if len(words) < 2 {
			return typed(words, nil, lit)
		}
		str, _ := decodeString(words[2:])
		return []Operand{
			{Kind: OperandID, Word: words[0]},
			{Kind: OperandLiteral, Word: words[1]},
			{Kind: OperandString, Str: str},
		}

	case spv.OpEntryPoint:
		if len(words) < 2 {
			return typed(words, nil, lit)
		}
		str, n := decodeString(words[2:])
		ops := []Operand{
			{Kind: OperandLiteral, Word: words[0]},
			{Kind: OperandID, Word: words[1]},
			{Kind: OperandString, Str: str},
		}
		for _, w := range words[2+n:] {
			ops = append(ops, Operand{Kind: OperandID, Word: w})
		}
		return ops

	case spv.OpExecutionMode, spv.OpExecutionModeId:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpDecorate, spv.OpDecorateId:
		return typed(words, []OperandKind{id, lit}, lit)

	case spv.OpMemberDecorate:
		return typed(words, []OperandKind{id, lit, lit}, lit)

	case spv.OpGroupDecorate, spv.OpGroupMemberDecorate:
		return typed(words, nil, id)

	case spv.OpTypeVector, spv.OpTypeMatrix:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpTypeArray, spv.OpTypeStruct, spv.OpTypeFunction,
		spv.OpTypeRuntimeArray, spv.OpTypeSampledImage,
		spv.OpTypeTensorARM, spv.OpTypeCooperativeMatrixNV,
		spv.OpTypeCooperativeMatrixKHR, spv.OpTypeCooperativeVectorNV:
		return typed(words, nil, id)

	case spv.OpTypeImage:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpTypePointer:
		return typed(words, []OperandKind{lit}, id)

	case spv.OpTypeUntypedPointerKHR:
		return typed(words, nil, lit)

	case spv.OpTypeForwardPointer:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpConstantComposite, spv.OpSpecConstantComposite,
		spv.OpCompositeConstruct, spv.OpFunctionCall,
		spv.OpConstantFunctionPointerINTEL, spv.OpCooperativeMatrixPerElementOpNV,
		spv.OpAccessChain, spv.OpInBoundsAccessChain, spv.OpPtrAccessChain,
		spv.OpInBoundsPtrAccessChain, spv.OpStore, spv.OpBranch,
		spv.OpReturnValue, spv.OpArrayLength, spv.OpUndef:
		return typed(words, nil, id)

	case spv.OpSpecConstantOp:
		return typed(words, []OperandKind{lit}, id)

	case spv.OpFunction:
		return typed(words, []OperandKind{lit, id}, id)

	case spv.OpVariable:
		return typed(words, []OperandKind{lit}, id)

	case spv.OpUntypedVariableKHR:
		return typed(words, []OperandKind{lit}, id)

	case spv.OpLoad:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpCompositeExtract:
		return typed(words, []OperandKind{id}, lit)

	case spv.OpExtInst:
		return typed(words, []OperandKind{id, lit}, id)
	}

	// Unknown opcode: keep the words but do not treat them as ids.
	return typed(words, nil, lit)
}
