package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// isCompositeType reports whether inst defines a type eligible as the
// result type of a composite constant. Tensor types qualify only when
// they carry an explicit shape operand.
func isCompositeType(inst *Instruction) bool {
	if inst == nil {
		return false
	}
	if inst.Opcode == spv.OpTypeTensorARM {
		return len(inst.Operands) == 3
	}
	return spv.IsComposite(inst.Opcode)
}

func validateConstantBool(s *State, inst *Instruction) error {
	typ := s.FindDef(inst.TypeID)
	if typ == nil || typ.Opcode != spv.OpTypeBool {
		return diagf(CodeInvalidID, inst,
			"%s Result Type <id> %s is not a boolean type.",
			inst.Opcode, s.IdName(inst.TypeID))
	}
	return nil
}

//nolint:gocognit,gocyclo,cyclop,funlen // one case per composite kind
func validateConstantComposite(s *State, inst *Instruction) error {
	resultType := s.FindDef(inst.TypeID)
	if !isCompositeType(resultType) {
		return diagf(CodeInvalidID, inst,
			"%s Result Type <id> %s is not a composite type.",
			inst.Opcode, s.IdName(inst.TypeID))
	}

	constituentCount := uint32(len(inst.Operands))
	switch resultType.Opcode {
	case spv.OpTypeVector, spv.OpTypeCooperativeVectorNV:
		componentCount := resultType.Word(1)
		countKnown := true
		if resultType.Opcode == spv.OpTypeCooperativeVectorNV {
			outcome, v := s.FoldInt32(resultType.ID(1))
			countKnown = outcome == FoldConstant
			componentCount = v
		}
		if countKnown && componentCount != constituentCount {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> count does not match Result Type <id> %s's vector component count.",
				inst.Opcode, s.IdName(resultType.ResultID))
		}
		componentType := s.FindDef(resultType.ID(0))
		if componentType == nil {
			return diagf(CodeInvalidID, resultType, "Component type is not defined.")
		}
		for i := 0; i < len(inst.Operands); i++ {
			constituentID := inst.ID(i)
			constituent := s.FindDef(constituentID)
			if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s is not a constant or undef.",
					inst.Opcode, s.IdName(constituentID))
			}
			constituentType := s.FindDef(constituent.TypeID)
			if constituentType == nil || componentType.ResultID != constituentType.ResultID {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s's type does not match Result Type <id> %s's vector element type.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
		}

	case spv.OpTypeMatrix:
		columnCount := resultType.Word(1)
		if columnCount != constituentCount {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> count does not match Result Type <id> %s's matrix column count.",
				inst.Opcode, s.IdName(resultType.ResultID))
		}
		columnType := s.FindDef(resultType.ID(0))
		if columnType == nil {
			return diagf(CodeInvalidID, resultType, "Column type is not defined.")
		}
		componentCount := columnType.Word(1)
		componentType := s.FindDef(columnType.ID(0))
		if componentType == nil {
			return diagf(CodeInvalidID, columnType, "Component type is not defined.")
		}
		for i := 0; i < len(inst.Operands); i++ {
			constituentID := inst.ID(i)
			constituent := s.FindDef(constituentID)
			if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
				// The message says "... or undef" because the specification
				// does not define undef as a constant.
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s is not a constant or undef.",
					inst.Opcode, s.IdName(constituentID))
			}
			vector := s.FindDef(constituent.TypeID)
			if vector == nil {
				return diagf(CodeInvalidID, constituent, "Result type is not defined.")
			}
			if columnType.Opcode != vector.Opcode {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s type does not match Result Type <id> %s's matrix column type.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
			vectorComponentType := s.FindDef(vector.ID(0))
			if vectorComponentType == nil || componentType.ResultID != vectorComponentType.ResultID {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s component type does not match Result Type <id> %s's matrix column component type.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
			if componentCount != vector.Word(1) {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s vector component count does not match Result Type <id> %s's vector component count.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
		}

	case spv.OpTypeArray:
		elementType := s.FindDef(resultType.ID(0))
		if elementType == nil {
			return diagf(CodeInvalidID, resultType, "Element type is not defined.")
		}
		length := s.FindDef(resultType.ID(1))
		if length == nil {
			return diagf(CodeInvalidID, resultType, "Length is not defined.")
		}
		if outcome, value := s.FoldInt32(length.ResultID); outcome == FoldConstant && value != constituentCount {
			return diagf(CodeInvalidID, inst,
				"%s Constituent count does not match Result Type <id> %s's array length.",
				inst.Opcode, s.IdName(resultType.ResultID))
		}
		for i := 0; i < len(inst.Operands); i++ {
			constituentID := inst.ID(i)
			constituent := s.FindDef(constituentID)
			if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s is not a constant or undef.",
					inst.Opcode, s.IdName(constituentID))
			}
			constituentType := s.FindDef(constituent.TypeID)
			if constituentType == nil {
				return diagf(CodeInvalidID, constituent, "Result type is not defined.")
			}
			if elementType.ResultID != constituentType.ResultID {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s's type does not match Result Type <id> %s's array element type.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
		}

	case spv.OpTypeStruct:
		memberCount := uint32(len(resultType.Operands))
		if memberCount != constituentCount {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s count does not match Result Type <id> %s's struct member count.",
				inst.Opcode, s.IdName(inst.TypeID), s.IdName(resultType.ResultID))
		}
		for i := 0; i < len(inst.Operands); i++ {
			constituentID := inst.ID(i)
			constituent := s.FindDef(constituentID)
			if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s is not a constant or undef.",
					inst.Opcode, s.IdName(constituentID))
			}
			constituentType := s.FindDef(constituent.TypeID)
			if constituentType == nil {
				return diagf(CodeInvalidID, constituent, "Result type is not defined.")
			}
			memberType := s.FindDef(resultType.ID(i))
			if memberType == nil || memberType.ResultID != constituentType.ResultID {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s type does not match the Result Type <id> %s's member type.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
		}

	case spv.OpTypeCooperativeMatrixKHR, spv.OpTypeCooperativeMatrixNV:
		if constituentCount != 1 {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s count must be one.",
				inst.Opcode, s.IdName(inst.TypeID))
		}
		constituentID := inst.ID(0)
		constituent := s.FindDef(constituentID)
		if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s is not a constant or undef.",
				inst.Opcode, s.IdName(constituentID))
		}
		constituentType := s.FindDef(constituent.TypeID)
		if constituentType == nil {
			return diagf(CodeInvalidID, constituent, "Result type is not defined.")
		}
		componentType := s.FindDef(resultType.ID(0))
		if componentType == nil || componentType.ResultID != constituentType.ResultID {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s type does not match the Result Type <id> %s's component type.",
				inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
		}

	case spv.OpTypeTensorARM:
		return validateTensorConstant(s, inst, resultType)
	}
	return nil
}

// validateTensorConstant checks the constituents of a composite constant
// whose result type is a shaped ranked tensor. Rank and shape operands
// fold best-effort; whatever does not fold skips only the check that
// needed it.
func validateTensorConstant(s *State, inst, resultType *Instruction) error {
	elementType := s.FindDef(resultType.ID(0))
	if elementType == nil {
		return diagf(CodeInvalidID, resultType, "Element type is not defined.")
	}
	rankInst := s.FindDef(resultType.ID(1))
	if rankInst == nil {
		return diagf(CodeInvalidID, resultType, "Rank is not defined.")
	}
	shapeInst := s.FindDef(resultType.ID(2))
	if shapeInst == nil {
		return diagf(CodeInvalidID, resultType, "Shape is not defined.")
	}

	constituentCount := uint64(len(inst.Operands))
	rank, _ := s.FoldUint64(rankInst.ResultID)

	if outermost, ok := s.FoldUint64(shapeInst.ID(0)); ok && outermost != constituentCount {
		return diagf(CodeInvalidID, inst,
			"%s Constituent count does not match the shape of Result Type <id> %s along its outermost dimension, expected %d but got %d.",
			inst.Opcode, s.IdName(resultType.ResultID), outermost, constituentCount)
	}

	for i := 0; i < len(inst.Operands); i++ {
		constituentID := inst.ID(i)
		constituent := s.FindDef(constituentID)
		if constituent == nil || !spv.IsConstantOrUndef(constituent.Opcode) {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s is not a constant or undef.",
				inst.Opcode, s.IdName(constituentID))
		}
		constituentType := s.FindDef(constituent.TypeID)
		if constituentType == nil {
			return diagf(CodeInvalidID, constituent,
				"Type of Constituent %d is not defined.", i)
		}

		if rank == 0 {
			// Rank is unknown; skip rank-dependent validation.
			continue
		}

		if rank == 1 {
			if elementType.ResultID != constituentType.ResultID {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s type does not match the element type of the tensor (%s).",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
			}
			continue
		}

		if constituentType.Opcode != spv.OpTypeTensorARM {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s must be an OpTypeTensorARM.",
				inst.Opcode, s.IdName(constituentID))
		}
		constituentElementType := s.FindDef(constituentType.ID(0))
		if constituentElementType == nil || constituentElementType.ResultID != elementType.ResultID {
			return diagf(CodeInvalidID, inst,
				"%s Constituent <id> %s must have the same Element Type as Result Type <id> %s.",
				inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID))
		}
		constituentRankInst := s.FindDef(constituentType.ID(1))
		if constituentRankInst != nil {
			if constituentRank, ok := s.FoldUint64(constituentRankInst.ResultID); ok && constituentRank != rank-1 {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s must have a Rank that is 1 less than the Rank of Result Type <id> %s, expected %d but got %d.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID),
					rank-1, constituentRank)
			}
		}
		constituentShape := s.FindDef(constituentType.ID(2))
		if constituentShape == nil {
			return diagf(CodeInvalidID, resultType,
				"Shape of Constituent %d is not defined.", i)
		}
		// Each dimension of the constituent's shape must match the
		// corresponding inner dimension of the result type's shape.
		for dim := 0; dim < len(constituentShape.Operands); dim++ {
			inner, innerOK := s.FoldUint64(constituentShape.ID(dim))
			outer, outerOK := s.FoldUint64(shapeInst.ID(dim + 1))
			if innerOK && outerOK && inner != outer {
				return diagf(CodeInvalidID, inst,
					"%s Constituent <id> %s must have a Shape that matches that of Result Type <id> %s along all inner dimensions of Result Type, expected %d for dimension %d of Constituent but got %d.",
					inst.Opcode, s.IdName(constituentID), s.IdName(resultType.ResultID),
					outer, dim, inner)
			}
		}
	}
	return nil
}

func validateConstantSampler(s *State, inst *Instruction) error {
	resultType := s.FindDef(inst.TypeID)
	if resultType == nil || resultType.Opcode != spv.OpTypeSampler {
		return diagf(CodeInvalidID, inst,
			"OpConstantSampler Result Type <id> %s is not a sampler type.",
			s.IdName(inst.TypeID))
	}
	return nil
}

// isTypeNullable reports whether the type defined by inst can take a
// null value. Composite components are tracked through the module so
// nullability is transitive.
func isTypeNullable(s *State, inst *Instruction) bool {
	if inst == nil {
		return false
	}
	switch inst.Opcode {
	case spv.OpTypeBool, spv.OpTypeInt, spv.OpTypeFloat, spv.OpTypeEvent,
		spv.OpTypeDeviceEvent, spv.OpTypeReserveId, spv.OpTypeQueue:
		return true
	case spv.OpTypeArray, spv.OpTypeMatrix, spv.OpTypeVector,
		spv.OpTypeCooperativeMatrixNV, spv.OpTypeCooperativeMatrixKHR,
		spv.OpTypeCooperativeVectorNV:
		return isTypeNullable(s, s.FindDef(inst.ID(0)))
	case spv.OpTypeStruct:
		for i := range inst.Operands {
			if !isTypeNullable(s, s.FindDef(inst.ID(i))) {
				return false
			}
		}
		return true
	case spv.OpTypePointer, spv.OpTypeUntypedPointerKHR:
		return spv.StorageClass(inst.Word(0)) != spv.StorageClassPhysicalStorageBuffer
	case spv.OpTypeTensorARM:
		// Only shaped tensors are nullable.
		return len(inst.Operands) == 3 && isTypeNullable(s, s.FindDef(inst.ID(0)))
	}
	return false
}

func validateConstantNull(s *State, inst *Instruction) error {
	resultType := s.FindDef(inst.TypeID)
	if resultType == nil || !isTypeNullable(s, resultType) {
		return diagf(CodeInvalidID, inst,
			"OpConstantNull Result Type <id> %s cannot have a null value.",
			s.IdName(inst.TypeID))
	}
	return nil
}

// validateSpecConstant checks that OpSpecConstant specializes to an
// integer or floating-point type.
func validateSpecConstant(s *State, inst *Instruction) error {
	typeInst := s.FindDef(inst.TypeID)
	if typeInst == nil ||
		(typeInst.Opcode != spv.OpTypeInt && typeInst.Opcode != spv.OpTypeFloat) {
		return diagf(CodeInvalidData, inst,
			"Specialization constant must be an integer or floating-point number.")
	}
	return nil
}

func validateSpecConstantOp(s *State, inst *Instruction) error {
	op := spv.Opcode(inst.Word(0))

	// The binary decode stage already ensures the embedded opcode is
	// valid for some environment; only the capability restrictions are
	// checked here.
	switch op {
	case spv.OpQuantizeToF16:
		if !s.HasCapability(spv.CapabilityShader) {
			return diagf(CodeInvalidID, inst,
				"Specialization constant operation %s requires Shader capability", op)
		}

	case spv.OpUConvert:
		if !s.Features().UConvertSpecConstantOp && !s.HasCapability(spv.CapabilityKernel) {
			return diagf(CodeInvalidID, inst,
				"Prior to SPIR-V 1.4, specialization constant operation UConvert requires Kernel capability or extension SPV_AMD_gpu_shader_int16")
		}

	case spv.OpConvertFToS, spv.OpConvertSToF, spv.OpConvertFToU,
		spv.OpConvertUToF, spv.OpConvertPtrToU, spv.OpConvertUToPtr,
		spv.OpGenericCastToPtr, spv.OpPtrCastToGeneric, spv.OpBitcast,
		spv.OpFNegate, spv.OpFAdd, spv.OpFSub, spv.OpFMul, spv.OpFDiv,
		spv.OpFRem, spv.OpFMod,
		spv.OpAccessChain, spv.OpInBoundsAccessChain,
		spv.OpPtrAccessChain, spv.OpInBoundsPtrAccessChain:
		if !s.HasCapability(spv.CapabilityKernel) {
			return diagf(CodeInvalidID, inst,
				"Specialization constant operation %s requires Kernel capability", op)
		}
	}
	return nil
}

func validateConstantFunctionPointer(s *State, inst *Instruction) error {
	if !s.HasCapability(spv.CapabilityFunctionPointersINTEL) {
		return diagf(CodeInvalidCapability, inst,
			"OpConstantFunctionPointerINTEL requires FunctionPointersINTEL capability")
	}

	resultType := s.FindDef(inst.TypeID)
	if resultType == nil || resultType.Opcode != spv.OpTypePointer {
		return diagf(CodeInvalidID, inst,
			"OpConstantFunctionPointerINTEL Result Type <id> %s is not a pointer type",
			s.IdName(inst.TypeID))
	}

	pointeeType := s.FindDef(resultType.ID(1))
	if pointeeType == nil || pointeeType.Opcode != spv.OpTypeFunction {
		return diagf(CodeInvalidID, inst,
			"OpConstantFunctionPointerINTEL Result Type <id> %s must be a pointer to function type",
			s.IdName(inst.TypeID))
	}

	functionID := inst.ID(0)
	function := s.FindDef(functionID)
	if function == nil {
		// Forward declaration; the reference is checked once the
		// function is defined.
		return nil
	}

	if function.Opcode != spv.OpFunction {
		return diagf(CodeInvalidID, inst,
			"OpConstantFunctionPointerINTEL Function operand <id> %s is not an OpFunction",
			s.IdName(functionID))
	}
	if function.ID(1) != pointeeType.ResultID {
		return diagf(CodeInvalidID, inst,
			"OpConstantFunctionPointerINTEL Function operand <id> %s type does not match the pointer's function type",
			s.IdName(functionID))
	}

	return nil
}

// ConstantPass dispatches the constant-family checks for one instruction.
func ConstantPass(s *State, inst *Instruction) error {
	var err error
	switch inst.Opcode {
	case spv.OpConstantTrue, spv.OpConstantFalse,
		spv.OpSpecConstantTrue, spv.OpSpecConstantFalse:
		err = validateConstantBool(s, inst)
	case spv.OpConstantComposite, spv.OpSpecConstantComposite:
		err = validateConstantComposite(s, inst)
	case spv.OpConstantSampler:
		err = validateConstantSampler(s, inst)
	case spv.OpConstantNull:
		err = validateConstantNull(s, inst)
	case spv.OpSpecConstant:
		err = validateSpecConstant(s, inst)
	case spv.OpSpecConstantOp:
		err = validateSpecConstantOp(s, inst)
	case spv.OpConstantFunctionPointerINTEL:
		err = validateConstantFunctionPointer(s, inst)
	}
	if err != nil {
		return err
	}

	// Creating 8- or 16-bit constants is generally disallowed unless the
	// fine-grained width capabilities are present.
	if spv.IsConstant(inst.Opcode) &&
		s.HasCapability(spv.CapabilityShader) &&
		!s.IsPointerType(inst.TypeID) &&
		s.ContainsLimitedUseIntOrFloatType(inst.TypeID) {
		return diagf(CodeInvalidID, inst, "Cannot form constants of 8- or 16-bit types")
	}

	return nil
}
