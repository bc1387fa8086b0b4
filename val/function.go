package val

import "github.com/CHIP-SPV/SPIRV-Tools/spv"

// functionResultConsumers are the opcodes allowed to reference a
// function's result id. Debug and non-semantic instructions are exempt
// from the list; OpConstantFunctionPointerINTEL is allowed only when its
// capability is declared.
var functionResultConsumers = map[spv.Opcode]bool{
	spv.OpGroupDecorate:                           true,
	spv.OpDecorate:                                true,
	spv.OpEnqueueKernel:                           true,
	spv.OpEntryPoint:                              true,
	spv.OpExecutionMode:                           true,
	spv.OpExecutionModeId:                         true,
	spv.OpFunctionCall:                            true,
	spv.OpGetKernelNDrangeSubGroupCount:           true,
	spv.OpGetKernelNDrangeMaxSubGroupSize:         true,
	spv.OpGetKernelWorkGroupSize:                  true,
	spv.OpGetKernelPreferredWorkGroupSizeMultiple: true,
	spv.OpGetKernelLocalSizeForSubgroupCount:      true,
	spv.OpGetKernelMaxNumSubgroups:                true,
	spv.OpName:                                    true,
	spv.OpCooperativeMatrixPerElementOpNV:         true,
	spv.OpCooperativeMatrixReduceNV:               true,
	spv.OpCooperativeMatrixLoadTensorNV:           true,
}

func validateFunction(s *State, inst *Instruction) error {
	functionTypeID := inst.ID(1)
	functionType := s.FindDef(functionTypeID)
	if functionType == nil || functionType.Opcode != spv.OpTypeFunction {
		return diagf(CodeInvalidID, inst,
			"OpFunction Function Type <id> %s is not a function type.",
			s.IdName(functionTypeID))
	}

	returnID := functionType.ID(0)
	if returnID != inst.TypeID {
		return diagf(CodeInvalidID, inst,
			"OpFunction Result Type <id> %s does not match the Function Type's return type <id> %s.",
			s.IdName(inst.TypeID), s.IdName(returnID))
	}

	allowFunctionPointer := s.HasCapability(spv.CapabilityFunctionPointersINTEL)
	for _, use := range s.Uses(inst.ResultID) {
		if functionResultConsumers[use.Opcode] {
			continue
		}
		if allowFunctionPointer && use.Opcode == spv.OpConstantFunctionPointerINTEL {
			continue
		}
		if use.IsNonSemantic(s) || use.IsDebugInfo(s) {
			continue
		}
		return diagf(CodeInvalidID, use,
			"Invalid use of function result id %s.", s.IdName(inst.ResultID))
	}

	return nil
}

func validateFunctionParameter(s *State, inst *Instruction) error {
	if inst.Position == 0 {
		return diagf(CodeInvalidLayout, inst,
			"Function parameter cannot be the first instruction.")
	}

	// Scan backward for the owning OpFunction; parameters between it and
	// this instruction determine the ordinal index.
	paramIndex := 0
	var function *Instruction
	insts := s.Instructions()
	for i := inst.Position - 1; i >= 0; i-- {
		switch insts[i].Opcode {
		case spv.OpFunction:
			function = insts[i]
		case spv.OpFunctionParameter:
			paramIndex++
		}
		if function != nil {
			break
		}
	}
	if function == nil {
		return diagf(CodeInvalidLayout, inst,
			"Function parameter must be preceded by a function.")
	}

	functionType := s.FindDef(function.ID(1))
	if functionType == nil {
		return diagf(CodeInvalidID, function, "Missing function type definition.")
	}
	paramCount := len(functionType.Operands) - 1
	if paramIndex >= paramCount {
		return diagf(CodeInvalidID, inst,
			"Too many OpFunctionParameters for %d: expected %d based on the function's type",
			function.ResultID, paramCount)
	}

	paramType := s.FindDef(functionType.ID(paramIndex + 1))
	if paramType == nil || inst.TypeID != paramType.ResultID {
		return diagf(CodeInvalidID, inst,
			"OpFunctionParameter Result Type <id> %s does not match the OpTypeFunction parameter type of the same index.",
			s.IdName(inst.TypeID))
	}

	return nil
}

//nolint:gocognit,gocyclo,cyclop // mirrors the rule structure, one block per argument check
func validateFunctionCall(s *State, inst *Instruction) error {
	functionID := inst.ID(0)
	function := s.FindDef(functionID)
	if function == nil || function.Opcode != spv.OpFunction {
		return diagf(CodeInvalidID, inst,
			"OpFunctionCall Function <id> %s is not a function.", s.IdName(functionID))
	}

	returnType := s.FindDef(function.TypeID)
	if returnType == nil || returnType.ResultID != inst.TypeID {
		return diagf(CodeInvalidID, inst,
			"OpFunctionCall Result Type <id> %s's type does not match Function <id> %s's return type.",
			s.IdName(inst.TypeID), s.IdName(function.TypeID))
	}

	functionType := s.FindDef(function.ID(1))
	if functionType == nil || functionType.Opcode != spv.OpTypeFunction {
		return diagf(CodeInvalidID, inst, "Missing function type definition.")
	}

	argCount := len(inst.Operands) - 1
	paramCount := len(functionType.Operands) - 1
	if argCount != paramCount {
		return diagf(CodeInvalidID, inst,
			"OpFunctionCall Function <id>'s parameter count does not match the argument count.")
	}

	for i := 0; i < argCount; i++ {
		argumentID := inst.ID(i + 1)
		argument := s.FindDef(argumentID)
		if argument == nil {
			return diagf(CodeInvalidID, inst, "Missing argument %d definition.", i)
		}
		argumentType := s.FindDef(argument.TypeID)
		if argumentType == nil {
			return diagf(CodeInvalidID, inst, "Missing argument %d type definition.", i)
		}

		parameterTypeID := functionType.ID(i + 1)
		parameterType := s.FindDef(parameterTypeID)
		if parameterType == nil || argumentType.ResultID != parameterType.ResultID {
			if parameterType == nil || !s.Opts().BeforeHLSLLegalization ||
				!s.PointeesLogicallyMatch(argumentType, parameterType) {
				return diagf(CodeInvalidID, inst,
					"OpFunctionCall Argument <id> %s's type does not match Function <id> %s's parameter type.",
					s.IdName(argumentID), s.IdName(parameterTypeID))
			}
		}

		if s.AddressingModel() != spv.AddressingModelLogical {
			continue
		}
		isPointerParam := parameterType.Opcode == spv.OpTypePointer ||
			parameterType.Opcode == spv.OpTypeUntypedPointerKHR
		if !isPointerParam || s.Opts().RelaxLogicalPointer {
			continue
		}

		sc := spv.StorageClass(parameterType.Word(0))
		switch sc {
		case spv.StorageClassUniformConstant,
			spv.StorageClassFunction,
			spv.StorageClassPrivate,
			spv.StorageClassWorkgroup,
			spv.StorageClassAtomicCounter:
			// Always allowed as pointer operands.
		case spv.StorageClassStorageBuffer:
			if !s.Features().VariablePointers {
				return diagf(CodeInvalidID, inst,
					"StorageBuffer pointer operand %s requires a variable pointers capability",
					s.IdName(argumentID))
			}
		default:
			return diagf(CodeInvalidID, inst,
				"Invalid storage class for pointer operand %s", s.IdName(argumentID))
		}

		if argument.Opcode != spv.OpVariable &&
			argument.Opcode != spv.OpUntypedVariableKHR &&
			argument.Opcode != spv.OpFunctionParameter {
			ssboVptr := s.HasCapability(spv.CapabilityVariablePointersStorageBuffer) &&
				sc == spv.StorageClassStorageBuffer
			wgVptr := s.HasCapability(spv.CapabilityVariablePointers) &&
				sc == spv.StorageClassWorkgroup
			ucPtr := sc == spv.StorageClassUniformConstant
			if !s.Opts().BeforeHLSLLegalization && !ssboVptr && !wgVptr && !ucPtr {
				return diagf(CodeInvalidID, inst,
					"Pointer operand %s must be a memory object declaration",
					s.IdName(argumentID))
			}
		}
	}
	return nil
}

func validateCooperativeMatrixPerElementOp(s *State, inst *Instruction) error {
	functionID := inst.ID(1)
	function := s.FindDef(functionID)
	if function == nil || function.Opcode != spv.OpFunction {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV Function <id> %s is not a function.",
			s.IdName(functionID))
	}

	matrixID := inst.ID(0)
	matrix := s.FindDef(matrixID)
	if matrix == nil || !s.IsCooperativeMatrixKHRType(matrix.TypeID) {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV Matrix <id> %s is not a cooperative matrix.",
			s.IdName(matrixID))
	}
	matrixTypeID := matrix.TypeID

	if matrixTypeID != inst.TypeID {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV Result Type <id> %s must match matrix type <id> %s.",
			s.IdName(inst.TypeID), s.IdName(matrixTypeID))
	}

	matrixComponentTypeID := s.FindDef(matrixTypeID).ID(0)
	functionTypeID := function.ID(1)
	functionType := s.FindDef(functionTypeID)
	if functionType == nil {
		return diagf(CodeInvalidID, inst, "Missing function type definition.")
	}
	returnTypeID := functionType.ID(0)
	if returnTypeID != matrixComponentTypeID {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV function return type <id> %s must match matrix component type <id> %s.",
			s.IdName(returnTypeID), s.IdName(matrixComponentTypeID))
	}

	if len(functionType.Operands) < 4 {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV function type <id> %s must have a least three parameters.",
			s.IdName(functionTypeID))
	}

	param0 := functionType.ID(1)
	param1 := functionType.ID(2)
	param2 := functionType.ID(3)
	if !s.IsIntScalarType(param0) || s.GetBitWidth(param0) != 32 {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV function type first parameter type <id> %s must be a 32-bit integer.",
			s.IdName(param0))
	}
	if !s.IsIntScalarType(param1) || s.GetBitWidth(param1) != 32 {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV function type second parameter type <id> %s must be a 32-bit integer.",
			s.IdName(param1))
	}
	if param2 != matrixComponentTypeID {
		return diagf(CodeInvalidID, inst,
			"OpCooperativeMatrixPerElementOpNV function type third parameter type <id> %s must match matrix component type.",
			s.IdName(param2))
	}

	return nil
}

// FunctionPass dispatches the function-family checks for one instruction.
func FunctionPass(s *State, inst *Instruction) error {
	switch inst.Opcode {
	case spv.OpFunction:
		return validateFunction(s, inst)
	case spv.OpFunctionParameter:
		return validateFunctionParameter(s, inst)
	case spv.OpFunctionCall:
		return validateFunctionCall(s, inst)
	case spv.OpCooperativeMatrixPerElementOpNV:
		return validateCooperativeMatrixPerElementOp(s, inst)
	}
	return nil
}
