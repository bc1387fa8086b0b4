package spv

// IsConstant reports whether op defines a constant value.
func IsConstant(op Opcode) bool {
	switch op {
	case OpConstantTrue, OpConstantFalse, OpConstant, OpConstantComposite,
		OpConstantSampler, OpConstantNull,
		OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant,
		OpSpecConstantComposite, OpSpecConstantOp,
		OpConstantFunctionPointerINTEL:
		return true
	}
	return false
}

// IsSpecConstant reports whether op defines a specialization constant,
// whose value may be overridden after the module is produced.
func IsSpecConstant(op Opcode) bool {
	switch op {
	case OpSpecConstantTrue, OpSpecConstantFalse, OpSpecConstant,
		OpSpecConstantComposite, OpSpecConstantOp:
		return true
	}
	return false
}

// IsConstantOrUndef reports whether op defines a constant or OpUndef.
func IsConstantOrUndef(op Opcode) bool {
	return op == OpUndef || IsConstant(op)
}

// IsComposite reports whether op defines a composite type. Tensor types
// are handled separately by callers since their compositeness depends on
// the presence of a shape operand.
func IsComposite(op Opcode) bool {
	switch op {
	case OpTypeVector, OpTypeMatrix, OpTypeArray, OpTypeStruct,
		OpTypeCooperativeMatrixNV, OpTypeCooperativeMatrixKHR,
		OpTypeCooperativeVectorNV:
		return true
	}
	return false
}

// IsTypeOp reports whether op defines a type.
func IsTypeOp(op Opcode) bool {
	switch op {
	case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector,
		OpTypeMatrix, OpTypeImage, OpTypeSampler, OpTypeSampledImage,
		OpTypeArray, OpTypeRuntimeArray, OpTypeStruct, OpTypeOpaque,
		OpTypePointer, OpTypeFunction, OpTypeEvent, OpTypeDeviceEvent,
		OpTypeReserveId, OpTypeQueue, OpTypePipe, OpTypeForwardPointer,
		OpTypeTensorARM, OpTypeUntypedPointerKHR,
		OpTypeCooperativeMatrixNV, OpTypeCooperativeMatrixKHR,
		OpTypeCooperativeVectorNV:
		return true
	}
	return false
}

// IsDebug reports whether op is a core debug instruction: names, strings
// and source-level information that attach to ids without semantic effect.
func IsDebug(op Opcode) bool {
	switch op {
	case OpSourceContinued, OpSource, OpSourceExtension, OpName,
		OpMemberName, OpString, OpLine, OpNoLine, OpModuleProcessed:
		return true
	}
	return false
}
