package val

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIP-SPV/SPIRV-Tools/spv"
)

func TestConstantBool(t *testing.T) {
	tests := []struct {
		name    string
		typeID  uint32
		wantErr string
	}{
		{"true on bool", tBool, ""},
		{"true on int", tInt32, "is not a boolean type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insts := append(prelude(),
				op(spv.OpConstantTrue, tt.typeID, 10),
			)
			err := Validate(build(Options{}, insts...))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConstantComposite_ResultTypeMustBeComposite(t *testing.T) {
	insts := append(prelude(),
		op(spv.OpConstant, tFloat32, 10, Lit(0)),
		op(spv.OpConstantComposite, tFloat32, 11, ID(10)),
	)
	err := Validate(build(Options{}, insts...))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a composite type")
}

func TestConstantComposite_Vector(t *testing.T) {
	scalar := op(spv.OpConstant, tFloat32, 10, Lit(0x3F800000))

	t.Run("valid", func(t *testing.T) {
		insts := append(prelude(), scalar,
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10), ID(10)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("constituent count mismatch", func(t *testing.T) {
		insts := append(prelude(), scalar,
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector component count")
	})

	t.Run("constituent is not a constant", func(t *testing.T) {
		insts := append(prelude(), scalar,
			op(spv.OpVariable, tFloat32, 12, Lit(uint32(spv.StorageClassPrivate))),
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10), ID(12)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a constant or undef")
	})

	t.Run("undef constituent is accepted", func(t *testing.T) {
		insts := append(prelude(), scalar,
			op(spv.OpUndef, tFloat32, 12),
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10), ID(12)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("constituent element type mismatch", func(t *testing.T) {
		insts := append(prelude(), scalar,
			op(spv.OpConstant, tInt32, 12, Lit(1)),
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10), ID(12)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector element type")
	})
}

func TestConstantComposite_Matrix(t *testing.T) {
	fixture := func(columns ...Operand) []*Instruction {
		return append(prelude(),
			op(spv.OpTypeMatrix, 0, 20, ID(tVec4), Lit(2)),
			op(spv.OpTypeVector, 0, 21, ID(tFloat32), Lit(3)),
			op(spv.OpConstant, tFloat32, 10, Lit(0)),
			op(spv.OpConstantComposite, tVec4, 11, ID(10), ID(10), ID(10), ID(10)),
			op(spv.OpConstantComposite, 21, 12, ID(10), ID(10), ID(10)),
			op(spv.OpConstantComposite, 20, 13, columns...),
		)
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, Validate(build(Options{}, fixture(ID(11), ID(11))...)))
	})

	t.Run("column count mismatch", func(t *testing.T) {
		err := Validate(build(Options{}, fixture(ID(11))...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "matrix column count")
	})

	t.Run("column component count mismatch", func(t *testing.T) {
		err := Validate(build(Options{}, fixture(ID(11), ID(12))...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector component count")
	})
}

func TestConstantComposite_Array(t *testing.T) {
	fixture := func(length, composite *Instruction) []*Instruction {
		return append(prelude(),
			length,
			op(spv.OpTypeArray, 0, 21, ID(tInt32), ID(20)),
			op(spv.OpConstant, tInt32, 10, Lit(7)),
			composite,
		)
	}

	t.Run("valid", func(t *testing.T) {
		insts := fixture(
			op(spv.OpConstant, tInt32, 20, Lit(2)),
			op(spv.OpConstantComposite, 21, 11, ID(10), ID(10)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("length mismatch", func(t *testing.T) {
		insts := fixture(
			op(spv.OpConstant, tInt32, 20, Lit(2)),
			op(spv.OpConstantComposite, 21, 11, ID(10)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "array length")
	})

	t.Run("spec constant length skips the count check", func(t *testing.T) {
		insts := fixture(
			op(spv.OpSpecConstant, tInt32, 20, Lit(2)),
			op(spv.OpConstantComposite, 21, 11, ID(10)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("element type mismatch", func(t *testing.T) {
		insts := append(fixture(
			op(spv.OpConstant, tInt32, 20, Lit(2)),
			op(spv.OpConstant, tFloat32, 12, Lit(0)),
		), op(spv.OpConstantComposite, 21, 11, ID(10), ID(12)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "array element type")
	})
}

func TestConstantComposite_Struct(t *testing.T) {
	fixture := func(composite *Instruction) []*Instruction {
		return append(prelude(),
			op(spv.OpTypeStruct, 0, 20, ID(tInt32), ID(tFloat32)),
			op(spv.OpConstant, tInt32, 10, Lit(1)),
			op(spv.OpConstant, tFloat32, 11, Lit(0)),
			composite,
		)
	}

	t.Run("valid", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 12, ID(10), ID(11)))
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("member count mismatch", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 12, ID(10)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "struct member count")
	})

	t.Run("member order matters", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 12, ID(11), ID(10)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "member type")
	})
}

func TestConstantComposite_CooperativeMatrix(t *testing.T) {
	fixture := func(composite *Instruction) []*Instruction {
		return append(prelude(),
			op(spv.OpConstant, tInt32, 30, Lit(3)),
			op(spv.OpConstant, tInt32, 31, Lit(16)),
			op(spv.OpConstant, tInt32, 32, Lit(0)),
			op(spv.OpTypeCooperativeMatrixKHR, 0, 20,
				ID(tFloat32), ID(30), ID(31), ID(31), ID(32)),
			op(spv.OpConstant, tFloat32, 10, Lit(0)),
			composite,
		)
	}

	t.Run("valid", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 11, ID(10)))
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("exactly one constituent", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 11, ID(10), ID(10)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "count must be one")
	})

	t.Run("constituent must match the component type", func(t *testing.T) {
		insts := fixture(op(spv.OpConstantComposite, 20, 11, ID(30)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "component type")
	})
}

func TestConstantComposite_CooperativeVector(t *testing.T) {
	fixture := func(count, composite *Instruction) []*Instruction {
		return append(prelude(),
			count,
			op(spv.OpTypeCooperativeVectorNV, 0, 21, ID(tFloat32), ID(20)),
			op(spv.OpConstant, tFloat32, 10, Lit(0)),
			composite,
		)
	}

	t.Run("valid", func(t *testing.T) {
		insts := fixture(
			op(spv.OpConstant, tInt32, 20, Lit(3)),
			op(spv.OpConstantComposite, 21, 11, ID(10), ID(10), ID(10)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("component count mismatch", func(t *testing.T) {
		insts := fixture(
			op(spv.OpConstant, tInt32, 20, Lit(3)),
			op(spv.OpConstantComposite, 21, 11, ID(10), ID(10)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector component count")
	})

	t.Run("spec constant count skips the count check", func(t *testing.T) {
		insts := fixture(
			op(spv.OpSpecConstant, tInt32, 20, Lit(3)),
			op(spv.OpConstantComposite, 21, 11, ID(10), ID(10)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("constituent element type mismatch", func(t *testing.T) {
		insts := fixture(
			op(spv.OpConstant, tInt32, 20, Lit(2)),
			op(spv.OpConstantComposite, 21, 11, ID(10), ID(20)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector element type")
	})
}

func TestConstantComposite_Tensor(t *testing.T) {
	// A rank-2 tensor of shape [4, 2] built out of rank-1 constituents.
	// The inner tensor's declared dimension and its constituents are
	// parameters so the shape checks can be pushed off balance.
	fixture := func(innerDimID uint32, innerConstituents []Operand, outer *Instruction) []*Instruction {
		return append(prelude(),
			op(spv.OpConstant, tInt32, 30, Lit(1)),
			op(spv.OpConstant, tInt32, 31, Lit(2)),
			op(spv.OpConstant, tInt32, 32, Lit(4)),
			// Inner shape array int[1] and the rank-1 tensor type.
			op(spv.OpTypeArray, 0, 33, ID(tInt32), ID(30)),
			op(spv.OpConstantComposite, 33, 34, ID(innerDimID)),
			op(spv.OpTypeTensorARM, 0, 35, ID(tInt32), ID(30), ID(34)),
			// Outer shape [4, 2] and the rank-2 tensor type.
			op(spv.OpTypeArray, 0, 36, ID(tInt32), ID(31)),
			op(spv.OpConstantComposite, 36, 37, ID(32), ID(31)),
			op(spv.OpTypeTensorARM, 0, 38, ID(tInt32), ID(31), ID(37)),
			op(spv.OpConstantComposite, 35, 40, innerConstituents...),
			op(spv.OpConstantComposite, 35, 41, innerConstituents...),
			outer,
		)
	}
	two := []Operand{ID(30), ID(31)}
	four := []Operand{ID(30), ID(31), ID(30), ID(31)}

	t.Run("valid", func(t *testing.T) {
		insts := fixture(31, two,
			op(spv.OpConstantComposite, 38, 42, ID(40), ID(41), ID(40), ID(41)))
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("outermost dimension mismatch", func(t *testing.T) {
		insts := fixture(31, two,
			op(spv.OpConstantComposite, 38, 42, ID(40), ID(41)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outermost dimension")
		assert.Contains(t, err.Error(), "expected 4 but got 2")
	})

	t.Run("constituent must be a tensor", func(t *testing.T) {
		insts := fixture(31, two,
			op(spv.OpConstantComposite, 38, 42, ID(30), ID(31), ID(30), ID(31)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be an OpTypeTensorARM")
	})

	t.Run("inner shape mismatch", func(t *testing.T) {
		// The inner tensors are internally consistent with dimension 4,
		// but the result type expects 2 along its inner dimension.
		insts := fixture(32, four,
			op(spv.OpConstantComposite, 38, 42, ID(40), ID(41), ID(40), ID(41)))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all inner dimensions")
	})

	t.Run("unshaped tensor type is not composite", func(t *testing.T) {
		insts := append(prelude(),
			op(spv.OpConstant, tInt32, 30, Lit(1)),
			op(spv.OpTypeTensorARM, 0, 35, ID(tInt32), ID(30)),
			op(spv.OpConstantComposite, 35, 40, ID(30)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a composite type")
	})
}

func TestConstantComposite_TensorRank(t *testing.T) {
	// A rank-2 result type of shape [2, 4]. The constituents and the
	// result type's rank id are parameters so each rank-dependent
	// branch can be hit in isolation.
	fixture := func(rankID uint32, constituents ...Operand) []*Instruction {
		return append(prelude(),
			op(spv.OpConstant, tInt32, 29, Lit(0)),
			op(spv.OpConstant, tInt32, 30, Lit(2)),
			op(spv.OpConstant, tInt32, 31, Lit(4)),
			op(spv.OpConstant, tInt32, 32, Lit(3)),
			op(spv.OpSpecConstant, tInt32, 33, Lit(2)),
			op(spv.OpTypeArray, 0, 34, ID(tInt32), ID(30)),
			op(spv.OpConstantComposite, 34, 35, ID(30), ID(31)),
			op(spv.OpTypeTensorARM, 0, 36, ID(tInt32), ID(32), ID(35)),
			op(spv.OpUndef, 36, 37),
			op(spv.OpConstant, tFloat32, 39, Lit(0)),
			op(spv.OpTypeTensorARM, 0, 38, ID(tInt32), ID(rankID), ID(35)),
			op(spv.OpConstantComposite, 38, 40, constituents...),
		)
	}

	t.Run("constituent rank must be one less", func(t *testing.T) {
		insts := fixture(30, ID(37), ID(37))
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have a Rank that is 1 less")
		assert.Contains(t, err.Error(), "expected 1 but got 3")
	})

	t.Run("spec constant rank skips rank checks", func(t *testing.T) {
		// With a known rank the float constituents would be rejected
		// against the int element type.
		insts := fixture(33, ID(39), ID(39))
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("zero rank skips rank checks", func(t *testing.T) {
		insts := fixture(29, ID(39), ID(39))
		require.NoError(t, Validate(build(Options{}, insts...)))
	})
}

func TestConstantSampler(t *testing.T) {
	insts := append(prelude(),
		op(spv.OpTypeSampler, 0, 20),
		op(spv.OpConstantSampler, 20, 21, Lit(0), Lit(0), Lit(0)),
	)
	require.NoError(t, Validate(build(Options{}, insts...)))

	insts = append(prelude(),
		op(spv.OpConstantSampler, tInt32, 21, Lit(0), Lit(0), Lit(0)),
	)
	err := Validate(build(Options{}, insts...))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a sampler type")
}

func TestConstantNull(t *testing.T) {
	tests := []struct {
		name  string
		extra []*Instruction
		typ   uint32
		ok    bool
	}{
		{"int", nil, tInt32, true},
		{"bool", nil, tBool, true},
		{"vector", nil, tVec4, true},
		{"function pointer storage class", []*Instruction{
			op(spv.OpTypePointer, 0, 20, Lit(uint32(spv.StorageClassFunction)), ID(tInt32)),
		}, 20, true},
		{"physical storage buffer pointer", []*Instruction{
			op(spv.OpTypePointer, 0, 20, Lit(uint32(spv.StorageClassPhysicalStorageBuffer)), ID(tInt32)),
		}, 20, false},
		{"struct of nullable members", []*Instruction{
			op(spv.OpTypeStruct, 0, 20, ID(tInt32), ID(tBool)),
		}, 20, true},
		{"struct with non-nullable member", []*Instruction{
			op(spv.OpTypeSampler, 0, 19),
			op(spv.OpTypeStruct, 0, 20, ID(tInt32), ID(19)),
		}, 20, false},
		{"void", nil, tVoid, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insts := append(prelude(), tt.extra...)
			insts = append(insts, op(spv.OpConstantNull, tt.typ, 30))
			err := Validate(build(Options{}, insts...))
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot have a null value")
		})
	}
}

func TestSpecConstant_MustBeNumeric(t *testing.T) {
	insts := append(prelude(),
		op(spv.OpSpecConstant, tBool, 10, Lit(0)),
	)
	err := Validate(build(Options{}, insts...))
	require.Error(t, err)

	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, CodeInvalidData, diag.Code)
	assert.Contains(t, diag.Message, "integer or floating-point")
}

func TestSpecConstantOp_CapabilityGating(t *testing.T) {
	module := func(embedded spv.Opcode, caps []uint32, exts ...string) []*Instruction {
		insts := []*Instruction{}
		for _, c := range caps {
			insts = append(insts, op(spv.OpCapability, 0, 0, Lit(c)))
		}
		for _, e := range exts {
			insts = append(insts, op(spv.OpExtension, 0, 0, Str(e)))
		}
		insts = append(insts, prelude()...)
		return append(insts,
			op(spv.OpConstant, tFloat32, 10, Lit(0)),
			op(spv.OpSpecConstantOp, tFloat32, 11, Lit(uint32(embedded)), ID(10), ID(10)),
		)
	}

	t.Run("arithmetic requires Kernel", func(t *testing.T) {
		err := Validate(build(Options{}, module(spv.OpFAdd, nil)...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OpFAdd requires Kernel capability")

		err = Validate(build(Options{}, module(spv.OpFAdd,
			[]uint32{uint32(spv.CapabilityKernel)})...))
		require.NoError(t, err)
	})

	t.Run("QuantizeToF16 requires Shader", func(t *testing.T) {
		err := Validate(build(Options{}, module(spv.OpQuantizeToF16, nil)...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires Shader capability")

		err = Validate(build(Options{}, module(spv.OpQuantizeToF16,
			[]uint32{uint32(spv.CapabilityShader)})...))
		require.NoError(t, err)
	})

	t.Run("UConvert before 1.4", func(t *testing.T) {
		err := Validate(build(Options{}, module(spv.OpUConvert, nil)...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Prior to SPIR-V 1.4")

		err = Validate(build(Options{}, module(spv.OpUConvert,
			[]uint32{uint32(spv.CapabilityKernel)})...))
		require.NoError(t, err)

		err = Validate(build(Options{}, module(spv.OpUConvert, nil,
			"SPV_AMD_gpu_shader_int16")...))
		require.NoError(t, err)
	})

	t.Run("UConvert at 1.4", func(t *testing.T) {
		err := Validate(buildVersion(spv.Version1_4, Options{},
			module(spv.OpUConvert, nil)...))
		require.NoError(t, err)
	})
}

func TestConstantFunctionPointer(t *testing.T) {
	module := func(withCap bool, tail ...*Instruction) []*Instruction {
		insts := []*Instruction{}
		if withCap {
			insts = append(insts,
				op(spv.OpCapability, 0, 0, Lit(uint32(spv.CapabilityFunctionPointersINTEL))))
		}
		insts = append(insts, prelude()...)
		insts = append(insts,
			op(spv.OpTypePointer, 0, 20, Lit(uint32(spv.StorageClassFunction)), ID(tFnVoid)))
		return append(insts, tail...)
	}

	t.Run("requires capability", func(t *testing.T) {
		insts := module(false,
			op(spv.OpConstantFunctionPointerINTEL, 20, 21, ID(30)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)

		var diag *Diagnostic
		require.ErrorAs(t, err, &diag)
		assert.Equal(t, CodeInvalidCapability, diag.Code)
	})

	t.Run("valid", func(t *testing.T) {
		insts := module(true,
			op(spv.OpFunction, tVoid, 30, Lit(0), ID(tFnVoid)),
			op(spv.OpFunctionEnd, 0, 0),
			op(spv.OpConstantFunctionPointerINTEL, 20, 21, ID(30)),
		)
		require.NoError(t, Validate(build(Options{}, insts...)))
	})

	t.Run("forward reference is deferred", func(t *testing.T) {
		insts := module(true,
			op(spv.OpConstantFunctionPointerINTEL, 20, 21, ID(30)),
		)
		// 30 is never defined; the pointer check alone does not reject.
		s := build(Options{}, insts...)
		require.NoError(t, ConstantPass(s, s.FindDef(21)))
	})

	t.Run("result type must point to a function type", func(t *testing.T) {
		insts := module(true,
			op(spv.OpTypePointer, 0, 22, Lit(uint32(spv.StorageClassFunction)), ID(tInt32)),
			op(spv.OpConstantFunctionPointerINTEL, 22, 21, ID(30)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pointer to function type")
	})

	t.Run("function type must match the pointee", func(t *testing.T) {
		insts := module(true,
			op(spv.OpTypeFunction, 0, 22, ID(tVoid), ID(tInt32)),
			op(spv.OpFunction, tVoid, 30, Lit(0), ID(22)),
			op(spv.OpFunctionParameter, tInt32, 31),
			op(spv.OpFunctionEnd, 0, 0),
			op(spv.OpConstantFunctionPointerINTEL, 20, 21, ID(30)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match the pointer's function type")
	})
}

func TestNarrowConstants(t *testing.T) {
	module := func(caps ...uint32) []*Instruction {
		insts := []*Instruction{}
		for _, c := range caps {
			insts = append(insts, op(spv.OpCapability, 0, 0, Lit(c)))
		}
		insts = append(insts, prelude()...)
		return append(insts,
			op(spv.OpTypeInt, 0, 20, Lit(16), Lit(0)),
			op(spv.OpConstant, 20, 21, Lit(7)),
		)
	}

	t.Run("rejected under Shader without Int16", func(t *testing.T) {
		err := Validate(build(Options{}, module(uint32(spv.CapabilityShader))...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot form constants of 8- or 16-bit types")
	})

	t.Run("allowed with Int16", func(t *testing.T) {
		err := Validate(build(Options{}, module(
			uint32(spv.CapabilityShader), uint32(spv.CapabilityInt16))...))
		require.NoError(t, err)
	})

	t.Run("allowed without Shader", func(t *testing.T) {
		err := Validate(build(Options{}, module(uint32(spv.CapabilityKernel))...))
		require.NoError(t, err)
	})

	t.Run("composite containing a 16-bit member is rejected", func(t *testing.T) {
		insts := []*Instruction{
			op(spv.OpCapability, 0, 0, Lit(uint32(spv.CapabilityShader))),
		}
		insts = append(insts, prelude()...)
		insts = append(insts,
			op(spv.OpTypeFloat, 0, 20, Lit(16)),
			op(spv.OpTypeStruct, 0, 21, ID(tInt32), ID(20)),
			op(spv.OpConstant, tInt32, 22, Lit(1)),
			op(spv.OpUndef, 20, 23),
			op(spv.OpConstantComposite, 21, 24, ID(22), ID(23)),
		)
		err := Validate(build(Options{}, insts...))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot form constants of 8- or 16-bit types")
	})
}
