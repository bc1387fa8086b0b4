package val

import "fmt"

// Code categorizes a validation failure.
type Code string

const (
	// CodeInvalidID indicates a referenced id that does not resolve,
	// resolves to the wrong kind of definition, or fails an expected
	// type relation.
	CodeInvalidID Code = "INVALID_ID"

	// CodeInvalidLayout indicates an instruction whose position violates
	// an ordering precondition.
	CodeInvalidLayout Code = "INVALID_LAYOUT"

	// CodeInvalidCapability indicates use of an opcode or type without
	// its gating capability.
	CodeInvalidCapability Code = "INVALID_CAPABILITY"

	// CodeInvalidData indicates an operand value outside its legal domain.
	CodeInvalidData Code = "INVALID_DATA"
)

// Diagnostic is the single structured error produced by a validation
// run. It names the violated rule in terms of the ids involved and
// attributes the failure to one instruction.
type Diagnostic struct {
	Code    Code
	Inst    *Instruction
	Message string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Inst != nil {
		return fmt.Sprintf("%s: instruction %d (%s): %s",
			d.Code, d.Inst.Position, d.Inst.Opcode, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

func diagf(code Code, inst *Instruction, format string, args ...any) *Diagnostic {
	return &Diagnostic{Code: code, Inst: inst, Message: fmt.Sprintf(format, args...)}
}
