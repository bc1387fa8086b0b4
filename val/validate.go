// Package val implements semantic validation of SPIR-V modules.
//
// A module is presented as an ordered sequence of decoded Instruction
// records held by a State, which also carries the module context:
// capabilities, addressing and memory models, decorations and
// caller-supplied options. Validate traverses the instructions once in
// module order, dispatching each to the rule checkers for its opcode
// family, and stops at the first violated rule.
//
// Checkers never mutate the state or the instructions; all cross-instruction
// information is resolved through the id definition table, which supports
// forward references regardless of traversal position.
package val

// Validate runs the instruction-level semantic checks over a fully
// populated state. It returns nil on success, or the first *Diagnostic
// produced by any checker. The result is deterministic: the same module
// always yields the same first diagnostic.
func Validate(s *State) error {
	for _, inst := range s.Instructions() {
		if err := FunctionPass(s, inst); err != nil {
			return err
		}
		if err := ConstantPass(s, inst); err != nil {
			return err
		}
	}
	return nil
}
