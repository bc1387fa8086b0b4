// Package spirvtools validates SPIR-V binary modules.
//
// The package is the front door of the repository: it decodes a binary
// module and runs the semantic validation passes over it, returning
// either nil or a single structured diagnostic attributing the first
// violated rule to one instruction.
//
// Example usage:
//
//	data, _ := os.ReadFile("shader.spv")
//	if err := spirvtools.ValidateBinary(data); err != nil {
//	    log.Fatal(err)
//	}
//
// For lower-level access, such as building a module instruction by
// instruction or running individual rule-checker passes, use the val
// package directly.
package spirvtools

import (
	"fmt"

	"github.com/CHIP-SPV/SPIRV-Tools/val"
)

// Options configures a validation run.
type Options struct {
	// RelaxLogicalPointer disables the storage class and memory object
	// declaration checks on pointer arguments under the Logical
	// addressing model.
	RelaxLogicalPointer bool

	// BeforeHLSLLegalization relaxes call-argument type matching for
	// modules that have not yet been legalized.
	BeforeHLSLLegalization bool
}

// DefaultOptions returns the strict-conformance option set.
func DefaultOptions() Options {
	return Options{}
}

// ValidateBinary decodes and validates a SPIR-V binary module using
// default options.
func ValidateBinary(data []byte) error {
	return ValidateBinaryWithOptions(data, DefaultOptions())
}

// ValidateBinaryWithOptions decodes and validates a SPIR-V binary module.
//
// The pipeline is:
//  1. Decode the word stream into instruction records
//  2. Build the validation state (id tables, decorations, context)
//  3. Run the semantic rule checkers in module order, fail-fast
func ValidateBinaryWithOptions(data []byte, opts Options) error {
	s, err := val.Parse(data, val.Options{
		RelaxLogicalPointer:    opts.RelaxLogicalPointer,
		BeforeHLSLLegalization: opts.BeforeHLSLLegalization,
	})
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return val.Validate(s)
}
