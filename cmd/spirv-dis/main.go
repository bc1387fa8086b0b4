// Command spirv-dis prints a human-readable listing of a SPIR-V binary
// module. The listing follows the assembly convention: result ids on the
// left of '=', operands rendered as %n references, literals, or quoted
// strings.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/CHIP-SPV/SPIRV-Tools/spv"
	"github.com/CHIP-SPV/SPIRV-Tools/val"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: spirv-dis <module.spv>")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := val.Parse(data, val.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	version := spv.VersionFromWord(binary.LittleEndian.Uint32(data[4:8]))
	fmt.Printf("; SPIR-V\n")
	fmt.Printf("; Version: %s\n", version)
	fmt.Printf("; Generator: 0x%08X\n", binary.LittleEndian.Uint32(data[8:12]))
	fmt.Printf("; Bound: %d\n", binary.LittleEndian.Uint32(data[12:16]))
	fmt.Printf("; Schema: %d\n", binary.LittleEndian.Uint32(data[16:20]))
	fmt.Println()

	for _, inst := range s.Instructions() {
		fmt.Println(render(inst))
	}
}

func render(inst *val.Instruction) string {
	var sb strings.Builder
	if inst.ResultID != 0 {
		fmt.Fprintf(&sb, "%12s = ", fmt.Sprintf("%%%d", inst.ResultID))
	} else {
		sb.WriteString(strings.Repeat(" ", 15))
	}
	sb.WriteString(inst.Opcode.String())
	if inst.TypeID != 0 {
		fmt.Fprintf(&sb, " %%%d", inst.TypeID)
	}
	for i, op := range inst.Operands {
		sb.WriteByte(' ')
		sb.WriteString(renderOperand(inst, i, op))
	}
	return sb.String()
}

func renderOperand(inst *val.Instruction, i int, op val.Operand) string {
	switch op.Kind {
	case val.OperandID:
		return fmt.Sprintf("%%%d", op.Word)
	case val.OperandString:
		return fmt.Sprintf("%q", op.Str)
	}
	// Render well-known enum literals by name.
	switch {
	case inst.Opcode == spv.OpCapability && i == 0:
		return spv.Capability(op.Word).String()
	case inst.Opcode == spv.OpMemoryModel && i == 0:
		return spv.AddressingModel(op.Word).String()
	case inst.Opcode == spv.OpMemoryModel && i == 1:
		return spv.MemoryModel(op.Word).String()
	case (inst.Opcode == spv.OpTypePointer || inst.Opcode == spv.OpVariable ||
		inst.Opcode == spv.OpTypeUntypedPointerKHR || inst.Opcode == spv.OpUntypedVariableKHR) && i == 0:
		return spv.StorageClass(op.Word).String()
	case inst.Opcode == spv.OpDecorate && i == 1:
		return spv.Decoration(op.Word).String()
	case inst.Opcode == spv.OpMemberDecorate && i == 2:
		return spv.Decoration(op.Word).String()
	case inst.Opcode == spv.OpSpecConstantOp && i == 0:
		return spv.Opcode(op.Word).String()
	}
	return fmt.Sprintf("%d", op.Word)
}
